package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// EnvConfigDir overrides the directory holding config.toml.
const EnvConfigDir = "LOCO_PILOT_CONFIG_DIR"

const (
	appDir   = "loco-pilot"
	fileName = "config.toml"
)

// ErrUnknownKey is returned by Set and Get for keys outside Keys().
var ErrUnknownKey = errors.New("unknown configuration key")

// Colors holds the color name of each prompt element
type Colors struct {
	Username  string `toml:"username" json:"username" yaml:"username"`
	Hostname  string `toml:"hostname" json:"hostname" yaml:"hostname"`
	Directory string `toml:"directory" json:"directory" yaml:"directory"`
	GitBranch string `toml:"git_branch" json:"git_branch" yaml:"git_branch"`
	GitDirty  string `toml:"git_dirty" json:"git_dirty" yaml:"git_dirty"`
	Time      string `toml:"time" json:"time" yaml:"time"`
}

// Config holds the loco-pilot configuration
type Config struct {
	Style   string `toml:"style" json:"style" yaml:"style"`
	ShowGit bool   `toml:"show_git" json:"show_git" yaml:"show_git"`
	Colors  Colors `toml:"colors" json:"colors" yaml:"colors"`
}

// DefaultStyle is the style used when none is configured
const DefaultStyle = "default"

// Default returns the default configuration
func Default() Config {
	return Config{
		Style:   DefaultStyle,
		ShowGit: true,
		Colors: Colors{
			Username:  "green",
			Hostname:  "yellow",
			Directory: "cyan",
			GitBranch: "green",
			GitDirty:  "red",
			Time:      "blue",
		},
	}
}

// DefaultPath returns the config file location. LOCO_PILOT_CONFIG_DIR wins
// over the per-user config directory.
func DefaultPath() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, fileName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// key describes one settable configuration entry
type key struct {
	name  string
	label string // confirmation prefix printed after an update
	get   func(*Config) string
	set   func(*Config, string)
}

var keys = []key{
	{
		name:  "style",
		label: "Default style set to",
		get:   func(c *Config) string { return c.Style },
		set:   func(c *Config, v string) { c.Style = v },
	},
	{
		name:  "show_git",
		label: "Show git info",
		get:   func(c *Config) string { return strconv.FormatBool(c.ShowGit) },
		set:   func(c *Config, v string) { c.ShowGit = strings.EqualFold(v, "true") },
	},
	colorKey("username", "Username color set to", func(c *Colors) *string { return &c.Username }),
	colorKey("hostname", "Hostname color set to", func(c *Colors) *string { return &c.Hostname }),
	colorKey("directory", "Directory color set to", func(c *Colors) *string { return &c.Directory }),
	colorKey("git_branch", "Git branch color set to", func(c *Colors) *string { return &c.GitBranch }),
	colorKey("git_dirty", "Git dirty indicator color set to", func(c *Colors) *string { return &c.GitDirty }),
	colorKey("time", "Time color set to", func(c *Colors) *string { return &c.Time }),
}

func colorKey(field, label string, ptr func(*Colors) *string) key {
	return key{
		name:  "color." + field,
		label: label,
		get:   func(c *Config) string { return *ptr(&c.Colors) },
		set:   func(c *Config, v string) { *ptr(&c.Colors) = v },
	}
}

func lookup(name string) (key, bool) {
	for _, k := range keys {
		if k.name == name {
			return k, true
		}
	}
	return key{}, false
}

// Keys returns every settable key in display order.
func Keys() []string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.name
	}
	return names
}

// Get returns the value of key formatted for display.
func (c Config) Get(name string) (string, error) {
	k, ok := lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, name)
	}
	return k.get(&c), nil
}

// apply sets key on a copy of c.
func (c Config) apply(name, value string) (Config, error) {
	k, ok := lookup(name)
	if !ok {
		return c, fmt.Errorf("%w: %s", ErrUnknownKey, name)
	}
	k.set(&c, value)
	return c, nil
}

// Confirmation returns the message acknowledging an update of key, using
// the value stored in c. Show git prints the parsed boolean.
func Confirmation(name string, c Config) string {
	k, ok := lookup(name)
	if !ok {
		return ""
	}
	return k.label + ": " + k.get(&c)
}
