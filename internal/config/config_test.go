package config

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/loco-pilot/internal/cache"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	path := filepath.Join(t.TempDir(), "loco-pilot", "config.toml")
	return NewStore(path, clock.Now), clock
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Style != "default" || !cfg.ShowGit {
		t.Errorf("Default() = %+v", cfg)
	}
	want := Colors{
		Username:  "green",
		Hostname:  "yellow",
		Directory: "cyan",
		GitBranch: "green",
		GitDirty:  "red",
		Time:      "blue",
	}
	if cfg.Colors != want {
		t.Errorf("Default().Colors = %+v, want %+v", cfg.Colors, want)
	}
}

func TestDefaultIsValidTOML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(Default()); err != nil {
		t.Fatalf("encode default config: %v", err)
	}
	var got Config
	if _, err := toml.Decode(buf.String(), &got); err != nil {
		t.Fatalf("default config is not valid TOML: %v", err)
	}
	if !strings.Contains(buf.String(), "[colors]") {
		t.Errorf("encoded config lacks [colors] table:\n%s", buf.String())
	}
}

func TestDefaultPath_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if want := filepath.Join(dir, "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestDefaultPath_UserConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "")

	base, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if want := filepath.Join(base, "loco-pilot", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	if got := s.Load(context.Background()); got != Default() {
		t.Errorf("Load() = %+v, want defaults", got)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	writeConfig(t, s.Path(), "style = [not toml")

	if got := s.Load(context.Background()); got != Default() {
		t.Errorf("Load() = %+v, want defaults", got)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	writeConfig(t, s.Path(), "style = \"info\"\nfuture_option = 3\n\n[colors]\ntime = \"purple\"\nsparkle = \"yes\"\n")

	got := s.Load(context.Background())
	want := Default()
	want.Style = "info"
	want.Colors.Time = "purple"
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoad_CachedWithinTTL(t *testing.T) {
	t.Parallel()

	s, clock := newTestStore(t)
	ctx := context.Background()
	writeConfig(t, s.Path(), "style = \"info\"\n")

	if got := s.Load(ctx).Style; got != "info" {
		t.Fatalf("Load().Style = %q, want info", got)
	}

	writeConfig(t, s.Path(), "style = \"emoji\"\n")
	clock.Advance(cache.ConfigTTL - time.Second)
	if got := s.Load(ctx).Style; got != "info" {
		t.Errorf("Load().Style within TTL = %q, want cached info", got)
	}

	clock.Advance(time.Second)
	if got := s.Load(ctx).Style; got != "emoji" {
		t.Errorf("Load().Style after TTL = %q, want emoji", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Style:   "emoji",
		ShowGit: false,
		Colors: Colors{
			Username:  "bright_blue",
			Hostname:  "bold_red",
			Directory: "gray",
			GitBranch: "magenta",
			GitDirty:  "bold_yellow",
			Time:      "white",
		},
	}

	s, _ := newTestStore(t)
	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// a fresh store bypasses the cache and reads the file
	fresh := NewStore(s.Path(), nil)
	if got := fresh.Load(context.Background()); got != cfg {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestSave_RefreshesCache(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	ctx := context.Background()
	_ = s.Load(ctx)

	cfg := Default()
	cfg.Style = "minimal"
	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := s.Load(ctx).Style; got != "minimal" {
		t.Errorf("Load().Style after Save = %q, want minimal", got)
	}
}

func TestSave_Unwritable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(filepath.Join(blocker, "config.toml"), nil)
	if err := s.Save(Default()); err == nil {
		t.Error("Save() error = nil, want failure when the directory is a file")
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key   string
		value string
		check func(Config) bool
	}{
		{"style", "info", func(c Config) bool { return c.Style == "info" }},
		{"show_git", "TRUE", func(c Config) bool { return c.ShowGit }},
		{"show_git", "yes", func(c Config) bool { return !c.ShowGit }},
		{"color.username", "red", func(c Config) bool { return c.Colors.Username == "red" }},
		{"color.hostname", "blue", func(c Config) bool { return c.Colors.Hostname == "blue" }},
		{"color.directory", "white", func(c Config) bool { return c.Colors.Directory == "white" }},
		{"color.git_branch", "purple", func(c Config) bool { return c.Colors.GitBranch == "purple" }},
		{"color.git_dirty", "bold_red", func(c Config) bool { return c.Colors.GitDirty == "bold_red" }},
		{"color.time", "gray", func(c Config) bool { return c.Colors.Time == "gray" }},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Parallel()

			s, _ := newTestStore(t)
			cfg, err := s.Set(context.Background(), tt.key, tt.value)
			if err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("Set(%q, %q) = %+v", tt.key, tt.value, cfg)
			}

			persisted := NewStore(s.Path(), nil).Load(context.Background())
			if persisted != cfg {
				t.Errorf("persisted = %+v, want %+v", persisted, cfg)
			}
		})
	}
}

func TestSet_UnknownKeyLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	original := "# hand written\nstyle = \"info\"\n"
	writeConfig(t, s.Path(), original)

	_, err := s.Set(context.Background(), "color.background", "red")
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Set() error = %v, want ErrUnknownKey", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != original {
		t.Errorf("file changed to %q", data)
	}
}

func TestSet_UnknownKeyCreatesNoFile(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	if _, err := s.Set(context.Background(), "nope", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("Set() error = %v, want ErrUnknownKey", err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Errorf("config file exists after unknown key: %v", err)
	}
}

func TestKeysAndGet(t *testing.T) {
	t.Parallel()

	want := []string{
		"style", "show_git",
		"color.username", "color.hostname", "color.directory",
		"color.git_branch", "color.git_dirty", "color.time",
	}
	if got := Keys(); !slices.Equal(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}

	cfg := Default()
	values := map[string]string{
		"style":           "default",
		"show_git":        "true",
		"color.directory": "cyan",
		"color.time":      "blue",
	}
	for k, v := range values {
		got, err := cfg.Get(k)
		if err != nil || got != v {
			t.Errorf("Get(%q) = %q, %v, want %q", k, got, err, v)
		}
	}

	if _, err := cfg.Get("colors.time"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get(unknown) error = %v, want ErrUnknownKey", err)
	}
}

func TestConfirmation(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.ShowGit = false
	cfg.Colors.GitDirty = "bold_red"

	tests := map[string]string{
		"style":           "Default style set to: default",
		"show_git":        "Show git info: false",
		"color.git_dirty": "Git dirty indicator color set to: bold_red",
		"color.username":  "Username color set to: green",
		"unknown":         "",
	}
	for key, want := range tests {
		if got := Confirmation(key, cfg); got != want {
			t.Errorf("Confirmation(%q) = %q, want %q", key, got, want)
		}
	}
}
