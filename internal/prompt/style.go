package prompt

import "github.com/raphi011/loco-pilot/internal/config"

// Style selects the prompt layout.
type Style int

const (
	StyleDefault Style = iota
	StyleMinimal
	StyleInfo
	StyleEmoji
)

var styleNames = map[Style]string{
	StyleDefault: "default",
	StyleMinimal: "minimal",
	StyleInfo:    "info",
	StyleEmoji:   "emoji",
}

// Styles lists the style names in display order.
func Styles() []string {
	return []string{"default", "minimal", "info", "emoji"}
}

// ParseStyle maps a style name to a Style. Unknown names select StyleDefault.
func ParseStyle(name string) Style {
	for s, n := range styleNames {
		if n == name {
			return s
		}
	}
	return StyleDefault
}

func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return styleNames[StyleDefault]
}

// NeedsGit reports whether rendering style with cfg uses the git status.
// When false the caller should not probe git at all.
func NeedsGit(s Style, cfg config.Config) bool {
	return s != StyleMinimal && cfg.ShowGit
}
