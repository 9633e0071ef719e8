package prompt

import (
	"strconv"
	"strings"
	"time"

	"github.com/raphi011/loco-pilot/internal/config"
	"github.com/raphi011/loco-pilot/internal/git"
)

// TimeLayout formats the clock shown by the info and emoji styles.
const TimeLayout = "15:04:05"

// Facts holds the environment values shown in the prompt.
type Facts struct {
	Username  string
	Hostname  string
	Directory string // already shortened
	Time      string
}

// FormatTime formats t with TimeLayout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// Render builds the prompt for style. A nil status, or cfg.ShowGit false,
// omits the git segment.
func Render(style Style, cfg config.Config, f Facts, status *git.Status) string {
	var gitInfo string
	if status != nil && NeedsGit(style, cfg) {
		gitInfo = gitSegment(style, cfg.Colors, *status)
	}

	switch style {
	case StyleMinimal:
		return "$ "
	case StyleInfo:
		return renderInfo(cfg.Colors, f, gitInfo)
	case StyleEmoji:
		return renderEmoji(f, gitInfo)
	default:
		return renderDefault(cfg.Colors, f, gitInfo)
	}
}

func renderDefault(c config.Colors, f Facts, gitInfo string) string {
	return paint(ANSI(c.Username), f.Username) + "@" +
		paint(ANSI(c.Hostname), f.Hostname) + ":" +
		paint(ANSI(c.Directory), f.Directory) + gitInfo + " $ "
}

func renderInfo(c config.Colors, f Facts, gitInfo string) string {
	return "[" + paint(ANSI(c.Time), f.Time) + "] " +
		paint(ANSI(c.Username), f.Username) + "@" +
		paint(ANSI(c.Hostname), f.Hostname) + ": " +
		paint(ANSI(c.Directory), f.Directory) + gitInfo + " $ "
}

// renderEmoji ignores the configured colors.
func renderEmoji(f Facts, gitInfo string) string {
	return "🕒 " + f.Time + " 👤 " + f.Username + " 🖥️  " + f.Hostname + " 📁 " + f.Directory + gitInfo + " ➡️  "
}

func gitSegment(style Style, colors config.Colors, st git.Status) string {
	var b strings.Builder

	if style == StyleEmoji {
		b.WriteString(" 🔖 " + st.Branch)
		if st.Ahead > 0 {
			b.WriteString(" ↑" + strconv.Itoa(st.Ahead))
		}
		if st.Behind > 0 {
			b.WriteString(" ↓" + strconv.Itoa(st.Behind))
		}
		if st.Dirty {
			b.WriteString(" 🔴")
		}
		return b.String()
	}

	b.WriteString(" (" + paint(ANSI(colors.GitBranch), st.Branch) + ")")
	if st.Ahead > 0 {
		b.WriteString(" " + paint(aheadSeq, "↑"+strconv.Itoa(st.Ahead)))
	}
	if st.Behind > 0 {
		b.WriteString(" " + paint(behindSeq, "↓"+strconv.Itoa(st.Behind)))
	}
	if st.Dirty {
		b.WriteString(paint(ANSI(colors.GitDirty), "*"))
	}
	return b.String()
}
