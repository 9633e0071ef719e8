// Package prompt renders the shell prompt string.
//
// Rendering is pure: [Render] takes the style, the configuration, the
// environment [Facts] and an optional git status and returns the text bash
// should display. Every escape sequence is wrapped in \[ and \] so bash
// excludes it from the prompt width.
//
// # Styles
//
//	default  user@host:dir (branch)* $
//	minimal  $
//	info     [time] user@host: dir (branch)* $
//	emoji    🕒 time 👤 user 🖥️  host 📁 dir 🔖 branch 🔴 ➡️
//
// The emoji style is plain text; configured colors are ignored there.
package prompt
