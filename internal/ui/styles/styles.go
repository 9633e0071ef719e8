// Package styles provides shared lipgloss styles for the branch pickers.
//
// Styles render raw ANSI. Callers write through a colorprofile writer (or
// pass a profile to bubbletea) so output degrades on terminals without
// color and is stripped when redirected.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Muted is used for secondary text such as menu numbers (gray)
	Muted color.Color = lipgloss.Color("240")
)

var (
	// TitleStyle renders prompt headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// IndexStyle renders menu numbers
	IndexStyle = lipgloss.NewStyle().Foreground(Muted)

	// AccentStyle renders the selected item
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)
