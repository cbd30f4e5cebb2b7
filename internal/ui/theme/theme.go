// Package theme holds the lipgloss styles for radprep's CLI reports.
package theme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary = lipgloss.Color("#38BDF8") // Sky
	Success = lipgloss.Color("#22C55E") // Green
	Warn    = lipgloss.Color("#F59E0B") // Amber
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#E2E8F0") // Light slate
	TextDim = lipgloss.Color("#64748B") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Good = lipgloss.NewStyle().
		Foreground(Success)

	Caution = lipgloss.NewStyle().
		Foreground(Warn)

	Bad = lipgloss.NewStyle().
		Foreground(Error)
)

// Accuracy renders a ratio with a color cue: green at or above the
// ready threshold, amber when close, red below.
func Accuracy(v float64) string {
	s := fmt.Sprintf("%5.1f%%", v*100)
	switch {
	case v >= 0.75:
		return Good.Render(s)
	case v >= 0.65:
		return Caution.Render(s)
	default:
		return Bad.Render(s)
	}
}

// Bar renders a fixed-width progress bar for a ratio in [0,1].
func Bar(v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	filled := int(v * float64(width))
	return Good.Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(TextDim).Render(strings.Repeat("░", width-filled))
}
