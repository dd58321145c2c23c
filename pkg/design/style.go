package design

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PadRight pads s with spaces to the given visual width. Width is measured in
// terminal cells, ignoring ANSI and OSC 8 sequences.
func PadRight(s string, width int) string {
	vw := lipgloss.Width(s)
	if vw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vw)
}

// VisualWidth returns the display width of a string in terminal cells.
func VisualWidth(s string) int {
	return lipgloss.Width(s)
}
