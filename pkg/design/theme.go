// Package design provides the visual tokens for lastrun output.
//
// Colors use lipgloss.Color format (color names, hex, or 256-color numbers).
// Styles are composed using lipgloss methods, not manual ANSI escapes.
package design

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/lastrun/pkg/jobstate"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

// Theme defines all visual styling for lastrun output.
type Theme struct {
	Name string

	// Semantic colors for status and UI elements
	Colors ThemeColors

	// Pre-built styles for common elements
	Styles ThemeStyles

	// Icons for run status glyphs
	Icons ThemeIcons

	// Monochrome themes carry no color; renderers also drop hyperlinks.
	Monochrome bool
}

// ThemeColors defines semantic color values.
type ThemeColors struct {
	Primary lipgloss.Color // Headers, links
	Success lipgloss.Color
	Failure lipgloss.Color
	Warning lipgloss.Color // Canceling / canceled
	Active  lipgloss.Color // Starting / started
	Queued  lipgloss.Color // Queued / not started / managed

	Text   lipgloss.Color
	Muted  lipgloss.Color // Empty state, secondary columns
	Subtle lipgloss.Color // Borders, separators
}

// ThemeStyles provides pre-built lipgloss styles, computed once from colors.
type ThemeStyles struct {
	Header     lipgloss.Style
	TextNormal lipgloss.Style
	TextMuted  lipgloss.Style
	TextBold   lipgloss.Style
	Link       lipgloss.Style
	Border     lipgloss.Style

	tones map[runstatus.Tone]lipgloss.Style
}

// ThemeIcons defines the glyph icon for each tone of run status.
type ThemeIcons struct {
	Success string
	Failure string
	Warning string
	Active  string
	Queued  string
	Unknown string
	Bullet  string
	Select  string
}

// NewTheme creates a theme with computed styles from colors.
func NewTheme(name string, colors ThemeColors, icons ThemeIcons) *Theme {
	t := &Theme{
		Name:   name,
		Colors: colors,
		Icons:  icons,
	}

	t.Styles = ThemeStyles{
		Header: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Bold(true),

		TextNormal: lipgloss.NewStyle().
			Foreground(colors.Text),

		TextMuted: lipgloss.NewStyle().
			Foreground(colors.Muted),

		TextBold: lipgloss.NewStyle().
			Foreground(colors.Text).
			Bold(true),

		Link: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Underline(true),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Subtle).
			Padding(0, 1),

		tones: map[runstatus.Tone]lipgloss.Style{
			runstatus.ToneSuccess: lipgloss.NewStyle().Foreground(colors.Success),
			runstatus.ToneFailure: lipgloss.NewStyle().Foreground(colors.Failure).Bold(true),
			runstatus.ToneWarning: lipgloss.NewStyle().Foreground(colors.Warning),
			runstatus.ToneActive:  lipgloss.NewStyle().Foreground(colors.Active),
			runstatus.ToneQueued:  lipgloss.NewStyle().Foreground(colors.Queued),
			runstatus.ToneUnknown: lipgloss.NewStyle().Foreground(colors.Muted),
		},
	}

	return t
}

// ToneStyle returns the style for a glyph tone. Unknown tones get the muted style.
func (t *Theme) ToneStyle(tone runstatus.Tone) lipgloss.Style {
	if s, ok := t.Styles.tones[tone]; ok {
		return s
	}
	return t.Styles.TextMuted
}

// Icon returns the icon for a tone.
func (t *Theme) Icon(tone runstatus.Tone) string {
	switch tone {
	case runstatus.ToneSuccess:
		return t.Icons.Success
	case runstatus.ToneFailure:
		return t.Icons.Failure
	case runstatus.ToneWarning:
		return t.Icons.Warning
	case runstatus.ToneActive:
		return t.Icons.Active
	case runstatus.ToneQueued:
		return t.Icons.Queued
	default:
		return t.Icons.Unknown
	}
}

// Glyph implements runstatus.Glyphs. Statuses outside the documented set get
// the unknown icon with their raw value as label.
func (t *Theme) Glyph(status jobstate.RunStatus) runstatus.Glyph {
	tone := runstatus.ToneFor(status)
	label := string(status)
	if label == "" {
		label = "UNKNOWN"
	}
	return runstatus.Glyph{Icon: t.Icon(tone), Label: label, Tone: tone}
}

// DefaultTheme returns the default lastrun theme.
func DefaultTheme() *Theme {
	return NewTheme(
		"default",
		ThemeColors{
			Primary: lipgloss.Color("39"),  // Bright blue
			Success: lipgloss.Color("120"), // Light green
			Failure: lipgloss.Color("196"), // Red
			Warning: lipgloss.Color("214"), // Orange
			Active:  lipgloss.Color("45"),  // Cyan
			Queued:  lipgloss.Color("250"), // Pale gray
			Text:    lipgloss.Color("252"), // Light gray
			Muted:   lipgloss.Color("242"), // Dark gray
			Subtle:  lipgloss.Color("238"), // Very dark gray
		},
		unicodeIcons(),
	)
}

// OrcaTheme returns the Orca-inspired theme.
func OrcaTheme() *Theme {
	return NewTheme(
		"orca",
		ThemeColors{
			Primary: lipgloss.Color("111"), // Pale blue
			Success: lipgloss.Color("120"), // Light green
			Failure: lipgloss.Color("196"), // Red
			Warning: lipgloss.Color("214"), // Orange
			Active:  lipgloss.Color("117"), // Sky blue
			Queued:  lipgloss.Color("250"), // Pale gray
			Text:    lipgloss.Color("252"), // Light gray
			Muted:   lipgloss.Color("242"), // Dark gray
			Subtle:  lipgloss.Color("250"), // Pale gray (lighter borders)
		},
		unicodeIcons(),
	)
}

// MonochromeTheme returns a theme with no colors and ASCII icons.
func MonochromeTheme() *Theme {
	t := NewTheme(
		"mono",
		ThemeColors{},
		ThemeIcons{
			Success: "[OK]",
			Failure: "[FAIL]",
			Warning: "[CANCEL]",
			Active:  "[RUN]",
			Queued:  "[WAIT]",
			Unknown: "[?]",
			Bullet:  "*",
			Select:  ">",
		},
	)
	t.Monochrome = true
	return t
}

func unicodeIcons() ThemeIcons {
	return ThemeIcons{
		Success: "✓",
		Failure: "✗",
		Warning: "⊘",
		Active:  "▶",
		Queued:  "○",
		Unknown: "?",
		Bullet:  "•",
		Select:  "▶",
	}
}

var builtinThemes = map[string]func() *Theme{
	"default": DefaultTheme,
	"orca":    OrcaTheme,
	"mono":    MonochromeTheme,
}

// ThemeByName returns a fresh copy of a built-in theme.
func ThemeByName(name string) (*Theme, bool) {
	ctor, ok := builtinThemes[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// ThemeNames lists the built-in theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
