package design

import "github.com/charmbracelet/lipgloss"

// ThemeOverride is the YAML shape for customizing a theme. Empty values keep
// the base theme's setting.
type ThemeOverride struct {
	Base   string         `yaml:"base"`
	Colors ColorOverrides `yaml:"colors"`
	Icons  IconOverrides  `yaml:"icons"`
}

// ColorOverrides holds optional color replacements.
type ColorOverrides struct {
	Primary string `yaml:"primary"`
	Success string `yaml:"success"`
	Failure string `yaml:"failure"`
	Warning string `yaml:"warning"`
	Active  string `yaml:"active"`
	Queued  string `yaml:"queued"`
	Text    string `yaml:"text"`
	Muted   string `yaml:"muted"`
	Subtle  string `yaml:"subtle"`
}

// IconOverrides holds optional icon replacements.
type IconOverrides struct {
	Success string `yaml:"success"`
	Failure string `yaml:"failure"`
	Warning string `yaml:"warning"`
	Active  string `yaml:"active"`
	Queued  string `yaml:"queued"`
	Unknown string `yaml:"unknown"`
}

// Apply returns a new theme named name: base with the overrides applied.
// Styles are rebuilt so they pick up the new colors.
func (o ThemeOverride) Apply(name string, base *Theme) *Theme {
	if base == nil {
		base = DefaultTheme()
	}
	colors := base.Colors
	setColor(&colors.Primary, o.Colors.Primary)
	setColor(&colors.Success, o.Colors.Success)
	setColor(&colors.Failure, o.Colors.Failure)
	setColor(&colors.Warning, o.Colors.Warning)
	setColor(&colors.Active, o.Colors.Active)
	setColor(&colors.Queued, o.Colors.Queued)
	setColor(&colors.Text, o.Colors.Text)
	setColor(&colors.Muted, o.Colors.Muted)
	setColor(&colors.Subtle, o.Colors.Subtle)

	icons := base.Icons
	setIcon(&icons.Success, o.Icons.Success)
	setIcon(&icons.Failure, o.Icons.Failure)
	setIcon(&icons.Warning, o.Icons.Warning)
	setIcon(&icons.Active, o.Icons.Active)
	setIcon(&icons.Queued, o.Icons.Queued)
	setIcon(&icons.Unknown, o.Icons.Unknown)

	t := NewTheme(name, colors, icons)
	t.Monochrome = base.Monochrome
	return t
}

func setColor(dst *lipgloss.Color, v string) {
	if v != "" {
		*dst = lipgloss.Color(v)
	}
}

func setIcon(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
