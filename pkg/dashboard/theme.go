package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/lastrun/pkg/design"
)

// defaultSpinnerFrames animate the icon of jobs whose latest run is in flight.
var defaultSpinnerFrames = []string{"⠋", "⠙", "⠸", "⠴", "⠦", "⠇"}

// CompiledTheme holds pre-built lipgloss styles for the dashboard, derived
// from a design.Theme.
type CompiledTheme struct {
	Base *design.Theme

	TitleStyle        lipgloss.Style
	ListStyle         lipgloss.Style
	SelectedStyle     lipgloss.Style
	UnselectedStyle   lipgloss.Style
	DetailBoxStyle    lipgloss.Style
	DetailHeaderStyle lipgloss.Style
	LabelStyle        lipgloss.Style
	StatusBarStyle    lipgloss.Style
	ErrorStyle        lipgloss.Style

	TitleText     string
	SpinnerFrames []string
}

// Compile builds dashboard styles from t. A nil theme compiles the default.
func Compile(t *design.Theme) *CompiledTheme {
	if t == nil {
		t = design.DefaultTheme()
	}
	ct := &CompiledTheme{
		Base:          t,
		TitleText:     "lastrun",
		SpinnerFrames: defaultSpinnerFrames,
	}

	border := lipgloss.RoundedBorder()
	if t.Monochrome {
		border = lipgloss.NormalBorder()
		ct.SpinnerFrames = []string{"-", "\\", "|", "/"}
	}

	ct.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(t.Colors.Primary).
		Padding(0, 1)

	ct.ListStyle = lipgloss.NewStyle().
		Border(border).
		BorderForeground(t.Colors.Subtle).
		Padding(1, 2)

	ct.SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(t.Colors.Primary).
		Padding(0, 1)

	ct.UnselectedStyle = lipgloss.NewStyle().
		Foreground(t.Colors.Text).
		Padding(0, 1)

	ct.DetailBoxStyle = lipgloss.NewStyle().
		Border(border).
		BorderForeground(t.Colors.Primary).
		Padding(1, 2)

	ct.DetailHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Colors.Primary)

	ct.LabelStyle = lipgloss.NewStyle().Foreground(t.Colors.Muted)

	ct.StatusBarStyle = lipgloss.NewStyle().
		Foreground(t.Colors.Muted).
		MarginTop(1)

	ct.ErrorStyle = lipgloss.NewStyle().Foreground(t.Colors.Failure).Bold(true)

	if t.Monochrome {
		ct.TitleStyle = lipgloss.NewStyle().Bold(true)
		ct.SelectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
		ct.ErrorStyle = lipgloss.NewStyle().Bold(true)
	}
	return ct
}

// spinnerFrame returns the frame for animation step n.
func (ct *CompiledTheme) spinnerFrame(n int) string {
	if len(ct.SpinnerFrames) == 0 {
		return ""
	}
	return ct.SpinnerFrames[n%len(ct.SpinnerFrames)]
}
