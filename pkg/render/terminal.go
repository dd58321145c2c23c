package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/dkoosis/lastrun/pkg/design"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

const maxNameWidth = 40

// Terminal renders a styled job table for a TTY.
type Terminal struct {
	theme      *design.Theme
	width      int
	hyperlinks bool
}

// NewTerminal returns a terminal renderer. Hyperlinks are emitted as OSC 8
// sequences unless the theme is monochrome.
func NewTerminal(theme *design.Theme, width int) *Terminal {
	if theme == nil {
		theme = design.DefaultTheme()
	}
	return &Terminal{theme: theme, width: width, hyperlinks: !theme.Monochrome}
}

// WithHyperlinks overrides whether links are emitted as OSC 8 sequences.
func (t *Terminal) WithHyperlinks(on bool) *Terminal {
	t.hyperlinks = on
	return t
}

var columns = []string{"JOB", "TYPE", "SCHEDULE", "STATUS", "RUNNING", "LAST TICK", "LATEST RUN"}

// Render draws a header row and one row per job.
func (t *Terminal) Render(rows []Row) string {
	if len(rows) == 0 {
		return t.theme.Styles.TextMuted.Render("No jobs") + "\n"
	}

	nameWidth := maxNameWidth
	if quarter := t.width / 4; quarter >= 8 && quarter < nameWidth {
		nameWidth = quarter
	}

	caser := newTitler()
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{
			t.theme.Styles.TextBold.Render(runewidth.Truncate(r.Job.Name, nameWidth, "…")),
			humanize(caser, string(r.Job.JobType)),
			scheduleCell(r.Job),
			humanize(caser, string(r.Job.Status)),
			countCell(r.Job.RunningCount),
			tickCell(caser, r.Job),
			t.RenderView(r.View),
		})
	}

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = design.VisualWidth(c)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := design.VisualWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = t.theme.Styles.Header.Render(design.PadRight(c, widths[i]))
	}
	sb.WriteString(strings.TrimRight(strings.Join(header, "  "), " ") + "\n")
	for _, row := range cells {
		padded := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				padded[i] = cell
				continue
			}
			padded[i] = design.PadRight(cell, widths[i])
		}
		sb.WriteString(strings.Join(padded, "  ") + "\n")
	}

	if failing := Failing(rows); failing > 0 {
		sb.WriteString("\n" + t.theme.ToneStyle(runstatus.ToneFailure).Render(
			countCell(failing)+" of "+countCell(len(rows))+" job(s) failing") + "\n")
	}
	return sb.String()
}

// RenderView renders a latest-run view: the muted empty text, or the status
// glyph followed by a link to the run.
func (t *Terminal) RenderView(v runstatus.View) string {
	switch view := v.(type) {
	case runstatus.RunView:
		glyph := t.theme.ToneStyle(view.Glyph.Tone).Render(glyphText(view.Glyph))
		return lipgloss.JoinHorizontal(lipgloss.Center, glyph, " ", t.link(view.Link))
	case runstatus.EmptyView:
		return t.theme.Styles.TextMuted.Render(view.Text)
	default:
		return t.theme.Styles.TextMuted.Render(runstatus.EmptyText)
	}
}

// link styles the label before wrapping it, so styling never splits the
// OSC 8 sequence.
func (t *Terminal) link(l runstatus.Link) string {
	label := t.theme.Styles.Link.Render(l.Label)
	if !t.hyperlinks {
		return label + " " + t.theme.Styles.TextMuted.Render("("+l.Href+")")
	}
	return termenv.Hyperlink(l.Href, label)
}

func glyphText(g runstatus.Glyph) string {
	if g.Icon == "" {
		return g.Label
	}
	return g.Icon + " " + g.Label
}
