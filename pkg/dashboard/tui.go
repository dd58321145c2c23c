package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/lastrun/pkg/design"
	"github.com/dkoosis/lastrun/pkg/jobstate"
	"github.com/dkoosis/lastrun/pkg/render"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

const spinnerInterval = 150 * time.Millisecond

// Options configures the dashboard.
type Options struct {
	Load      Loader
	Watcher   *Watcher // optional; nil disables automatic reload
	Projector *runstatus.Projector
	Theme     *design.Theme
}

// Run launches the interactive dashboard and blocks until the user quits or
// ctx is cancelled. The exit code is 1 when any latest run in the final
// snapshot failed.
func Run(ctx context.Context, opts Options) (int, error) {
	program := tea.NewProgram(newModel(opts), tea.WithContext(ctx), tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return 2, err
	}
	return finalModel.(model).exitCode(), nil
}

type model struct {
	load      Loader
	watcher   *Watcher
	projector *runstatus.Projector
	theme     *CompiledTheme
	term      *render.Terminal
	keys      keyMap

	rows     []render.Row
	err      error
	loadedAt time.Time
	selected int
	frame    int

	viewport    viewport.Model
	ready       bool
	width       int
	height      int
	listWidth   int
	detailWidth int
}

func newModel(opts Options) model {
	p := opts.Projector
	ct := Compile(opts.Theme)
	if p == nil {
		p = runstatus.New(runstatus.WithGlyphs(ct.Base))
	}
	vp := viewport.New(0, 0)
	vp.SetContent("Loading…")
	return model{
		load:      opts.Load,
		watcher:   opts.Watcher,
		projector: p,
		theme:     ct,
		term:      render.NewTerminal(ct.Base, 0),
		keys:      defaultKeyMap(),
		viewport:  vp,
	}
}

type tickMsg struct{}

type loadedMsg struct {
	states []jobstate.JobState
	err    error
	at     time.Time
}

type fileChangedMsg struct{}

type watchErrMsg struct{ err error }

func (m model) Init() tea.Cmd {
	return tea.Batch(m.reload(), m.listenChanges(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m model) reload() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		if load == nil {
			return loadedMsg{err: fmt.Errorf("no snapshot source"), at: time.Now()}
		}
		states, err := load()
		return loadedMsg{states: states, err: err, at: time.Now()}
	}
}

func (m model) listenChanges() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return fileChangedMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.rows)-1 {
				m.selected++
				m.refreshViewport()
			}
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			return m, m.reload()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.refreshViewport()
	case tickMsg:
		m.frame++
		return m, tick()
	case loadedMsg:
		if msg.err != nil {
			// Keep showing the last good snapshot.
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.loadedAt = msg.at
		m.rows = render.Project(m.projector, msg.states)
		if m.selected >= len(m.rows) {
			m.selected = max(len(m.rows)-1, 0)
		}
		if m.ready {
			m.layout()
		}
		m.refreshViewport()
		return m, nil
	case fileChangedMsg:
		return m, tea.Batch(m.reload(), m.listenChanges())
	case watchErrMsg:
		m.err = msg.err
		return m, m.listenChanges()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// layout sizes the panels from the window and the current job names.
func (m *model) layout() {
	m.listWidth = m.calculateListWidth()
	if m.listWidth < 24 {
		m.listWidth = 24
	}
	if m.listWidth > m.width/2 {
		m.listWidth = m.width / 2
	}
	m.detailWidth = m.width - m.listWidth - 1
	m.viewport.Width = max(m.detailWidth-6, 10) // border + padding
	m.viewport.Height = max(m.height-10, 3)     // title, header, status bar, borders
}

func (m *model) calculateListWidth() int {
	maxWidth := 0
	for _, row := range m.rows {
		// "▶ ✓ name"
		if w := lipgloss.Width(row.Job.Name) + 8; w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth + 4
}

func (m *model) refreshViewport() {
	if m.selected < 0 || m.selected >= len(m.rows) {
		m.viewport.SetContent(m.theme.LabelStyle.Render("No jobs"))
		return
	}
	m.viewport.SetContent(renderDetail(m.rows[m.selected], m.term, m.theme))
	m.viewport.GotoTop()
}

func (m model) View() string {
	if !m.ready {
		return "Loading dashboard..."
	}
	ct := m.theme

	title := ct.TitleStyle.Width(m.width).Render(ct.TitleText)

	// title(1) + status(2) + box chrome(4)
	contentHeight := max(m.height-7, 5)

	listPanel := ct.ListStyle.
		Width(m.listWidth).
		Render(fitHeight(m.renderList(), contentHeight))

	detail := ct.LabelStyle.Render("No jobs")
	if m.selected >= 0 && m.selected < len(m.rows) {
		header := ct.DetailHeaderStyle.Render(m.rows[m.selected].Job.Name)
		detail = header + "\n\n" + m.viewport.View()
	}
	detailPanel := ct.DetailBoxStyle.
		Width(m.detailWidth).
		Render(fitHeight(detail, contentHeight))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	return lipgloss.JoinVertical(lipgloss.Left, title, panels, m.statusBar())
}

func (m model) statusBar() string {
	ct := m.theme
	if m.err != nil {
		return ct.StatusBarStyle.Render(ct.ErrorStyle.Render("error: "+m.err.Error()) + " • " + m.keys.help())
	}
	status := fmt.Sprintf("%d jobs", len(m.rows))
	if failing := render.Failing(m.rows); failing > 0 {
		status += fmt.Sprintf(", %d failing", failing)
	}
	if !m.loadedAt.IsZero() {
		status += " • loaded " + m.loadedAt.Format("15:04:05")
	}
	return ct.StatusBarStyle.Render(status + " • " + m.keys.help())
}

func (m model) renderList() string {
	ct := m.theme
	if len(m.rows) == 0 {
		return ct.LabelStyle.Render("No jobs")
	}
	lineWidth := max(m.listWidth-6, 16)
	lines := make([]string, 0, len(m.rows))
	for i, row := range m.rows {
		if i == m.selected {
			content := fmt.Sprintf("%s %s %s", ct.Base.Icons.Select, m.rawIcon(row), row.Job.Name)
			lines = append(lines, ct.SelectedStyle.Width(lineWidth).Render(content))
			continue
		}
		lines = append(lines, ct.UnselectedStyle.Render("  "+m.styledIcon(row)+" "+row.Job.Name))
	}
	return strings.Join(lines, "\n")
}

// rawIcon returns the unstyled status icon for a row, animated while the
// latest run is in flight.
func (m model) rawIcon(row render.Row) string {
	rv, ok := row.View.(runstatus.RunView)
	if !ok {
		return m.theme.Base.Icons.Bullet
	}
	if rv.Status.InProgress() {
		return m.theme.spinnerFrame(m.frame)
	}
	return rv.Glyph.Icon
}

func (m model) styledIcon(row render.Row) string {
	icon := m.rawIcon(row)
	if rv, ok := row.View.(runstatus.RunView); ok {
		return m.theme.Base.ToneStyle(rv.Glyph.Tone).Render(icon)
	}
	return m.theme.Base.Styles.TextMuted.Render(icon)
}

func (m model) exitCode() int {
	if render.Failing(m.rows) > 0 {
		return 1
	}
	return 0
}

// fitHeight pads or truncates s to exactly n lines.
func fitHeight(s string, n int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines[:n], "\n")
}
