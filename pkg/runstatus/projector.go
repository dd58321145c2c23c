package runstatus

import "github.com/dkoosis/lastrun/pkg/jobstate"

// Projector builds latest-run views. The zero value is not usable; create one
// with New.
type Projector struct {
	glyphs Glyphs
	nav    Navigator
	titler Titler
}

// Option configures a Projector.
type Option func(*Projector)

// WithGlyphs sets the status glyph provider.
func WithGlyphs(g Glyphs) Option {
	return func(p *Projector) { p.glyphs = g }
}

// WithNavigator sets how run links are addressed.
func WithNavigator(n Navigator) Option {
	return func(p *Projector) { p.nav = n }
}

// WithTitler sets how run links are labelled.
func WithTitler(t Titler) Option {
	return func(p *Projector) { p.titler = t }
}

// New returns a Projector. Unset capabilities default to StatusLabels,
// a root-relative PathNavigator and ShortTitle.
func New(opts ...Option) *Projector {
	p := &Projector{
		glyphs: StatusLabels,
		nav:    PathNavigator{},
		titler: ShortTitle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project returns the view of the job's latest run. A job without runs gets
// the EmptyView. Only the first run is considered; the snapshot is not
// re-sorted.
func (p *Projector) Project(state jobstate.JobState) View {
	run, ok := state.LatestRun()
	if !ok {
		return EmptyView{Text: EmptyText}
	}
	return RunView{
		RunID:  run.RunID,
		Status: run.Status,
		Glyph:  p.glyphs.Glyph(run.Status),
		Link: Link{
			Href:   p.nav.RunHref(run.RunID),
			Label:  p.titler.Title(run.RunID),
			Target: TargetNewContext,
		},
	}
}
