// Package runstatus reduces a job-state snapshot to the view of its latest run.
//
// Projection is pure: styling, routing and title formatting are injected as
// capabilities, and the resulting View is plain data for a renderer.
package runstatus

import "github.com/dkoosis/lastrun/pkg/jobstate"

// EmptyText is shown when a job has never run.
const EmptyText = "None"

// Tone is the semantic color family of a glyph.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneFailure Tone = "failure"
	ToneWarning Tone = "warning"
	ToneActive  Tone = "active"
	ToneQueued  Tone = "queued"
	ToneUnknown Tone = "unknown"
)

// Glyph is the visual indicator for a run status.
type Glyph struct {
	Icon  string
	Label string
	Tone  Tone
}

// Target describes how a link is opened.
type Target string

// TargetNewContext opens the link without replacing the current view.
const TargetNewContext Target = "_blank"

// Link points at a run's detail page.
type Link struct {
	Href   string
	Label  string
	Target Target
}

// View is either an EmptyView or a RunView.
type View interface {
	view()
}

// EmptyView is the muted placeholder for a job without runs. It has no link
// and no status glyph.
type EmptyView struct {
	Text string
}

// RunView shows the latest run's status glyph next to a link to the run.
type RunView struct {
	RunID  string
	Status jobstate.RunStatus
	Glyph  Glyph
	Link   Link
}

func (EmptyView) view() {}
func (RunView) view()   {}
