// Package render presents projected job rows as terminal, LLM or JSON output.
package render

import (
	"github.com/dkoosis/lastrun/pkg/jobstate"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

// Row pairs a job snapshot with the view of its latest run.
type Row struct {
	Job  jobstate.JobState
	View runstatus.View
}

// Renderer turns rows into output text.
type Renderer interface {
	Render(rows []Row) string
}

// Project builds one row per job using p.
func Project(p *runstatus.Projector, states []jobstate.JobState) []Row {
	rows := make([]Row, 0, len(states))
	for _, s := range states {
		rows = append(rows, Row{Job: s, View: p.Project(s)})
	}
	return rows
}

// Failing counts rows whose latest run failed.
func Failing(rows []Row) int {
	n := 0
	for _, r := range rows {
		if rv, ok := r.View.(runstatus.RunView); ok && rv.Status == jobstate.RunFailure {
			n++
		}
	}
	return n
}
