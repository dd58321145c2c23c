package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/lastrun/pkg/runstatus"
)

// LLM renders terse plain text with no ANSI sequences, one line per job.
type LLM struct{}

// NewLLM returns a plain-text renderer.
func NewLLM() *LLM {
	return &LLM{}
}

func (*LLM) Render(rows []Row) string {
	var sb strings.Builder
	failing := Failing(rows)
	scope := "OK"
	if failing > 0 {
		scope = "FAIL"
	}
	fmt.Fprintf(&sb, "JOBS: %s (%d jobs, %d failing)\n", scope, len(rows), failing)

	caser := newTitler()
	for _, r := range rows {
		fmt.Fprintf(&sb, "%s type=%s status=%s running=%d schedule=%q tick=%q latest_run=%s\n",
			r.Job.Name,
			strings.ToLower(string(r.Job.JobType)),
			strings.ToLower(string(r.Job.Status)),
			r.Job.RunningCount,
			scheduleCell(r.Job),
			tickCell(caser, r.Job),
			plainView(r.View),
		)
	}
	return sb.String()
}

// plainView is the unstyled form of a latest-run view.
func plainView(v runstatus.View) string {
	switch view := v.(type) {
	case runstatus.RunView:
		return fmt.Sprintf("%s %s %s", view.Glyph.Label, view.Link.Label, view.Link.Href)
	case runstatus.EmptyView:
		return view.Text
	default:
		return runstatus.EmptyText
	}
}
