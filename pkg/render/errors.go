package render

import (
	"errors"
	"strings"

	"github.com/dkoosis/lastrun/pkg/design"
	"github.com/dkoosis/lastrun/pkg/jobstate"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

// Error renders an input or upstream failure for display. Backend errors show
// their stack and cause chain; anything else is a single line.
func Error(err error, theme *design.Theme) string {
	if theme == nil {
		theme = design.MonochromeTheme()
	}
	var upstream *jobstate.UpstreamError
	if errors.As(err, &upstream) && upstream.Err != nil {
		return PythonError(upstream.Err, theme)
	}
	return theme.ToneStyle(runstatus.ToneFailure).Render("error: "+err.Error()) + "\n"
}

// PythonError renders a backend error with its stack and causes.
func PythonError(e *jobstate.PythonError, theme *design.Theme) string {
	var sb strings.Builder
	failure := theme.ToneStyle(runstatus.ToneFailure)
	for depth := 0; e != nil; depth++ {
		prefix := "error: "
		if depth > 0 {
			sb.WriteString("\n")
			prefix = "caused by: "
		}
		sb.WriteString(failure.Render(prefix+strings.TrimSpace(e.Message)) + "\n")
		for _, frame := range e.Stack {
			for _, line := range strings.Split(strings.TrimRight(frame, "\n"), "\n") {
				sb.WriteString(theme.Styles.TextMuted.Render("    "+line) + "\n")
			}
		}
		e = e.Cause
	}
	return sb.String()
}
