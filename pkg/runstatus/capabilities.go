package runstatus

import (
	"net/url"
	"strings"

	"github.com/dkoosis/lastrun/pkg/jobstate"
)

// Glyphs maps a run status to its glyph. Implementations must return a glyph
// for every value, including statuses they do not recognise.
type Glyphs interface {
	Glyph(status jobstate.RunStatus) Glyph
}

// Navigator builds the address of a run's detail page.
type Navigator interface {
	RunHref(runID string) string
}

// Titler turns a run ID into its visible label. Implementations must be
// deterministic.
type Titler interface {
	Title(runID string) string
}

// GlyphsFunc adapts a function to Glyphs.
type GlyphsFunc func(jobstate.RunStatus) Glyph

func (f GlyphsFunc) Glyph(s jobstate.RunStatus) Glyph { return f(s) }

// TitlerFunc adapts a function to Titler.
type TitlerFunc func(string) string

func (f TitlerFunc) Title(runID string) string { return f(runID) }

// PathNavigator links to <BaseURL>/runs/<runID>.
type PathNavigator struct {
	BaseURL string
}

func (n PathNavigator) RunHref(runID string) string {
	return strings.TrimRight(n.BaseURL, "/") + "/runs/" + url.PathEscape(runID)
}

// ShortTitle labels a run by the segment of its ID before the first dash,
// which for UUID run IDs is the leading eight hex digits.
var ShortTitle = TitlerFunc(func(runID string) string {
	head, _, _ := strings.Cut(runID, "-")
	return head
})

// StatusLabels is a Glyphs without icons: label and tone only. It is the
// fallback when no theme is injected.
var StatusLabels = GlyphsFunc(func(s jobstate.RunStatus) Glyph {
	return Glyph{Label: string(s), Tone: ToneFor(s)}
})

// ToneFor returns the tone conventionally used for s.
func ToneFor(s jobstate.RunStatus) Tone {
	switch s {
	case jobstate.RunSuccess:
		return ToneSuccess
	case jobstate.RunFailure:
		return ToneFailure
	case jobstate.RunCanceling, jobstate.RunCanceled:
		return ToneWarning
	case jobstate.RunStarting, jobstate.RunStarted:
		return ToneActive
	case jobstate.RunQueued, jobstate.RunNotStarted, jobstate.RunManaged:
		return ToneQueued
	default:
		return ToneUnknown
	}
}
