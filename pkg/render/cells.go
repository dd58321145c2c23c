package render

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/lastrun/pkg/jobstate"
)

// titler is not safe for concurrent use; each renderer call builds its own.
func newTitler() cases.Caser {
	return cases.Title(language.English)
}

// humanize turns an enum like NOT_STARTED into "Not Started".
func humanize(c cases.Caser, s string) string {
	if s == "" {
		return "-"
	}
	return c.String(strings.ReplaceAll(strings.ToLower(s), "_", " "))
}

// scheduleCell describes the job's trigger payload.
func scheduleCell(s jobstate.JobState) string {
	if d := jobstate.Describe(s.JobSpecificData); d != "" {
		return d
	}
	return "-"
}

// TickTime formats a tick timestamp in UTC.
func TickTime(ts float64) string {
	if ts <= 0 {
		return ""
	}
	sec := int64(ts)
	nsec := int64((ts - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).UTC().Format("2006-01-02 15:04")
}

// tickCell is the plain latest-tick tag: status plus time.
func tickCell(c cases.Caser, s jobstate.JobState) string {
	tick, ok := s.LatestTick()
	if !ok {
		return "-"
	}
	parts := []string{humanize(c, string(tick.Status))}
	if at := TickTime(tick.Timestamp); at != "" {
		parts = append(parts, at)
	}
	return strings.Join(parts, " ")
}

func countCell(n int) string {
	return strconv.Itoa(n)
}
