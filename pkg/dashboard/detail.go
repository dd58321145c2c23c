package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkoosis/lastrun/pkg/jobstate"
	"github.com/dkoosis/lastrun/pkg/render"
)

type labeled struct{ label, value string }

// renderDetail describes one job: its latest run, trigger payload, latest
// tick and repository origin.
func renderDetail(row render.Row, term *render.Terminal, ct *CompiledTheme) string {
	job := row.Job
	var sb strings.Builder

	field := func(label, value string) {
		fmt.Fprintf(&sb, "%s %s\n", ct.LabelStyle.Render(fmt.Sprintf("%-12s", label+":")), value)
	}

	field("Latest run", term.RenderView(row.View))
	field("Type", string(job.JobType))
	field("Status", string(job.Status))
	field("Running", strconv.Itoa(job.RunningCount))
	trig := jobstate.MatchSpecificData(job.JobSpecificData,
		func(s jobstate.SensorData) labeled {
			cursor := "-"
			if s.LastRunKey != nil && *s.LastRunKey != "" {
				cursor = *s.LastRunKey
			}
			return labeled{"Cursor", cursor}
		},
		func(s jobstate.ScheduleData) labeled { return labeled{"Schedule", s.CronSchedule} },
		func() labeled { return labeled{} },
	)
	if trig.label != "" {
		field(trig.label, trig.value)
	}

	sb.WriteString("\n")
	sb.WriteString(ct.DetailHeaderStyle.Render("Latest tick"))
	sb.WriteString("\n")
	if tick, ok := job.LatestTick(); ok {
		field("Status", string(tick.Status))
		if at := render.TickTime(tick.Timestamp); at != "" {
			field("At", at+" UTC")
		}
		if tick.SkipReason != "" {
			field("Skipped", tick.SkipReason)
		}
		if len(tick.RunIDs) > 0 {
			field("Runs", strings.Join(tick.RunIDs, ", "))
		}
		if tick.Error != nil {
			sb.WriteString(render.PythonError(tick.Error, ct.Base))
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString(ct.LabelStyle.Render("No ticks"))
		sb.WriteString("\n")
	}

	origin := job.RepositoryOrigin
	if origin.RepositoryName != "" || origin.RepositoryLocationName != "" {
		sb.WriteString("\n")
		sb.WriteString(ct.DetailHeaderStyle.Render("Origin"))
		sb.WriteString("\n")
		field("Repository", origin.Address())
		for _, md := range origin.RepositoryLocationMetadata {
			field(md.Key, md.Value)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
