package render

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/dkoosis/lastrun/pkg/jobstate"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON renders rows as an indented JSON document for automation.
type JSON struct{}

// NewJSON returns a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

type jsonReport struct {
	Jobs    int       `json:"jobs"`
	Failing int       `json:"failing"`
	Rows    []jsonRow `json:"rows"`
}

type jsonRow struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	JobType      jobstate.JobType `json:"jobType"`
	Status       string           `json:"status"`
	Repository   string           `json:"repository,omitempty"`
	CronSchedule string           `json:"cronSchedule,omitempty"`
	LastRunKey   *string          `json:"lastRunKey,omitempty"`
	RunningCount int              `json:"runningCount"`
	LatestTick   *jobstate.Tick   `json:"latestTick,omitempty"`
	LatestRun    *jsonRun         `json:"latestRun"`
	Empty        string           `json:"empty,omitempty"`
}

type jsonRun struct {
	RunID  string `json:"runId"`
	Status string `json:"status"`
	Tone   string `json:"tone"`
	Title  string `json:"title"`
	Href   string `json:"href"`
	Target string `json:"target"`
}

type trigger struct {
	cronSchedule string
	lastRunKey   *string
}

func (*JSON) Render(rows []Row) string {
	report := jsonReport{Jobs: len(rows), Failing: Failing(rows), Rows: make([]jsonRow, 0, len(rows))}
	for _, r := range rows {
		report.Rows = append(report.Rows, toJSONRow(r))
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		// Only plain values are marshalled; this cannot fail in practice.
		return "{}\n"
	}
	return string(data) + "\n"
}

func toJSONRow(r Row) jsonRow {
	row := jsonRow{
		ID:           r.Job.ID,
		Name:         r.Job.Name,
		JobType:      r.Job.JobType,
		Status:       string(r.Job.Status),
		Repository:   r.Job.RepositoryOrigin.Address(),
		RunningCount: r.Job.RunningCount,
	}
	trig := jobstate.MatchSpecificData(r.Job.JobSpecificData,
		func(s jobstate.SensorData) trigger { return trigger{lastRunKey: s.LastRunKey} },
		func(s jobstate.ScheduleData) trigger { return trigger{cronSchedule: s.CronSchedule} },
		func() trigger { return trigger{} },
	)
	row.CronSchedule, row.LastRunKey = trig.cronSchedule, trig.lastRunKey
	if tick, ok := r.Job.LatestTick(); ok {
		row.LatestTick = &tick
	}
	switch view := r.View.(type) {
	case runstatus.RunView:
		row.LatestRun = &jsonRun{
			RunID:  view.RunID,
			Status: string(view.Status),
			Tone:   string(view.Glyph.Tone),
			Title:  view.Link.Label,
			Href:   view.Link.Href,
			Target: string(view.Link.Target),
		}
	case runstatus.EmptyView:
		row.Empty = view.Text
	}
	return row
}
