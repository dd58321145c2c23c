package render

import (
	"strings"
	"testing"

	"github.com/dkoosis/lastrun/pkg/jobstate"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

func TestLLM_RenderNoJobs(t *testing.T) {
	out := NewLLM().Render(nil)
	if out != "JOBS: OK (0 jobs, 0 failing)\n" {
		t.Errorf("unexpected output for no jobs:\n%q", out)
	}
}

func TestLLM_RenderSensorCursor(t *testing.T) {
	key := "s3://bucket/2024-01-01.parquet"
	rows := Project(projector(), []jobstate.JobState{{
		Name:            "s3_sensor",
		JobType:         jobstate.JobTypeSensor,
		Status:          jobstate.StatusRunning,
		JobSpecificData: jobstate.SensorData{LastRunKey: &key},
		Runs:            []jobstate.Run{{RunID: "queued-run", Status: jobstate.RunQueued}},
		Ticks:           []jobstate.Tick{{Status: jobstate.TickSkipped}},
	}})

	out := NewLLM().Render(rows)
	if !strings.Contains(out, `schedule="last key s3://bucket/2024-01-01.parquet"`) {
		t.Errorf("expected sensor cursor in output:\n%s", out)
	}
	if !strings.Contains(out, `tick="Skipped"`) {
		t.Errorf("expected tick without timestamp in output:\n%s", out)
	}
	if !strings.Contains(out, "latest_run=QUEUED queued https://dash.example.com/runs/queued-run") {
		t.Errorf("expected short title in latest run:\n%s", out)
	}
	if !strings.Contains(out, "JOBS: OK (1 jobs, 0 failing)") {
		t.Errorf("queued run must not count as failing:\n%s", out)
	}
}

func TestPlainView(t *testing.T) {
	if got := plainView(runstatus.EmptyView{Text: runstatus.EmptyText}); got != "None" {
		t.Errorf("plainView(empty) = %q, want None", got)
	}
	if got := plainView(nil); got != runstatus.EmptyText {
		t.Errorf("plainView(nil) = %q, want %q", got, runstatus.EmptyText)
	}
}
