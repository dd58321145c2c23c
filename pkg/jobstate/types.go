// Package jobstate defines the job-state snapshot fetched for the dashboard.
// Snapshots are immutable values; consumers read them and never write back.
package jobstate

// JobType discriminates how a job is triggered.
type JobType string

const (
	JobTypeSensor   JobType = "SENSOR"
	JobTypeSchedule JobType = "SCHEDULE"
)

// Known reports whether t is one of the job types this package models.
func (t JobType) Known() bool {
	return t == JobTypeSensor || t == JobTypeSchedule
}

// InstigationStatus is the enablement status of the job definition itself.
type InstigationStatus string

const (
	StatusRunning InstigationStatus = "RUNNING"
	StatusStopped InstigationStatus = "STOPPED"
)

// RunStatus is the status of a single run. Values the backend adds later are
// preserved as-is; Known reports whether the value is one listed here.
type RunStatus string

const (
	RunQueued     RunStatus = "QUEUED"
	RunNotStarted RunStatus = "NOT_STARTED"
	RunManaged    RunStatus = "MANAGED"
	RunStarting   RunStatus = "STARTING"
	RunStarted    RunStatus = "STARTED"
	RunSuccess    RunStatus = "SUCCESS"
	RunFailure    RunStatus = "FAILURE"
	RunCanceling  RunStatus = "CANCELING"
	RunCanceled   RunStatus = "CANCELED"
)

var knownRunStatuses = map[RunStatus]bool{
	RunQueued: true, RunNotStarted: true, RunManaged: true,
	RunStarting: true, RunStarted: true, RunSuccess: true,
	RunFailure: true, RunCanceling: true, RunCanceled: true,
}

// Known reports whether s is a documented run status.
func (s RunStatus) Known() bool {
	return knownRunStatuses[s]
}

// InProgress reports whether a run in status s has not finished yet.
func (s RunStatus) InProgress() bool {
	switch s {
	case RunQueued, RunNotStarted, RunManaged, RunStarting, RunStarted, RunCanceling:
		return true
	}
	return false
}

// TickStatus is the outcome of one evaluation of a job's trigger.
type TickStatus string

const (
	TickStarted TickStatus = "STARTED"
	TickSkipped TickStatus = "SKIPPED"
	TickSuccess TickStatus = "SUCCESS"
	TickFailure TickStatus = "FAILURE"
)

// Run summarises one execution of a job.
type Run struct {
	ID     string    `json:"id"`
	RunID  string    `json:"runId"`
	Status RunStatus `json:"status"`
}

// Tick summarises one evaluation of a job's trigger condition.
type Tick struct {
	ID         string       `json:"id"`
	Status     TickStatus   `json:"status"`
	Timestamp  float64      `json:"timestamp"` // seconds since epoch
	SkipReason string       `json:"skipReason,omitempty"`
	RunIDs     []string     `json:"runIds,omitempty"`
	Error      *PythonError `json:"error,omitempty"`
}

// PythonError is the backend's serialized exception, with an optional cause chain.
type PythonError struct {
	Message string       `json:"message"`
	Stack   []string     `json:"stack,omitempty"`
	Cause   *PythonError `json:"cause,omitempty"`
}

// MetadataEntry is a key/value pair attached to a repository location.
type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RepositoryOrigin identifies where a job's definition is loaded from.
type RepositoryOrigin struct {
	ID                         string          `json:"id"`
	RepositoryName             string          `json:"repositoryName"`
	RepositoryLocationName     string          `json:"repositoryLocationName"`
	RepositoryLocationMetadata []MetadataEntry `json:"repositoryLocationMetadata,omitempty"`
}

// Address returns the "repository@location" form used in the dashboard.
func (o RepositoryOrigin) Address() string {
	if o.RepositoryLocationName == "" {
		return o.RepositoryName
	}
	return o.RepositoryName + "@" + o.RepositoryLocationName
}

// JobState is a point-in-time snapshot of one job and its latest activity.
//
// Runs and Ticks are windowed by the fetch layer to at most one element,
// most recent first. That window is not re-validated here: LatestRun and
// LatestTick use the first element and ignore anything after it.
type JobState struct {
	ID               string
	Name             string
	JobType          JobType
	Status           InstigationStatus
	RepositoryOrigin RepositoryOrigin
	JobSpecificData  SpecificData
	Runs             []Run
	Ticks            []Tick
	RunningCount     int
}

// LatestRun returns the most recent run, if any.
func (s JobState) LatestRun() (Run, bool) {
	if len(s.Runs) == 0 {
		return Run{}, false
	}
	return s.Runs[0], true
}

// LatestTick returns the most recent tick, if any.
func (s JobState) LatestTick() (Tick, bool) {
	if len(s.Ticks) == 0 {
		return Tick{}, false
	}
	return s.Ticks[0], true
}
