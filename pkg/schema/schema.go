// Package schema declares the query fragments the job dashboard's views
// depend on. Every fragment is registered in Fragments during package
// initialization, so composition errors surface at start-up.
package schema

import "github.com/dkoosis/lastrun/pkg/fragment"

// Fragments is the registry holding every fragment declared in this package.
var Fragments = fragment.NewRegistry()

var limitOne = fragment.Arg{Name: "limit", Value: "1"}

// PythonErrorFragment is owned by the error display.
var PythonErrorFragment = Fragments.MustRegister(fragment.Fragment{
	Name: "PythonErrorFragment",
	On:   "PythonError",
	Selections: []fragment.Selection{
		fragment.F("message"),
		fragment.F("stack"),
		fragment.F("cause",
			fragment.F("message"),
			fragment.F("stack"),
		),
	},
})

// RepositoryOriginFragment is owned by the origin display.
var RepositoryOriginFragment = Fragments.MustRegister(fragment.Fragment{
	Name: "RepositoryOriginFragment",
	On:   "RepositoryOrigin",
	Selections: []fragment.Selection{
		fragment.F("id"),
		fragment.F("repositoryName"),
		fragment.F("repositoryLocationName"),
		fragment.F("repositoryLocationMetadata",
			fragment.F("key"),
			fragment.F("value"),
		),
	},
})

// TickTagFragment is owned by the latest-tick tag.
var TickTagFragment = Fragments.MustRegister(fragment.Fragment{
	Name: "TickTagFragment",
	On:   "InstigationTick",
	Selections: []fragment.Selection{
		fragment.F("id"),
		fragment.F("status"),
		fragment.F("timestamp"),
		fragment.F("skipReason"),
		fragment.F("runIds"),
		fragment.F("error", PythonErrorFragment.Spread()),
	},
})

// JobStateFragment is everything the latest-run view and its nested
// presentational pieces need from a job state. Fields owned by the nested
// fragments are not repeated here.
var JobStateFragment = Fragments.MustRegister(fragment.Fragment{
	Name: "JobStateFragment",
	On:   "JobState",
	Selections: []fragment.Selection{
		fragment.F("id"),
		fragment.F("name"),
		fragment.F("jobType"),
		fragment.F("status"),
		fragment.F("repositoryOrigin", RepositoryOriginFragment.Spread()),
		fragment.F("jobSpecificData",
			fragment.F("__typename"),
			fragment.On("SensorJobData", fragment.F("lastRunKey")),
			fragment.On("ScheduleJobData", fragment.F("cronSchedule")),
		),
		fragment.F("runs",
			fragment.F("id"),
			fragment.F("runId"),
			fragment.F("status"),
		).WithArgs(limitOne),
		fragment.F("ticks", TickTagFragment.Spread()).WithArgs(limitOne),
		fragment.F("runningCount"),
	},
})

// JobStatesQuery lists every job state, embedding JobStateFragment. A
// backend failure comes back as a PythonError member of the union.
var JobStatesQuery = fragment.Operation{
	Kind: "query",
	Name: "JobStatesQuery",
	Selections: []fragment.Selection{
		fragment.F("jobStatesOrError",
			fragment.F("__typename"),
			fragment.On("JobStates",
				fragment.F("results", JobStateFragment.Spread()),
			),
			PythonErrorFragment.Spread(),
		),
	},
}

func init() {
	if _, err := Fragments.OperationDocument(JobStatesQuery); err != nil {
		panic(err)
	}
}
