package jobstate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envelopeFixture = `{
  "data": {
    "jobStatesOrError": {
      "__typename": "JobStates",
      "results": [
        {
          "id": "a1b2",
          "name": "nightly_etl_schedule",
          "jobType": "SCHEDULE",
          "status": "RUNNING",
          "repositoryOrigin": {
            "id": "origin-1",
            "repositoryName": "etl_repo",
            "repositoryLocationName": "etl_location",
            "repositoryLocationMetadata": [{"key": "module_name", "value": "etl.repo"}]
          },
          "jobSpecificData": {"__typename": "ScheduleJobData", "cronSchedule": "0 2 * * *"},
          "runs": [{"id": "r1", "runId": "abc123-def", "status": "SUCCESS"}],
          "ticks": [{"id": "t1", "status": "SUCCESS", "timestamp": 1700000000.5, "runIds": ["abc123-def"]}],
          "runningCount": 1
        },
        {
          "id": "c3d4",
          "name": "s3_sensor",
          "jobType": "SENSOR",
          "status": "STOPPED",
          "repositoryOrigin": {"id": "origin-2", "repositoryName": "etl_repo", "repositoryLocationName": "etl_location"},
          "jobSpecificData": {"__typename": "SensorJobData", "lastRunKey": null},
          "runs": [],
          "ticks": [],
          "runningCount": 0
        }
      ]
    }
  }
}`

func TestDecode_Envelope(t *testing.T) {
	t.Parallel()

	states, err := Decode([]byte(envelopeFixture))
	require.NoError(t, err)
	require.Len(t, states, 2)

	schedule := states[0]
	assert.Equal(t, "nightly_etl_schedule", schedule.Name)
	assert.Equal(t, JobTypeSchedule, schedule.JobType)
	assert.Equal(t, StatusRunning, schedule.Status)
	assert.Equal(t, ScheduleData{CronSchedule: "0 2 * * *"}, schedule.JobSpecificData)
	assert.Equal(t, "etl_repo@etl_location", schedule.RepositoryOrigin.Address())
	assert.Equal(t, []MetadataEntry{{Key: "module_name", Value: "etl.repo"}}, schedule.RepositoryOrigin.RepositoryLocationMetadata)
	assert.Equal(t, 1, schedule.RunningCount)

	run, ok := schedule.LatestRun()
	require.True(t, ok)
	assert.Equal(t, Run{ID: "r1", RunID: "abc123-def", Status: RunSuccess}, run)

	tick, ok := schedule.LatestTick()
	require.True(t, ok)
	assert.Equal(t, TickSuccess, tick.Status)
	assert.Equal(t, []string{"abc123-def"}, tick.RunIDs)

	sensor := states[1]
	assert.Equal(t, SensorData{}, sensor.JobSpecificData)
	_, ok = sensor.LatestRun()
	assert.False(t, ok)
}

func TestDecode_List(t *testing.T) {
	t.Parallel()

	input := `[{"id":"j1","name":"hourly","jobType":"SCHEDULE","jobSpecificData":{"__typename":"ScheduleJobData","cronSchedule":"@hourly"},"runs":[]}]`
	states, err := Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "hourly", states[0].Name)
}

func TestDecode_SingleObject(t *testing.T) {
	t.Parallel()

	input := `{"id":"j1","name":"watcher","jobType":"SENSOR","jobSpecificData":{"__typename":"SensorJobData","lastRunKey":"2024-01-01"}}`
	states, err := Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, states, 1)

	data, ok := states[0].JobSpecificData.(SensorData)
	require.True(t, ok)
	require.NotNil(t, data.LastRunKey)
	assert.Equal(t, "2024-01-01", *data.LastRunKey)
}

func TestDecode_UnknownSpecificDataTypename(t *testing.T) {
	t.Parallel()

	input := `{"id":"j1","name":"x","jobType":"ASSET","jobSpecificData":{"__typename":"AssetJobData","foo":1}}`
	states, err := Decode([]byte(input))
	require.NoError(t, err)
	assert.Nil(t, states[0].JobSpecificData)
	assert.False(t, states[0].JobType.Known())
}

func TestDecode_SpecificDataWithoutTypename(t *testing.T) {
	t.Parallel()

	input := `[
	  {"name":"nightly","jobType":"SCHEDULE","jobSpecificData":{"cronSchedule":"0 2 * * *"}},
	  {"name":"watcher","jobType":"SENSOR","jobSpecificData":{"lastRunKey":"k1"}},
	  {"name":"asset","jobType":"ASSET","jobSpecificData":{"cronSchedule":"@daily"}}
	]`
	states, err := Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, states, 3)

	assert.Equal(t, ScheduleData{CronSchedule: "0 2 * * *"}, states[0].JobSpecificData)
	assert.Equal(t, "0 2 * * *", Describe(states[0].JobSpecificData))
	assert.Equal(t, "last key k1", Describe(states[1].JobSpecificData))
	assert.Nil(t, states[2].JobSpecificData)
}

func TestDecode_SpecificDataContradictsJobType(t *testing.T) {
	t.Parallel()

	input := `{"name":"watcher","jobType":"SENSOR","jobSpecificData":{"__typename":"ScheduleJobData","cronSchedule":"@hourly"}}`
	_, err := Decode([]byte(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVariantMismatch)
	assert.Contains(t, err.Error(), `job "watcher"`)
}

func TestDecode_PythonError(t *testing.T) {
	t.Parallel()

	input := `{"data":{"jobStatesOrError":{"__typename":"PythonError","message":"boom","stack":["line 1"],"cause":{"message":"root cause"}}}}`
	_, err := Decode([]byte(input))
	require.Error(t, err)

	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, "boom", upstream.Err.Message)
	require.NotNil(t, upstream.Err.Cause)
	assert.Equal(t, "root cause", upstream.Err.Cause.Message)
	assert.Equal(t, "upstream error: boom", err.Error())
}

func TestDecode_GraphQLErrors(t *testing.T) {
	t.Parallel()

	input := `{"errors":[{"message":"first"},{"message":"second"}]}`
	_, err := Decode([]byte(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGraphQL)
	assert.Contains(t, err.Error(), "first; second")
}

func TestDecode_UnexpectedUnionMember(t *testing.T) {
	t.Parallel()

	input := `{"data":{"jobStatesOrError":{"__typename":"Unauthorized"}}}`
	_, err := Decode([]byte(input))
	assert.ErrorIs(t, err, ErrUnexpectedType)
}

func TestDecode_NullData(t *testing.T) {
	t.Parallel()

	states, err := Decode([]byte(`{"data":{"jobStatesOrError":null}}`))
	require.NoError(t, err)
	assert.Empty(t, states)
}

func TestDecode_MalformedObjectReportsSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"name": "nightly", "runs": [`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnrecognizedInput)
	assert.Contains(t, err.Error(), "decoding job state")
}

func TestDecode_ByteOrderMark(t *testing.T) {
	t.Parallel()

	input := "\xEF\xBB\xBF" + `[{"name":"nightly","jobType":"SCHEDULE","runs":[]}]`
	states, err := Decode([]byte(input))
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "nightly", states[0].Name)
}

func TestDecode_UnrecognizedInput(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("not json"))
	assert.ErrorIs(t, err, ErrUnrecognizedInput)
}

func TestDecode_MalformedSpecificData(t *testing.T) {
	t.Parallel()

	input := `[{"id":"j1","name":"broken","jobSpecificData":"oops"}]`
	_, err := Decode([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job state 0")
	assert.Contains(t, err.Error(), `job "broken"`)
}
