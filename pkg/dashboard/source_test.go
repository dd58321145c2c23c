package dashboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const snapshotJSON = `[{"id":"j1","name":"nightly_etl","jobType":"SCHEDULE","status":"RUNNING",
"jobSpecificData":{"__typename":"ScheduleJobData","cronSchedule":"0 2 * * *"},
"runs":[{"id":"r1","runId":"abc123","status":"FAILURE"}],"ticks":[],"runningCount":0}]`

func TestFileLoader(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0o600))

	states, err := FileLoader(path)()
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "nightly_etl", states[0].Name)

	_, err = FileLoader(filepath.Join(dir, "missing.json"))()
	assert.ErrorContains(t, err, "reading")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o600))
	_, err = FileLoader(bad)()
	assert.ErrorContains(t, err, "decoding")
}

func TestWatcher_ReportsChanges(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0o600))

	w, err := Watch(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	// Changes to other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON+"\n"), 0o600))

	select {
	case _, ok := <-w.Changes():
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcher_ClosesChannels(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")

	w, err := Watch(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	select {
	case _, ok := <-w.Changes():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("changes channel not closed")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	t.Parallel()
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "snap.json"))
	assert.Error(t, err)
}
