package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStateFragment_RequiredFields(t *testing.T) {
	t.Parallel()

	fields, err := Fragments.Fields(JobStateFragment.Name)
	require.NoError(t, err)

	for _, want := range []string{
		"id", "name", "jobType", "status", "jobSpecificData", "runningCount",
		"jobSpecificData.lastRunKey", "jobSpecificData.cronSchedule",
		"runs.id", "runs.runId", "runs.status",
	} {
		assert.Contains(t, fields, want)
	}
}

func TestJobStateFragment_IncludesNestedFragmentFields(t *testing.T) {
	t.Parallel()

	fields, err := Fragments.Fields(JobStateFragment.Name)
	require.NoError(t, err)

	nested := map[string]string{
		RepositoryOriginFragment.Name: "repositoryOrigin",
		TickTagFragment.Name:          "ticks",
	}
	for name, prefix := range nested {
		nestedFields, err := Fragments.Fields(name)
		require.NoError(t, err)
		for _, f := range nestedFields {
			assert.Contains(t, fields, prefix+"."+f, "field %s of %s", f, name)
		}
	}

	errFields, err := Fragments.Fields(PythonErrorFragment.Name)
	require.NoError(t, err)
	for _, f := range errFields {
		assert.Contains(t, fields, "ticks.error."+f)
	}
}

func TestJobStateFragment_NoDuplicateDeclarations(t *testing.T) {
	t.Parallel()

	// Registering would have panicked on a collision; check the printed
	// document too, one selection set at a time.
	doc, err := Fragments.Document(JobStateFragment.Name)
	require.NoError(t, err)

	for _, block := range strings.Split(doc, "\nfragment ") {
		assertNoDuplicateLines(t, block)
	}
}

// assertNoDuplicateLines checks that within one block no two lines at the same
// nesting depth and under the same parent are identical.
func assertNoDuplicateLines(t *testing.T, block string) {
	t.Helper()
	type scope struct{ seen map[string]bool }
	stack := []scope{{seen: map[string]bool{}}}
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case trimmed == "}":
			stack = stack[:len(stack)-1]
		case strings.HasSuffix(trimmed, "{"):
			if !strings.HasPrefix(trimmed, "... on ") {
				top := stack[len(stack)-1]
				assert.False(t, top.seen[trimmed], "duplicate %q", trimmed)
				top.seen[trimmed] = true
			}
			stack = append(stack, scope{seen: map[string]bool{}})
		default:
			top := stack[len(stack)-1]
			assert.False(t, top.seen[trimmed], "duplicate %q", trimmed)
			top.seen[trimmed] = true
		}
	}
}

func TestJobStateFragment_Document(t *testing.T) {
	t.Parallel()

	doc, err := Fragments.Document(JobStateFragment.Name)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "fragment JobStateFragment on JobState {\n"))
	assert.Contains(t, doc, "  runs(limit: 1) {\n")
	assert.Contains(t, doc, "  ticks(limit: 1) {\n    ...TickTagFragment\n  }\n")
	assert.Contains(t, doc, "  repositoryOrigin {\n    ...RepositoryOriginFragment\n  }\n")
	assert.Contains(t, doc, "    ... on SensorJobData {\n      lastRunKey\n    }\n")
	for _, name := range []string{"PythonErrorFragment", "RepositoryOriginFragment", "TickTagFragment"} {
		assert.Equal(t, 1, strings.Count(doc, "fragment "+name+" on "), "fragment %s printed once", name)
	}
}

func TestJobStatesQuery_Document(t *testing.T) {
	t.Parallel()

	doc, err := Fragments.OperationDocument(JobStatesQuery)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "query JobStatesQuery {\n"))
	assert.Contains(t, doc, "...JobStateFragment")
	for _, name := range []string{"JobStateFragment", "PythonErrorFragment", "RepositoryOriginFragment", "TickTagFragment"} {
		assert.Equal(t, 1, strings.Count(doc, "fragment "+name+" on "), "fragment %s printed once", name)
	}
}

func TestFragments_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"JobStateFragment",
		"PythonErrorFragment",
		"RepositoryOriginFragment",
		"TickTagFragment",
	}, Fragments.Names())
}
