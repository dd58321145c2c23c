package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/lastrun/pkg/design"
	"github.com/dkoosis/lastrun/pkg/jobstate"
)

func TestError_Upstream(t *testing.T) {
	err := fmt.Errorf("fetching: %w", &jobstate.UpstreamError{Err: &jobstate.PythonError{
		Message: "DagsterError: repository not found\n",
		Stack:   []string{"  File \"a.py\", line 1\n", "  File \"b.py\", line 2\n"},
		Cause:   &jobstate.PythonError{Message: "KeyError: 'repo'"},
	}})

	out := Error(err, design.DefaultTheme())
	assert.Equal(t, "error: DagsterError: repository not found\n"+
		"      File \"a.py\", line 1\n"+
		"      File \"b.py\", line 2\n"+
		"\ncaused by: KeyError: 'repo'\n", out)
}

func TestError_Plain(t *testing.T) {
	out := Error(errors.New("unrecognized snapshot input"), nil)
	assert.Equal(t, "error: unrecognized snapshot input\n", out)
}
