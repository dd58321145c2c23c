package fragment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	r.MustRegister(Fragment{Name: "ErrorFragment", On: "Error", Selections: []Selection{
		F("message"), F("stack"),
	}})
	r.MustRegister(Fragment{Name: "TagFragment", On: "Tick", Selections: []Selection{
		F("id"), F("status"), F("error", Use("ErrorFragment")),
	}})
	return r
}

func TestRegister_MissingSpread(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	_, err := r.Register(Fragment{Name: "Parent", On: "Job", Selections: []Selection{
		F("id"), F("ticks", Use("TagFragment")),
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingFragment)

	var compErr *CompositionError
	require.True(t, errors.As(err, &compErr))
	assert.Equal(t, "Parent", compErr.Fragment)
	assert.Equal(t, "ticks", compErr.Path)
	assert.Contains(t, err.Error(), "TagFragment")

	_, ok := r.Lookup("Parent")
	assert.False(t, ok, "failed registration must not be stored")
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	_, err := r.Register(Fragment{Name: "TagFragment", On: "Tick", Selections: []Selection{F("id")}})
	assert.ErrorIs(t, err, ErrDuplicateFragment)
}

func TestRegister_Invalid(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, f := range []Fragment{
		{On: "Job", Selections: []Selection{F("id")}},
		{Name: "NoType", Selections: []Selection{F("id")}},
		{Name: "Empty", On: "Job"},
	} {
		_, err := r.Register(f)
		assert.ErrorIs(t, err, ErrInvalidFragment)
	}
}

func TestRegister_FieldCollisions(t *testing.T) {
	t.Parallel()

	sensorKey := Fragment{Name: "SensorKey", On: "Data", Selections: []Selection{
		On("Sensor", F("key")),
	}}

	tests := []struct {
		name       string
		deps       []Fragment
		selections []Selection
		wantPath   string
	}{
		{
			name:       "direct duplicate",
			selections: []Selection{F("id"), F("id")},
		},
		{
			name:       "field redeclared next to spread",
			selections: []Selection{F("ticks", F("id"), Use("TagFragment"))},
			wantPath:   "ticks",
		},
		{
			name:       "same fragment spread twice",
			selections: []Selection{F("ticks", Use("TagFragment"), Use("TagFragment"))},
			wantPath:   "ticks",
		},
		{
			name:       "alias clashes with field",
			selections: []Selection{F("name"), F("title").As("name")},
		},
		{
			name:       "inline fragment repeats parent field",
			selections: []Selection{F("data", F("kind"), On("Sensor", F("kind")))},
			wantPath:   "data",
		},
		{
			name:       "sibling inline fragments on one type",
			selections: []Selection{F("data", On("Sensor", F("key")), On("Sensor", F("key")))},
			wantPath:   "data",
		},
		{
			name:       "inline fragment repeated through spread",
			deps:       []Fragment{sensorKey},
			selections: []Selection{F("data", On("Sensor", F("key")), Use("SensorKey"))},
			wantPath:   "data",
		},
		{
			name:       "inline-only fragment spread twice",
			deps:       []Fragment{sensorKey},
			selections: []Selection{F("data", Use("SensorKey"), Use("SensorKey"))},
			wantPath:   "data",
		},
		{
			name:       "spread inline field repeats parent field",
			deps:       []Fragment{sensorKey},
			selections: []Selection{F("data", F("key"), Use("SensorKey"))},
			wantPath:   "data",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRegistry(t)
			for _, dep := range tt.deps {
				r.MustRegister(dep)
			}
			_, err := r.Register(Fragment{Name: "Parent", On: "Job", Selections: tt.selections})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrFieldCollision)
			var compErr *CompositionError
			require.True(t, errors.As(err, &compErr))
			assert.Equal(t, tt.wantPath, compErr.Path)
		})
	}
}

func TestRegister_SameKeyAtDifferentLevels(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	_, err := r.Register(Fragment{Name: "Parent", On: "Job", Selections: []Selection{
		F("id"),
		F("runs", F("id"), F("status")),
		F("ticks", Use("TagFragment")),
		F("data", On("Sensor", F("key")), On("Schedule", F("key"))),
	}})
	assert.NoError(t, err)
}

func TestRegister_InlineFragmentsOnDistinctTypes(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.MustRegister(Fragment{Name: "ScheduleKey", On: "Data", Selections: []Selection{
		On("Schedule", F("key")),
	}})
	_, err := r.Register(Fragment{Name: "Parent", On: "Job", Selections: []Selection{
		F("data", F("__typename"), On("Sensor", F("key")), Use("ScheduleKey")),
	}})
	assert.NoError(t, err)
}

func TestMustRegister_Panics(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	assert.Panics(t, func() {
		r.MustRegister(Fragment{Name: "Bad", On: "Job", Selections: []Selection{Use("Nope")}})
	})
}

func TestDocument(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.MustRegister(Fragment{Name: "Parent", On: "Job", Selections: []Selection{
		F("id"),
		F("runs", F("runId")).WithArgs(Arg{Name: "limit", Value: "1"}),
		F("ticks", Use("TagFragment")),
	}})

	doc, err := r.Document("Parent")
	require.NoError(t, err)

	want := `fragment Parent on Job {
  id
  runs(limit: 1) {
    runId
  }
  ticks {
    ...TagFragment
  }
}

fragment ErrorFragment on Error {
  message
  stack
}

fragment TagFragment on Tick {
  id
  status
  error {
    ...ErrorFragment
  }
}
`
	assert.Equal(t, want, doc)
}

func TestDocument_Unknown(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().Document("Nope")
	assert.ErrorIs(t, err, ErrMissingFragment)
}

func TestOperationDocument(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	doc, err := r.OperationDocument(Operation{Name: "TicksQuery", Selections: []Selection{
		F("tickOrError", F("__typename"), On("Tick", Use("TagFragment")), On("Error", F("message"))),
	}})
	require.NoError(t, err)

	want := `query TicksQuery {
  tickOrError {
    __typename
    ... on Tick {
      ...TagFragment
    }
    ... on Error {
      message
    }
  }
}

fragment ErrorFragment on Error {
  message
  stack
}

fragment TagFragment on Tick {
  id
  status
  error {
    ...ErrorFragment
  }
}
`
	assert.Equal(t, want, doc)
}

func TestOperationDocument_MissingSpread(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().OperationDocument(Operation{Name: "Q", Selections: []Selection{Use("Nope")}})
	assert.ErrorIs(t, err, ErrMissingFragment)
}

func TestFields(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.MustRegister(Fragment{Name: "Parent", On: "Job", Selections: []Selection{
		F("id"),
		F("ticks", Use("TagFragment")),
		F("data", F("__typename"), On("Sensor", F("key")), On("Schedule", F("key"), F("cron"))),
	}})

	fields, err := r.Fields("Parent")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"data",
		"data.__typename",
		"data.cron",
		"data.key",
		"id",
		"ticks",
		"ticks.error",
		"ticks.error.message",
		"ticks.error.stack",
		"ticks.id",
		"ticks.status",
	}, fields)
}

func TestDependenciesAndNames(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	deps, err := r.Dependencies("TagFragment")
	require.NoError(t, err)
	assert.Equal(t, []string{"ErrorFragment"}, deps)
	assert.Equal(t, []string{"ErrorFragment", "TagFragment"}, r.Names())
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()

	base := F("runs")
	limited := base.WithArgs(Arg{Name: "limit", Value: "1"})
	assert.Empty(t, base.Args, "WithArgs must not modify the receiver")
	assert.Len(t, limited.Args, 1)
	assert.Equal(t, "latest", limited.As("latest").Key())
	assert.Equal(t, "runs", limited.Key())

	f := Fragment{Name: "X", On: "T"}
	assert.Equal(t, Spread{Fragment: "X"}, f.Spread())
}
