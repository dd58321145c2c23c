package fragment

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFragment is returned for a fragment without a name, type or selections.
	ErrInvalidFragment = errors.New("invalid fragment")
	// ErrDuplicateFragment is returned when a fragment name is registered twice.
	ErrDuplicateFragment = errors.New("fragment already registered")
	// ErrMissingFragment is returned when a spread names an unregistered fragment.
	ErrMissingFragment = errors.New("spread of unregistered fragment")
	// ErrFieldCollision is returned when one response key is declared twice at one level.
	ErrFieldCollision = errors.New("field collision")
)

// CompositionError reports where composing a fragment failed.
type CompositionError struct {
	Fragment string
	Path     string // dotted path of the selection set, empty at the root
	Err      error
	Detail   string
}

func (e *CompositionError) Error() string {
	loc := e.Fragment
	if e.Path != "" {
		loc += " at " + e.Path
	}
	if e.Detail != "" {
		return fmt.Sprintf("fragment %s: %v: %s", loc, e.Err, e.Detail)
	}
	return fmt.Sprintf("fragment %s: %v", loc, e.Err)
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}
