package jobstate

import (
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/dkoosis/lastrun/internal/detect"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Typenames used by the backend for the union members this package decodes.
const (
	TypenameJobStates       = "JobStates"
	TypenamePythonError     = "PythonError"
	TypenameSensorJobData   = "SensorJobData"
	TypenameScheduleJobData = "ScheduleJobData"
)

var (
	// ErrUnrecognizedInput is returned when input is not one of the accepted JSON shapes.
	ErrUnrecognizedInput = errors.New("unrecognized snapshot input")
	// ErrGraphQL is returned when the response carries a top-level errors array.
	ErrGraphQL = errors.New("graphql error")
	// ErrUnexpectedType is returned for an unknown jobStatesOrError member.
	ErrUnexpectedType = errors.New("unexpected response type")
	// ErrVariantMismatch is returned when jobSpecificData belongs to a
	// different job type than the job declares.
	ErrVariantMismatch = errors.New("jobSpecificData does not match jobType")
)

// UpstreamError carries an error the backend reported in place of job states.
type UpstreamError struct {
	Err *PythonError
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return "upstream error"
	}
	return "upstream error: " + e.Err.Message
}

type wireJobState struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	JobType          JobType             `json:"jobType"`
	Status           InstigationStatus   `json:"status"`
	RepositoryOrigin RepositoryOrigin    `json:"repositoryOrigin"`
	JobSpecificData  jsoniter.RawMessage `json:"jobSpecificData"`
	Runs             []Run               `json:"runs"`
	Ticks            []Tick              `json:"ticks"`
	RunningCount     int                 `json:"runningCount"`
}

type wireSpecificData struct {
	Typename     string  `json:"__typename"`
	LastRunKey   *string `json:"lastRunKey"`
	CronSchedule string  `json:"cronSchedule"`
}

type wireEnvelope struct {
	Data *struct {
		JobStatesOrError jsoniter.RawMessage `json:"jobStatesOrError"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type wireUnion struct {
	Typename string         `json:"__typename"`
	Results  []wireJobState `json:"results"`
	Message  string         `json:"message"`
	Stack    []string       `json:"stack"`
	Cause    *PythonError   `json:"cause"`
}

// Decode parses a fetched snapshot. It accepts a GraphQL response envelope
// for the job-states query, a bare array of job states, or a single job state.
func Decode(data []byte) ([]JobState, error) {
	data = detect.Trim(data)
	switch detect.Sniff(data) {
	case detect.Envelope:
		return decodeEnvelope(data)
	case detect.List:
		var wire []wireJobState
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("decoding job state list: %w", err)
		}
		return fromWireList(wire)
	case detect.Object:
		var wire wireJobState
		if err := json.Unmarshal(data, &wire); err != nil {
			return nil, fmt.Errorf("decoding job state: %w", err)
		}
		state, err := wire.toJobState()
		if err != nil {
			return nil, err
		}
		return []JobState{state}, nil
	default:
		return nil, ErrUnrecognizedInput
	}
}

func decodeEnvelope(data []byte) ([]JobState, error) {
	var env wireEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding response envelope: %w", err)
	}
	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("%w: %s", ErrGraphQL, strings.Join(msgs, "; "))
	}
	if env.Data == nil || len(env.Data.JobStatesOrError) == 0 || string(env.Data.JobStatesOrError) == "null" {
		return nil, nil
	}

	var union wireUnion
	if err := json.Unmarshal(env.Data.JobStatesOrError, &union); err != nil {
		return nil, fmt.Errorf("decoding jobStatesOrError: %w", err)
	}
	switch union.Typename {
	case TypenameJobStates, "":
		return fromWireList(union.Results)
	case TypenamePythonError:
		return nil, &UpstreamError{Err: &PythonError{
			Message: union.Message,
			Stack:   union.Stack,
			Cause:   union.Cause,
		}}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedType, union.Typename)
	}
}

func fromWireList(wire []wireJobState) ([]JobState, error) {
	states := make([]JobState, 0, len(wire))
	for i := range wire {
		state, err := wire[i].toJobState()
		if err != nil {
			return nil, fmt.Errorf("job state %d: %w", i, err)
		}
		states = append(states, state)
	}
	return states, nil
}

func (w wireJobState) toJobState() (JobState, error) {
	specific, err := decodeSpecificData(w.JobSpecificData, w.JobType)
	if err != nil {
		return JobState{}, fmt.Errorf("job %q: %w", w.Name, err)
	}
	return JobState{
		ID:               w.ID,
		Name:             w.Name,
		JobType:          w.JobType,
		Status:           w.Status,
		RepositoryOrigin: w.RepositoryOrigin,
		JobSpecificData:  specific,
		Runs:             w.Runs,
		Ticks:            w.Ticks,
		RunningCount:     w.RunningCount,
	}, nil
}

// decodeSpecificData resolves the variant by __typename, falling back to
// jobType when the payload carries no typename (hand-written snapshots).
// Unknown members decode to nil rather than failing, matching how the view
// treats them. A known member that contradicts a known jobType is an error.
func decodeSpecificData(raw jsoniter.RawMessage, jobType JobType) (SpecificData, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var wire wireSpecificData
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decoding jobSpecificData: %w", err)
	}

	variant := jobType
	switch wire.Typename {
	case TypenameSensorJobData:
		variant = JobTypeSensor
	case TypenameScheduleJobData:
		variant = JobTypeSchedule
	case "":
	default:
		return nil, nil
	}
	if jobType.Known() && variant != jobType {
		return nil, fmt.Errorf("%w: %s carries %s", ErrVariantMismatch, jobType, wire.Typename)
	}

	switch variant {
	case JobTypeSensor:
		return SensorData{LastRunKey: wire.LastRunKey}, nil
	case JobTypeSchedule:
		return ScheduleData{CronSchedule: wire.CronSchedule}, nil
	default:
		return nil, nil
	}
}
