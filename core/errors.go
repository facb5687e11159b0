package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions the orchestrator must distinguish.
var (
	// ErrContentNotFound means the page has no primary content container
	// or no section within it. Terminal for the invocation.
	ErrContentNotFound = errors.New("primary content not found")

	// ErrFetchTimeout means the fetch exceeded its bounded deadline.
	ErrFetchTimeout = errors.New("fetch timed out")

	// ErrMissingImageSource means an image element has no usable src
	// attribute; emitting a broken reference is never acceptable.
	ErrMissingImageSource = errors.New("image element missing source")
)

// Stage identifies which pipeline stage an error came from.
type Stage string

const (
	StageFetch     Stage = "fetch"
	StageLocate    Stage = "locate"
	StageNormalize Stage = "normalize"
	StageStore     Stage = "store"
	StageHash      Stage = "hash"
)

// StageError tags an error with the pipeline stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err with its originating stage.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
