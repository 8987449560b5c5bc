package workflow

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates a step exceeded its per-step timeout.
	ErrTimeout = errors.New("workflow: step timed out")

	// ErrProviderFailure indicates the completion provider failed a step.
	ErrProviderFailure = errors.New("workflow: completion provider failed")

	// ErrEmptyDecomposition indicates a decomposition step yielded no subtasks.
	ErrEmptyDecomposition = errors.New("workflow: decomposition produced no subtasks")
)

// StepError wraps a failing step with its name for diagnosis.
type StepError struct {
	StepName string
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("workflow: step %q failed: %v", e.StepName, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
