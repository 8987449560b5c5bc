package workflow

import (
	"github.com/google/uuid"
	"github.com/strandkit/strand"
)

// StepResult records the outcome of a single completion invocation.
// Exactly one of Text or Err is populated.
type StepResult struct {
	// StepName identifies the step within its workflow ("classify",
	// "worker_2", "evaluate_1", ...).
	StepName string `json:"stepName"`

	// Text is the generated output. Empty when the step failed.
	Text string `json:"text,omitempty"`

	// Err is the normalized step failure. Inspect the kind with
	// errors.Is against ErrTimeout or ErrProviderFailure.
	Err error `json:"-"`

	// Usage is the token usage reported for this invocation.
	Usage strand.Usage `json:"usage"`
}

// Failed reports whether the step ended in error.
func (r StepResult) Failed() bool { return r.Err != nil }

// Result is the outcome of one workflow invocation.
type Result struct {
	// ID uniquely identifies this run.
	ID string `json:"id"`

	// WorkflowName is the name given at construction.
	WorkflowName string `json:"workflowName"`

	// Output is the workflow's terminal output, when the topology
	// produces a single one.
	Output string `json:"output,omitempty"`

	// Outputs holds per-branch results for fan-out topologies
	// (Parallel branches, Orchestrator workers). Outputs[i] always
	// corresponds to the i-th configured branch or subtask, regardless
	// of completion order.
	Outputs []StepResult `json:"outputs,omitempty"`

	// Trace records every completion invocation actually made, in
	// invocation order, including failed ones.
	Trace []StepResult `json:"trace"`

	// Err is the workflow's terminal error, if it failed. The trace
	// accumulated up to the failure point is always retained.
	Err error `json:"-"`

	// Usage is the total token usage across all invocations.
	Usage strand.Usage `json:"usage"`
}

// Failed reports whether the workflow ended in error.
func (r *Result) Failed() bool { return r.Err != nil }

func newResult(name string) *Result {
	return &Result{
		ID:           "run-" + uuid.New().String(),
		WorkflowName: name,
	}
}

// record appends a step outcome to the trace and accumulates its usage.
func (r *Result) record(sr StepResult) {
	r.Trace = append(r.Trace, sr)
	r.Usage.Add(sr.Usage)
}

// fail marks the result as failed and returns it with its error.
func (r *Result) fail(stepName string, err error) (*Result, error) {
	r.Err = &StepError{StepName: stepName, Err: err}
	return r, r.Err
}
