package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/strandkit/strand"
	"golang.org/x/sync/errgroup"
)

// failedSubtaskPlaceholder stands in for a failed worker's output in the
// combination prompt. Failed subtasks keep their position so the combiner
// knows which fragment answers which subtask.
const failedSubtaskPlaceholder = "[subtask failed: no output]"

// Orchestrator decomposes a task into subtasks with one completion call,
// runs a worker step per subtask concurrently, and combines all worker
// outputs with a final completion call.
type Orchestrator struct {
	name       string
	completer  strand.Completer
	decomposer string
	worker     string
	combiner   string
}

// NewOrchestrator creates an orchestrator-workers workflow. The decomposer
// template is prompted with the task; each subtask description is prompted
// through the worker template; the combiner template receives every worker
// output in subtask order.
func NewOrchestrator(name string, c strand.Completer, decomposer, worker, combiner string) *Orchestrator {
	return &Orchestrator{
		name:       name,
		completer:  c,
		decomposer: decomposer,
		worker:     worker,
		combiner:   combiner,
	}
}

// Name returns the orchestrator name.
func (o *Orchestrator) Name() string { return o.name }

// Run executes decompose, fan-out, combine. Worker concurrency is bounded
// by WithMaxConcurrency (unbounded by default). Partial worker failure
// never aborts the batch; decomposition or combination failure fails the
// workflow.
func (o *Orchestrator) Run(ctx context.Context, task string, opts ...Option) (*Result, error) {
	options := ApplyOptions(opts...)
	res := newResult(o.name)

	decomposition := runStep(ctx, o.completer, "decompose", buildPrompt(o.decomposer, task), options)
	res.record(decomposition)
	if decomposition.Err != nil {
		return res.fail(decomposition.StepName, decomposition.Err)
	}

	subtasks := options.SubtaskParser(decomposition.Text)
	if len(subtasks) == 0 {
		return res.fail(decomposition.StepName, ErrEmptyDecomposition)
	}

	// Each worker writes only its own slot; the group is the fan-in
	// barrier and propagates cancellation to outstanding workers.
	workers := make([]StepResult, len(subtasks))
	g, gctx := errgroup.WithContext(ctx)
	if options.MaxConcurrency > 0 {
		g.SetLimit(options.MaxConcurrency)
	}

	for i, st := range subtasks {
		g.Go(func() error {
			name := fmt.Sprintf("worker_%d", st.ID)
			workers[i] = runStep(gctx, o.completer, name, buildPrompt(o.worker, st.Description), options)
			// Worker failure is recorded in place, never aborts the batch.
			return nil
		})
	}
	_ = g.Wait()

	for _, sr := range workers {
		res.record(sr)
	}
	res.Outputs = workers

	combination := runStep(ctx, o.completer, "combine", buildPrompt(o.combiner, combineInput(subtasks, workers)), options)
	res.record(combination)
	if combination.Err != nil {
		return res.fail(combination.StepName, combination.Err)
	}

	res.Output = combination.Text
	return res, nil
}

// combineInput concatenates all worker outputs in subtask order, keeping a
// placeholder for failed subtasks so positional context survives into the
// combination step.
func combineInput(subtasks []Subtask, workers []StepResult) string {
	var b strings.Builder
	for i, st := range subtasks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "Subtask %d: %s\n", st.ID, st.Description)
		if workers[i].Failed() {
			b.WriteString(failedSubtaskPlaceholder)
		} else {
			b.WriteString(workers[i].Text)
		}
	}
	return b.String()
}
