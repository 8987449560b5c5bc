package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftOptimizer(completer *mockCompleter, threshold float64, maxIterations int) *EvaluatorOptimizer {
	return NewEvaluatorOptimizer("draft", completer,
		"Write a short answer.",
		"Score this answer from 0 to 10, then give feedback.",
		"Improve the answer using the feedback.",
		threshold, maxIterations,
	)
}

func TestEvaluatorOptimizerPassesFirstIteration(t *testing.T) {
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "candidate v1"},
			{text: "9/10 - ship it"},
		},
	}

	optimizer := draftOptimizer(completer, 7, 5)

	result, err := optimizer.Run(context.Background(), "the task")

	require.NoError(t, err)
	assert.Equal(t, "candidate v1", result.Output)

	// No refinement once the threshold is met.
	assert.Equal(t, 2, completer.callCount())
	assert.Equal(t, []string{"generate", "evaluate_1"}, traceNames(result.Trace))
}

func TestEvaluatorOptimizerRefinesUntilPassing(t *testing.T) {
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "candidate v1"},
			{text: "4/10 - too vague"},
			{text: "candidate v2"},
			{text: "8/10 - much better"},
		},
	}

	optimizer := draftOptimizer(completer, 7, 5)

	result, err := optimizer.Run(context.Background(), "the task")

	require.NoError(t, err)
	assert.Equal(t, "candidate v2", result.Output)
	assert.Equal(t,
		[]string{"generate", "evaluate_1", "refine_1", "evaluate_2"},
		traceNames(result.Trace))

	// The refiner sees both the candidate and the evaluator's feedback.
	refinePrompt := completer.promptAt(2)
	assert.Contains(t, refinePrompt, "candidate v1")
	assert.Contains(t, refinePrompt, "too vague")
}

func TestEvaluatorOptimizerExhaustsIterationBudget(t *testing.T) {
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "candidate v1"},
			{text: "3/10"},
			{text: "candidate v2"},
			{text: "4/10"},
			{text: "candidate v3"},
			{text: "5/10"},
		},
	}

	optimizer := draftOptimizer(completer, 9, 3)

	result, err := optimizer.Run(context.Background(), "the task")

	// Budget exhaustion is a best-effort return, not a failure.
	require.NoError(t, err)
	assert.Equal(t, "candidate v3", result.Output)

	// 3 evaluations, 2 refinements: no refinement after the last evaluation.
	assert.Equal(t, 6, completer.callCount())
	assert.Equal(t,
		[]string{"generate", "evaluate_1", "refine_1", "evaluate_2", "refine_2", "evaluate_3"},
		traceNames(result.Trace))
}

func TestEvaluatorOptimizerGenerationFailureFailsWorkflow(t *testing.T) {
	genErr := errors.New("provider down")
	completer := &mockCompleter{
		responses: []mockResponse{{err: genErr}},
	}

	optimizer := draftOptimizer(completer, 7, 3)

	result, err := optimizer.Run(context.Background(), "the task")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProviderFailure)
	assert.ErrorIs(t, err, genErr)
	assert.Equal(t, 1, completer.callCount())
	assert.True(t, result.Failed())
}

func TestEvaluatorOptimizerRefinementFailureReturnsLastCandidate(t *testing.T) {
	refineErr := errors.New("refiner down")
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "candidate v1"},
			{text: "2/10 - weak"},
			{err: refineErr},
		},
	}

	optimizer := draftOptimizer(completer, 7, 3)

	result, err := optimizer.Run(context.Background(), "the task")

	require.NoError(t, err)
	assert.Equal(t, "candidate v1", result.Output)

	// The failed refinement is still visible in the trace.
	assert.Equal(t, []string{"generate", "evaluate_1", "refine_1"}, traceNames(result.Trace))
	assert.True(t, result.Trace[2].Failed())
}

func TestEvaluatorOptimizerEvaluationFailureReturnsLastCandidate(t *testing.T) {
	evalErr := errors.New("evaluator down")
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "candidate v1"},
			{err: evalErr},
		},
	}

	optimizer := draftOptimizer(completer, 7, 3)

	result, err := optimizer.Run(context.Background(), "the task")

	require.NoError(t, err)
	assert.Equal(t, "candidate v1", result.Output)
	assert.Equal(t, 2, completer.callCount())
}

func TestEvaluatorOptimizerUnparsableEvaluationScoresZero(t *testing.T) {
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "candidate v1"},
			{text: "looks fine to me"},
			{text: "candidate v2"},
			{text: "8/10"},
		},
	}

	// Threshold 0 would pass on an unparsable evaluation; use a positive
	// threshold so score 0 forces a refinement.
	optimizer := draftOptimizer(completer, 1, 3)

	result, err := optimizer.Run(context.Background(), "the task")

	require.NoError(t, err)
	assert.Equal(t, "candidate v2", result.Output)

	// The raw evaluation text rides along as feedback for the refiner.
	assert.Contains(t, completer.promptAt(2), "looks fine to me")
}

func TestEvaluatorOptimizerIdempotentWithDeterministicCompleter(t *testing.T) {
	run := func() *Result {
		completer := &mockCompleter{
			responses: []mockResponse{
				{text: "candidate v1"},
				{text: "5/10"},
				{text: "candidate v2"},
				{text: "8/10"},
			},
		}
		result, err := draftOptimizer(completer, 7, 3).Run(context.Background(), "the task")
		require.NoError(t, err)
		return result
	}

	first := run()
	second := run()

	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t, traceNames(first.Trace), traceNames(second.Trace))
}

func TestEvaluatorOptimizerClampsIterations(t *testing.T) {
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "candidate v1"},
			{text: "1/10"},
		},
	}

	optimizer := draftOptimizer(completer, 9, 0)

	result, err := optimizer.Run(context.Background(), "the task")

	// maxIterations below 1 still evaluates once.
	require.NoError(t, err)
	assert.Equal(t, "candidate v1", result.Output)
	assert.Equal(t, 2, completer.callCount())
}
