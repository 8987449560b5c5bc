package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/strandkit/strand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainRun(t *testing.T) {
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "claims extracted"},
			{text: "paragraph written"},
			{text: "final polish"},
		},
	}

	chain := NewChain("summarize", completer,
		"Extract the key claims.",
		"Rewrite the claims as a paragraph.",
		"Polish the paragraph.",
	)

	result, err := chain.Run(context.Background(), "source text")

	require.NoError(t, err)
	assert.Equal(t, "final polish", result.Output)
	assert.Equal(t, []string{"step_1", "step_2", "step_3"}, traceNames(result.Trace))
	assert.Equal(t, "summarize", result.WorkflowName)
	assert.False(t, result.Failed())
	assert.Equal(t, 30, result.Usage.InputTokens)
	assert.Equal(t, 60, result.Usage.OutputTokens)
}

func TestChainThreadsOutputForward(t *testing.T) {
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "first output"},
			{text: "second output"},
		},
	}

	chain := NewChain("thread", completer, "Step one.", "Step two.")

	_, err := chain.Run(context.Background(), "initial input")

	require.NoError(t, err)
	require.Equal(t, 2, completer.callCount())
	assert.Contains(t, completer.promptAt(0), "initial input")
	assert.Contains(t, completer.promptAt(1), "first output")
	assert.NotContains(t, completer.promptAt(1), "initial input")
}

func TestChainStopsAtFirstFailure(t *testing.T) {
	providerErr := errors.New("model unavailable")
	completer := &mockCompleter{
		responses: []mockResponse{
			{text: "first output"},
			{err: providerErr},
			{text: "never reached"},
		},
	}

	chain := NewChain("fragile", completer, "One.", "Two.", "Three.")

	result, err := chain.Run(context.Background(), "input")

	require.Error(t, err)
	assert.True(t, result.Failed())
	assert.ErrorIs(t, err, ErrProviderFailure)
	assert.ErrorIs(t, err, providerErr)

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "step_2", stepErr.StepName)

	// Partial trace retained: one entry per invocation actually made.
	assert.Equal(t, []string{"step_1", "step_2"}, traceNames(result.Trace))
	assert.Equal(t, 2, completer.callCount())
	assert.Empty(t, result.Output)
}

func TestChainStepTimeout(t *testing.T) {
	slow := strand.CompleterFunc(func(ctx context.Context, prompt string, opts ...strand.Option) (*strand.Completion, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
			return &strand.Completion{Text: "late"}, nil
		}
	})

	chain := NewChain("slow", slow, "Take your time.")

	result, err := chain.Run(context.Background(), "input", WithStepTimeout(5*time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Len(t, result.Trace, 1)
	assert.True(t, result.Trace[0].Failed())
}

func TestChainCancelledContext(t *testing.T) {
	completer := &mockCompleter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chain := NewChain("cancelled", completer, "One.")

	result, err := chain.Run(ctx, "input")

	require.Error(t, err)
	assert.True(t, result.Failed())
	assert.Zero(t, completer.callCount())
	assert.Empty(t, result.Trace)
}

func TestChainOnStepComplete(t *testing.T) {
	completer := &mockCompleter{
		responses: []mockResponse{{text: "a"}, {text: "b"}},
	}

	var seen []string
	chain := NewChain("observed", completer, "One.", "Two.")

	_, err := chain.Run(context.Background(), "input", WithOnStepComplete(func(ctx context.Context, sr StepResult) {
		seen = append(seen, sr.StepName)
	}))

	require.NoError(t, err)
	assert.Equal(t, []string{"step_1", "step_2"}, seen)
}

func TestChainIdempotentWithDeterministicCompleter(t *testing.T) {
	run := func() *Result {
		completer := &mockCompleter{
			responses: []mockResponse{{text: "a"}, {text: "b"}},
		}
		chain := NewChain("repeat", completer, "One.", "Two.")
		result, err := chain.Run(context.Background(), "input")
		require.NoError(t, err)
		return result
	}

	first := run()
	second := run()

	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t, traceNames(first.Trace), traceNames(second.Trace))
	for i := range first.Trace {
		assert.Equal(t, first.Trace[i].Text, second.Trace[i].Text)
	}
}
