package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/strandkit/strand"
)

// buildPrompt joins an instruction template with its input.
func buildPrompt(instruction, input string) string {
	if input == "" {
		return instruction
	}
	return instruction + "\n\n" + input
}

// runStep performs exactly one completion invocation and normalizes the
// outcome into a StepResult. Failure is returned as data, never raised;
// each topology decides its own partial-failure policy.
func runStep(ctx context.Context, c strand.Completer, name, prompt string, o *Options) StepResult {
	stepCtx := ctx
	if o.StepTimeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, o.StepTimeout)
		defer cancel()
	}

	resp, err := c.Complete(stepCtx, prompt, o.CompletionOptions...)
	if err != nil {
		kind := ErrProviderFailure
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(stepCtx.Err(), context.DeadlineExceeded) {
			kind = ErrTimeout
		}
		sr := StepResult{
			StepName: name,
			Err:      fmt.Errorf("%w: %w", kind, err),
		}
		if o.OnStepComplete != nil {
			o.OnStepComplete(ctx, sr)
		}
		return sr
	}

	sr := StepResult{
		StepName: name,
		Text:     resp.Text,
		Usage:    resp.Usage,
	}
	if o.OnStepComplete != nil {
		o.OnStepComplete(ctx, sr)
	}
	return sr
}
