package workflow

import (
	"context"
	"fmt"

	"github.com/strandkit/strand"
)

// Chain executes instruction templates sequentially, each step consuming
// the previous step's output.
type Chain struct {
	name      string
	completer strand.Completer
	templates []string
}

// NewChain creates a sequential workflow. Each template is prompted with the
// previous step's output (the first with the initial input); the terminal
// output is the last step's text.
func NewChain(name string, c strand.Completer, templates ...string) *Chain {
	return &Chain{name: name, completer: c, templates: templates}
}

// Name returns the chain name.
func (c *Chain) Name() string { return c.name }

// Run executes the steps in order. The first failing step stops the chain;
// the partial trace accumulated so far is retained on the result.
func (c *Chain) Run(ctx context.Context, input string, opts ...Option) (*Result, error) {
	options := ApplyOptions(opts...)
	res := newResult(c.name)

	current := input
	for i, tmpl := range c.templates {
		if err := ctx.Err(); err != nil {
			return res.fail(fmt.Sprintf("step_%d", i+1), err)
		}

		sr := runStep(ctx, c.completer, fmt.Sprintf("step_%d", i+1), buildPrompt(tmpl, current), options)
		res.record(sr)
		if sr.Err != nil {
			return res.fail(sr.StepName, sr.Err)
		}
		current = sr.Text
	}

	res.Output = current
	return res, nil
}
