package workflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/strandkit/strand"
)

// Parallel executes a fixed set of instruction templates concurrently
// against the same input.
//
// It is a pure fan-out/fan-in primitive: partial failure never aborts the
// batch, and no combination of results is performed; composing the branch
// outputs into one answer is the caller's concern.
type Parallel struct {
	name      string
	completer strand.Completer
	templates []string
}

// NewParallel creates a parallel workflow over the given templates.
// Concurrency equals the number of templates; a bounding policy, if desired,
// is layered by the caller.
func NewParallel(name string, c strand.Completer, templates []string) *Parallel {
	return &Parallel{name: name, completer: c, templates: templates}
}

// Name returns the parallel workflow name.
func (p *Parallel) Name() string { return p.name }

// Run dispatches every branch concurrently and waits for all of them to
// reach a terminal state. Outputs[i] always corresponds to templates[i];
// failed branches carry their error at their original index.
func (p *Parallel) Run(ctx context.Context, input string, opts ...Option) (*Result, error) {
	options := ApplyOptions(opts...)
	res := newResult(p.name)

	// Each branch writes only its own slot, so no locking is needed;
	// the WaitGroup is the fan-in barrier.
	branches := make([]StepResult, len(p.templates))
	var wg sync.WaitGroup

	for i, tmpl := range p.templates {
		wg.Add(1)
		go func(i int, tmpl string) {
			defer wg.Done()
			name := fmt.Sprintf("branch_%d", i+1)
			branches[i] = runStep(ctx, p.completer, name, buildPrompt(tmpl, input), options)
		}(i, tmpl)
	}

	wg.Wait()

	for _, sr := range branches {
		res.record(sr)
	}
	res.Outputs = branches
	return res, nil
}
