package workflow

import (
	"context"
	"strings"

	"github.com/strandkit/strand"
)

// Router classifies the input with one completion call and dispatches to
// exactly one matched route. Route labels are matched against the
// classification output after normalization (trim + lowercase); an
// unrecognized label is not an error, it rides the default route.
type Router struct {
	name         string
	completer    strand.Completer
	classifier   string
	routes       map[string]string
	defaultRoute string
}

// NewRouter creates a classification router. Route keys are normalized at
// construction, so "Billing" and "billing" declare the same route. The
// default route runs whenever the classification output matches no key.
func NewRouter(name string, c strand.Completer, classifier string, routes map[string]string, defaultRoute string) *Router {
	normalized := make(map[string]string, len(routes))
	for label, tmpl := range routes {
		normalized[normalizeLabel(label)] = tmpl
	}
	return &Router{
		name:         name,
		completer:    c,
		classifier:   classifier,
		routes:       normalized,
		defaultRoute: defaultRoute,
	}
}

// Name returns the router name.
func (r *Router) Name() string { return r.name }

// Run executes the classification step, then exactly one specialist step.
// If classification fails, the workflow fails with that error; no route
// can be chosen without it.
func (r *Router) Run(ctx context.Context, input string, opts ...Option) (*Result, error) {
	options := ApplyOptions(opts...)
	res := newResult(r.name)

	classification := runStep(ctx, r.completer, "classify", buildPrompt(r.classifier, input), options)
	res.record(classification)
	if classification.Err != nil {
		return res.fail(classification.StepName, classification.Err)
	}

	label := normalizeLabel(classification.Text)
	tmpl, ok := r.routes[label]
	stepName := "route_" + label
	if !ok {
		tmpl = r.defaultRoute
		stepName = "route_default"
	}

	specialist := runStep(ctx, r.completer, stepName, buildPrompt(tmpl, input), options)
	res.record(specialist)
	if specialist.Err != nil {
		return res.fail(specialist.StepName, specialist.Err)
	}

	res.Output = specialist.Text
	return res, nil
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
