package workflow

import (
	"context"
	"fmt"

	"github.com/strandkit/strand"
)

// Evaluation is the parsed outcome of one evaluation step.
type Evaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
	Passed   bool    `json:"passed"`
}

// EvaluatorOptimizer alternates a generation/refinement step with an
// evaluation step until the score threshold is met or the iteration budget
// is exhausted. The final output is always the most recent candidate, even
// when no iteration passed the threshold. "Good enough" not reached is a
// best-effort result, not a failure.
type EvaluatorOptimizer struct {
	name          string
	completer     strand.Completer
	generator     string
	evaluator     string
	refiner       string
	threshold     float64
	maxIterations int
}

// NewEvaluatorOptimizer creates a generate-evaluate-refine loop.
// maxIterations bounds the number of evaluation rounds (at most
// maxIterations-1 refinements occur); values below 1 are treated as 1.
func NewEvaluatorOptimizer(name string, c strand.Completer, generator, evaluator, refiner string, threshold float64, maxIterations int) *EvaluatorOptimizer {
	if maxIterations < 1 {
		maxIterations = 1
	}
	return &EvaluatorOptimizer{
		name:          name,
		completer:     c,
		generator:     generator,
		evaluator:     evaluator,
		refiner:       refiner,
		threshold:     threshold,
		maxIterations: maxIterations,
	}
}

// Name returns the workflow name.
func (e *EvaluatorOptimizer) Name() string { return e.name }

// Run generates an initial candidate, then evaluates and refines it until
// the threshold is met or the budget runs out. Only generation failure
// fails the workflow; evaluation and refinement failures degrade to
// returning the last candidate, since losing prior progress would be worse
// than an imperfect answer.
func (e *EvaluatorOptimizer) Run(ctx context.Context, task string, opts ...Option) (*Result, error) {
	options := ApplyOptions(opts...)
	res := newResult(e.name)

	generation := runStep(ctx, e.completer, "generate", buildPrompt(e.generator, task), options)
	res.record(generation)
	if generation.Err != nil {
		return res.fail(generation.StepName, generation.Err)
	}
	candidate := generation.Text

	for i := 1; i <= e.maxIterations; i++ {
		evaluation := runStep(ctx, e.completer, fmt.Sprintf("evaluate_%d", i), buildPrompt(e.evaluator, candidate), options)
		res.record(evaluation)
		if evaluation.Err != nil {
			res.Output = candidate
			return res, nil
		}

		score, feedback := options.EvaluationParser(evaluation.Text)
		if score >= e.threshold {
			res.Output = candidate
			return res, nil
		}

		if i == e.maxIterations {
			break
		}

		refinement := runStep(ctx, e.completer, fmt.Sprintf("refine_%d", i), buildPrompt(e.refiner, refineInput(candidate, feedback)), options)
		res.record(refinement)
		if refinement.Err != nil {
			res.Output = candidate
			return res, nil
		}
		candidate = refinement.Text
	}

	res.Output = candidate
	return res, nil
}

// refineInput composes the current candidate with the evaluator's feedback.
func refineInput(candidate, feedback string) string {
	if feedback == "" {
		return candidate
	}
	return candidate + "\n\nFeedback:\n" + feedback
}
