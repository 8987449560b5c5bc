package workflow

import (
	"context"
	"time"

	"github.com/strandkit/strand"
)

// Options contains configuration for workflow execution.
type Options struct {
	// StepTimeout bounds each individual completion invocation.
	StepTimeout time.Duration

	// MaxConcurrency limits simultaneous worker dispatch in the
	// Orchestrator (0 = unlimited). Parallel is unbounded by design.
	MaxConcurrency int

	// CompletionOptions are passed to every completion call.
	CompletionOptions []strand.Option

	// OnStepComplete is called after each step reaches a terminal state,
	// success or failure.
	OnStepComplete func(ctx context.Context, result StepResult)

	// SubtaskParser splits decomposition output into subtasks.
	// Defaults to ParseSubtasks.
	SubtaskParser SubtaskParser

	// EvaluationParser extracts a score and feedback from evaluation
	// output. Defaults to ParseEvaluation.
	EvaluationParser EvaluationParser
}

// Option is a functional option for workflow configuration.
type Option func(*Options)

// WithStepTimeout bounds each individual completion invocation.
func WithStepTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.StepTimeout = d
	}
}

// WithMaxConcurrency limits simultaneous worker dispatch in the Orchestrator.
// A value of 0 means unlimited concurrency.
func WithMaxConcurrency(n int) Option {
	return func(o *Options) {
		o.MaxConcurrency = n
	}
}

// WithCompletionOptions passes options to every completion call.
func WithCompletionOptions(opts ...strand.Option) Option {
	return func(o *Options) {
		o.CompletionOptions = append(o.CompletionOptions, opts...)
	}
}

// WithModel is a convenience option to set the model for completion calls.
func WithModel(model string) Option {
	return func(o *Options) {
		o.CompletionOptions = append(o.CompletionOptions, strand.WithModel(model))
	}
}

// WithMaxTokens is a convenience option to set max tokens for completion calls.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.CompletionOptions = append(o.CompletionOptions, strand.WithMaxTokens(n))
	}
}

// WithTemperature is a convenience option to set temperature for completion calls.
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.CompletionOptions = append(o.CompletionOptions, strand.WithTemperature(t))
	}
}

// WithOnStepComplete registers a callback invoked after each step.
func WithOnStepComplete(fn func(ctx context.Context, result StepResult)) Option {
	return func(o *Options) {
		o.OnStepComplete = fn
	}
}

// WithSubtaskParser overrides how decomposition output is split into subtasks.
func WithSubtaskParser(p SubtaskParser) Option {
	return func(o *Options) {
		o.SubtaskParser = p
	}
}

// WithEvaluationParser overrides how evaluation output is parsed.
func WithEvaluationParser(p EvaluationParser) Option {
	return func(o *Options) {
		o.EvaluationParser = p
	}
}

// ApplyOptions applies functional options with defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{
		StepTimeout:      2 * time.Minute,
		SubtaskParser:    ParseSubtasks,
		EvaluationParser: ParseEvaluation,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
