// Package workflow provides five composable execution topologies for
// completion calls: Chain, Parallel, Router, Orchestrator, and
// EvaluatorOptimizer.
//
// Each topology is an independent executor built on the same step plumbing:
// one step is one completion invocation with a constructed prompt, a per-step
// timeout, and error normalization. Step failure is data, not a panic; every
// executor decides its own partial-failure policy:
//
//   - Chain stops at the first failing step (a chain cannot continue past a
//     missing link).
//   - Parallel never aborts on a failing branch; every branch's StepResult is
//     collected at its original index.
//   - Router fails only if classification fails; an unrecognized label rides
//     the default route.
//   - Orchestrator keeps failed workers as positional placeholders so the
//     combination step sees which subtask each fragment answers.
//   - EvaluatorOptimizer returns the best candidate so far rather than
//     surfacing a refinement failure.
//
// Every Run returns a Result whose Trace records each completion invocation
// in order, including failed ones.
//
// Chain, Router, and EvaluatorOptimizer are strictly sequential. Parallel and
// Orchestrator fan out concurrently; branches share no mutable state and the
// fan-in waits for every branch to reach a terminal state. Cancelling the Run
// context cancels all in-flight branches.
//
// Retry is deliberately absent here: it belongs to the Completer (see the
// client package).
package workflow
