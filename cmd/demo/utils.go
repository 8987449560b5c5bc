package main

import (
	"context"
	"fmt"

	"github.com/strandkit/strand/workflow"
)

// stepProgress prints each step outcome as it completes.
func stepProgress(ctx context.Context, sr workflow.StepResult) {
	if sr.Failed() {
		fmt.Printf("  [%s] ✗ %v\n", sr.StepName, sr.Err)
		return
	}
	fmt.Printf("  [%s] ✓ %d chars\n", sr.StepName, len(sr.Text))
}

// printRunSummary prints the terminal output, trace, and token totals of a run.
func printRunSummary(result *workflow.Result) {
	fmt.Println("\n--- Results ---")
	fmt.Printf("Run: %s\n", result.ID)
	if result.Output != "" {
		fmt.Printf("\n%s\n", result.Output)
	}
	fmt.Printf("\nTrace (%d steps):\n", len(result.Trace))
	for _, sr := range result.Trace {
		status := "ok"
		if sr.Failed() {
			status = sr.Err.Error()
		}
		fmt.Printf("  %-12s %s\n", sr.StepName, status)
	}
	fmt.Printf("[Tokens: %d in, %d out]\n", result.Usage.InputTokens, result.Usage.OutputTokens)
}
