package main

import (
	"context"
	"fmt"
	"os"

	"github.com/strandkit/strand/client"
	"github.com/strandkit/strand/workflow"
)

func demoWorkflowEvaluator(ctx context.Context, c *client.Client) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│   Workflow Evaluator-Optimizer Demo     │")
	fmt.Println("└─────────────────────────────────────────┘")
	fmt.Println("\nThis demo generates a haiku, scores it, and refines it until")
	fmt.Println("the score reaches 8/10 or three iterations have run.")

	optimizer := workflow.NewEvaluatorOptimizer("haiku", c,
		"Write a haiku about the ocean at dawn. Just the haiku.",
		"Score the following haiku from 0 to 10 for imagery and adherence to the 5-7-5 form. Start your reply with the score, then give one line of feedback.",
		"Rewrite the haiku below to address the feedback. Just the improved haiku.",
		8, 3,
	)

	fmt.Println("\n--- Executing Evaluator-Optimizer ---")
	result, err := optimizer.Run(ctx, "", workflow.WithOnStepComplete(stepProgress))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	printRunSummary(result)
}
