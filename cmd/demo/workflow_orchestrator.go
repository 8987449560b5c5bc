package main

import (
	"context"
	"fmt"
	"os"

	"github.com/strandkit/strand/client"
	"github.com/strandkit/strand/workflow"
)

func demoWorkflowOrchestrator(ctx context.Context, c *client.Client) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│     Workflow Orchestrator Demo          │")
	fmt.Println("└─────────────────────────────────────────┘")
	fmt.Println("\nThis demo decomposes a writing task, drafts each section")
	fmt.Println("concurrently (at most 3 at a time), and combines the drafts.")

	orchestrator := workflow.NewOrchestrator("briefing", c,
		"Break the following writing task into 3-5 short section topics, one per line. Just the topics.",
		"Write one tight paragraph covering the following section topic.",
		"Merge the following section drafts into a single coherent briefing. Keep it under 300 words.",
	)

	task := "Write a briefing on how honeybee colonies are organized."

	fmt.Println("\n--- Executing Orchestrator ---")
	result, err := orchestrator.Run(ctx, task,
		workflow.WithMaxConcurrency(3),
		workflow.WithOnStepComplete(stepProgress),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	printRunSummary(result)
}
