package main

import (
	"context"
	"fmt"
	"os"

	"github.com/strandkit/strand/client"
	"github.com/strandkit/strand/workflow"
)

func demoWorkflowChain(ctx context.Context, c *client.Client) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│         Workflow Chain Demo             │")
	fmt.Println("└─────────────────────────────────────────┘")
	fmt.Println("\nThis demo runs a sequential chain:")
	fmt.Println("  1. Extract the key claims from a passage")
	fmt.Println("  2. Rewrite the claims as a paragraph")
	fmt.Println("  3. Compress the paragraph to one sentence")

	chain := workflow.NewChain("summarize", c,
		"Extract the key factual claims from the following text, one per line. Just the claims, nothing else.",
		"Rewrite the following claims as a single coherent paragraph.",
		"Compress the following paragraph into one sentence.",
	)

	input := "The honeybee is the only insect that produces food eaten by humans. " +
		"A single bee colony can contain up to 60,000 bees. " +
		"Bees communicate the location of food sources through a waggle dance. " +
		"Honey never spoils when stored properly."

	fmt.Println("\n--- Executing Chain ---")
	result, err := chain.Run(ctx, input, workflow.WithOnStepComplete(stepProgress))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	printRunSummary(result)
}
