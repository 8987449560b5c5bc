package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/strandkit/strand/client"
	"github.com/strandkit/strand/workflow"
)

func demoWorkflowRouter(ctx context.Context, c *client.Client) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│         Workflow Router Demo            │")
	fmt.Println("└─────────────────────────────────────────┘")
	fmt.Println("\nThis demo classifies a support ticket and routes it to a specialist.")

	router := workflow.NewRouter("support", c,
		"Classify the following support ticket as exactly one of: billing, technical, account. Reply with the single word only.",
		map[string]string{
			"billing":   "You are a billing specialist. Resolve the following ticket concisely.",
			"technical": "You are a technical support engineer. Resolve the following ticket concisely.",
			"account":   "You are an account manager. Resolve the following ticket concisely.",
		},
		"You are a general support agent. Resolve the following ticket concisely.",
	)

	fmt.Print("\nEnter a support ticket (or press Enter for a sample): ")
	ticket, _ := reader.ReadString('\n')
	ticket = strings.TrimSpace(ticket)
	if ticket == "" {
		ticket = "I was charged twice for my subscription this month and need a refund."
		fmt.Printf("Using sample: %q\n", ticket)
	}

	fmt.Println("\n--- Executing Router ---")
	result, err := router.Run(ctx, ticket, workflow.WithOnStepComplete(stepProgress))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	printRunSummary(result)
}
