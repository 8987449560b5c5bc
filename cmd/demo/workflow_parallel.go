package main

import (
	"context"
	"fmt"
	"os"

	"github.com/strandkit/strand/client"
	"github.com/strandkit/strand/workflow"
)

func demoWorkflowParallel(ctx context.Context, c *client.Client) {
	fmt.Println("┌─────────────────────────────────────────┐")
	fmt.Println("│        Workflow Parallel Demo           │")
	fmt.Println("└─────────────────────────────────────────┘")
	fmt.Println("\nThis demo fans the same input out to three independent reviewers.")

	parallel := workflow.NewParallel("review", c, []string{
		"Review the following function for correctness bugs. Be brief.",
		"Review the following function for performance problems. Be brief.",
		"Review the following function for naming and style issues. Be brief.",
	})

	input := `func Sum(nums []int) int {
	total := 0
	for i := 0; i < len(nums); i++ {
		total = total + nums[i]
	}
	return total
}`

	fmt.Println("\n--- Executing Parallel ---")
	result, err := parallel.Run(ctx, input, workflow.WithOnStepComplete(stepProgress))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	fmt.Println("\n--- Results ---")
	labels := []string{"Correctness", "Performance", "Style"}
	for i, sr := range result.Outputs {
		fmt.Printf("\n%s:\n", labels[i])
		if sr.Failed() {
			fmt.Printf("  (branch failed: %v)\n", sr.Err)
			continue
		}
		fmt.Println(sr.Text)
	}
	fmt.Printf("\n[Tokens: %d in, %d out]\n", result.Usage.InputTokens, result.Usage.OutputTokens)
}
