// Package strand composes calls to a text-completion provider into five
// reusable execution topologies: Chain, Parallel, Router, Orchestrator-Workers,
// and Evaluator-Optimizer.
//
// The root package defines the completion contract and shared types. The
// topology executors live in [github.com/strandkit/strand/workflow]; provider
// adapters live under provider/ and are unified by
// [github.com/strandkit/strand/client].
//
// # The Completion Contract
//
// Everything in strand drives a single narrow interface:
//
//	type Completer interface {
//	    Complete(ctx context.Context, prompt string, opts ...Option) (*Completion, error)
//	}
//
// Any deadline on ctx bounds the call. Retry for transient failures belongs to
// the completer, not to the executors; wrap a provider with
// [github.com/strandkit/strand/client] to get exponential backoff.
//
// # Running a Pattern
//
//	c, err := client.New(ctx, client.Config{
//	    Provider: strand.ProviderAnthropic,
//	    APIKey:   os.Getenv("ANTHROPIC_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	chain := workflow.NewChain("summarize", c,
//	    "Extract the key claims from the following text.",
//	    "Rewrite the claims below as a single paragraph.",
//	)
//	result, err := chain.Run(ctx, input)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output)
//
// Every run returns a [workflow.Result] whose Trace records each completion
// invocation in order, including failed ones, so multi-step patterns stay
// debuggable.
//
// # Configuration Options
//
// Completion calls accept functional options:
//
//	resp, err := c.Complete(ctx, prompt,
//	    strand.WithModel("claude-sonnet-4-20250514"),
//	    strand.WithMaxTokens(1000),
//	    strand.WithTemperature(0.7),
//	)
package strand
