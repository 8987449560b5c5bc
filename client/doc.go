// Package client provides a unified entry point for completion providers.
//
// A Client selects a provider backend from configuration and wraps every
// completion call with retry logic for transient errors (rate limits, server
// errors, network failures). It implements strand.Completer, so it plugs
// directly into the workflow executors:
//
//	c, err := client.New(ctx, client.Config{
//	    Provider: strand.ProviderAnthropic,
//	    APIKey:   os.Getenv("ANTHROPIC_API_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	router := workflow.NewRouter("support", c, classifier, routes, fallback)
//	result, err := router.Run(ctx, ticket)
//
// Retry behavior defaults to exponential backoff with jitter; pass a custom
// strand.RetryConfig (or strand.DisabledRetryConfig()) to change it.
package client
