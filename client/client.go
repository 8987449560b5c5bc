package client

import (
	"context"
	"fmt"

	"github.com/strandkit/strand"
	"github.com/strandkit/strand/provider/anthropic"
	"github.com/strandkit/strand/provider/google"
	"github.com/strandkit/strand/provider/openai"
	"github.com/strandkit/strand/retry"
)

// Config holds configuration for creating a client.
type Config struct {
	// Provider selects the completion backend.
	Provider strand.Provider

	// APIKey authenticates against the provider.
	APIKey string

	// Model overrides the provider's default model. Optional.
	Model string

	// Retry configures retry behavior for transient errors.
	// If nil, uses default retry configuration (5 attempts with exponential backoff).
	Retry *strand.RetryConfig
}

// ErrMissingAPIKey is returned when no API key is configured for the provider.
type ErrMissingAPIKey struct {
	Provider string
}

func (e *ErrMissingAPIKey) Error() string {
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrUnknownProvider is returned when the configured provider is not supported.
type ErrUnknownProvider struct {
	Provider string
}

func (e *ErrUnknownProvider) Error() string {
	return fmt.Sprintf("unknown provider: %q", e.Provider)
}

// Client is a retry-wrapping completion client backed by a single provider.
type Client struct {
	provider    strand.Provider
	backend     strand.Completer
	retryConfig retry.Config
}

// New creates a client for the configured provider.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &ErrMissingAPIKey{Provider: string(cfg.Provider)}
	}

	var backend strand.Completer
	switch cfg.Provider {
	case strand.ProviderAnthropic:
		opts := []anthropic.ClientOption{anthropic.WithAPIKey(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, anthropic.WithModel(cfg.Model))
		}
		backend = anthropic.New(opts...)
	case strand.ProviderOpenAI:
		var opts []openai.ClientOption
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		backend = openai.New(cfg.APIKey, opts...)
	case strand.ProviderGoogle:
		var opts []google.ClientOption
		if cfg.Model != "" {
			opts = append(opts, google.WithModel(cfg.Model))
		}
		g, err := google.New(ctx, cfg.APIKey, opts...)
		if err != nil {
			return nil, err
		}
		backend = g
	default:
		return nil, &ErrUnknownProvider{Provider: string(cfg.Provider)}
	}

	retryConfig := retry.DefaultConfig()
	if cfg.Retry != nil {
		retryConfig = retry.Config{
			MaxAttempts:  cfg.Retry.MaxAttempts,
			InitialDelay: cfg.Retry.InitialDelay,
			MaxDelay:     cfg.Retry.MaxDelay,
			Multiplier:   cfg.Retry.Multiplier,
			Jitter:       cfg.Retry.Jitter,
		}
	}

	return &Client{
		provider:    cfg.Provider,
		backend:     backend,
		retryConfig: retryConfig,
	}, nil
}

// Provider returns the backing provider's identifier.
func (c *Client) Provider() strand.Provider {
	return c.provider
}

// Complete sends a prompt through the backend with retry for transient errors.
func (c *Client) Complete(ctx context.Context, prompt string, opts ...strand.Option) (*strand.Completion, error) {
	return retry.Do(ctx, c.retryConfig, func() (*strand.Completion, error) {
		return c.backend.Complete(ctx, prompt, opts...)
	})
}

var _ strand.Completer = (*Client)(nil)
