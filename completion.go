package strand

import "context"

// Completer defines the interface for text-completion providers.
// It is the only collaborator the workflow executors depend on.
type Completer interface {
	// Complete sends a prompt and returns the generated text.
	// A deadline on ctx bounds the call; implementations must return
	// promptly once the context is cancelled.
	Complete(ctx context.Context, prompt string, opts ...Option) (*Completion, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string, opts ...Option) (*Completion, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, prompt string, opts ...Option) (*Completion, error) {
	return f(ctx, prompt, opts...)
}

// Completion represents a complete response from a completion provider.
type Completion struct {
	Text         string `json:"text,omitempty"`
	FinishReason string `json:"finishReason,omitempty"`
	Usage        Usage  `json:"usage"`
}

// Usage contains token usage information for a request.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// Add accumulates usage from another request.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}
