package workflow

import (
	"context"
	"strings"
	"sync"

	"github.com/strandkit/strand"
)

// --- Mock Completer ---

type mockResponse struct {
	text string
	err  error
}

type promptResponse struct {
	match string
	resp  mockResponse
}

// mockCompleter serves scripted responses in call order, with optional
// substring-matched responses for concurrent topologies where arrival
// order is not deterministic. Matchers are checked first, in order.
type mockCompleter struct {
	mu        sync.Mutex
	responses []mockResponse
	byPrompt  []promptResponse
	calls     []string
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string, opts ...strand.Option) (*strand.Completion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, prompt)

	for _, pr := range m.byPrompt {
		if strings.Contains(prompt, pr.match) {
			return pr.resp.completion()
		}
	}

	if len(m.responses) == 0 {
		return &strand.Completion{Text: "no more responses"}, nil
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp.completion()
}

func (r mockResponse) completion() (*strand.Completion, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &strand.Completion{
		Text:  r.text,
		Usage: strand.Usage{InputTokens: 10, OutputTokens: 20},
	}, nil
}

func (m *mockCompleter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockCompleter) promptAt(i int) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[i]
}

func (m *mockCompleter) sawPromptContaining(sub string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.calls {
		if strings.Contains(p, sub) {
			return true
		}
	}
	return false
}

// traceNames extracts step names from a trace for order assertions.
func traceNames(trace []StepResult) []string {
	names := make([]string, len(trace))
	for i, sr := range trace {
		names[i] = sr.StepName
	}
	return names
}
