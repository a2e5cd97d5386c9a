package ai

import (
	"context"
	"errors"
)

// Mock is an offline Completer for local debugging and tests. Responses are
// replayed in order; when exhausted the last one repeats.
type Mock struct {
	Responses []string
	Err       error

	calls int
}

func (m *Mock) Complete(_ context.Context, _ string, _ int) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", &UpstreamError{Provider: "mock", Err: errors.New("no scripted response")}
	}
	i := m.calls
	if i >= len(m.Responses) {
		i = len(m.Responses) - 1
	}
	m.calls++
	return m.Responses[i], nil
}

// Calls reports how many completions were requested.
func (m *Mock) Calls() int { return m.calls }
