// Package ai wraps the text-completion providers behind a single small
// interface. One attempt per call, no retries; fallback behavior belongs to
// the calling stage.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShadyGEE/slideshow-agent/internal/config"
)

// ErrNoCredential is returned by constructors when no API key is configured.
var ErrNoCredential = errors.New("ai: no api key configured")

// UpstreamError wraps any failure of the remote call, including timeouts and
// empty response bodies.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai: %s upstream call failed: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Completer is the text-completion contract used by the workflow stages.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// New builds a Completer for the active provider in cfg.
func New(cfg *config.AIConfig) (Completer, error) {
	settings, err := cfg.Active()
	if err != nil {
		return nil, err
	}

	switch settings.Driver {
	case "gemini":
		return NewGemini(settings)
	case "openai", "groq":
		return NewOpenAI(settings)
	default:
		return nil, fmt.Errorf("ai: unknown provider driver %q", settings.Driver)
	}
}
