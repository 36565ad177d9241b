package ports

import (
	"context"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
)

// CompletionRequest is a single system + user chat turn.
type CompletionRequest struct {
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Completer sends one chat completion to a language-model provider and
// returns the raw reply text. Provider-reported failures are returned as
// *domain.ProviderError.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Provider is the short provider id reported to clients, e.g. "groq".
	Provider() string
}

// OptionGenerator turns a prompt into wheel options.
type OptionGenerator interface {
	Generate(ctx context.Context, prompt string) (domain.GeneratedOptions, error)
}
