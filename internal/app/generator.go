package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
)

const (
	systemPrompt = "You are a helpful assistant that generates options for a spin wheel based on the user's prompt. " +
		"Provide a list of options, one per line. Each option should be very concise (maximum 4 words). " +
		"Ensure the options are clean and child-friendly, suitable for a 12-year-old audience. " +
		"Don't number the items or use bullet points. Just provide the raw list of items."

	completionTemperature = 0.7
	completionMaxTokens   = 200
)

// OptionService asks a completion provider for wheel options and parses the reply.
type OptionService struct {
	completer ports.Completer
}

func NewOptionService(c ports.Completer) *OptionService {
	return &OptionService{completer: c}
}

// Generate makes exactly one completion call per invocation.
func (s *OptionService) Generate(ctx context.Context, prompt string) (domain.GeneratedOptions, error) {
	if prompt == "" {
		return domain.GeneratedOptions{}, domain.ErrEmptyPrompt
	}

	content, err := s.completer.Complete(ctx, ports.CompletionRequest{
		System:      systemPrompt,
		User:        prompt,
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		return domain.GeneratedOptions{}, fmt.Errorf("complete: %w", err)
	}

	options := domain.ParseOptions(content)
	if len(options) == 0 {
		return domain.GeneratedOptions{}, domain.ErrNoOptions
	}

	return domain.GeneratedOptions{
		Options:  options,
		Provider: s.completer.Provider(),
	}, nil
}

// ProviderName is the display name used in provider error messages.
func (s *OptionService) ProviderName() string {
	p := s.completer.Provider()
	if p == "" {
		return "provider"
	}
	return strings.ToUpper(p[:1]) + p[1:]
}
