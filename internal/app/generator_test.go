package app_test

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/app"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
)

type mockCompleter struct {
	out   string
	err   error
	calls int
	last  ports.CompletionRequest
}

func (m *mockCompleter) Complete(_ context.Context, req ports.CompletionRequest) (string, error) {
	m.calls++
	m.last = req
	return m.out, m.err
}

func (m *mockCompleter) Provider() string { return "groq" }

func TestGenerate_Success(t *testing.T) {
	c := &mockCompleter{out: "Pancakes\nEggs\nToast\nCereal\n"}
	svc := app.NewOptionService(c)

	got, err := svc.Generate(context.Background(), "breakfast foods")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Pancakes", "Eggs", "Toast", "Cereal"}
	if !slices.Equal(got.Options, want) {
		t.Errorf("expected %q, got %q", want, got.Options)
	}
	if got.Provider != "groq" {
		t.Errorf("unexpected provider: %s", got.Provider)
	}

	if c.last.User != "breakfast foods" {
		t.Errorf("prompt not forwarded as user turn: %q", c.last.User)
	}
	if !strings.Contains(c.last.System, "child-friendly") {
		t.Errorf("system instruction missing: %q", c.last.System)
	}
	if c.last.Temperature != 0.7 || c.last.MaxTokens != 200 {
		t.Errorf("unexpected sampling params: %+v", c.last)
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	c := &mockCompleter{}
	svc := app.NewOptionService(c)

	_, err := svc.Generate(context.Background(), "")
	if !errors.Is(err, domain.ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
	if c.calls != 0 {
		t.Errorf("provider must not be called, got %d calls", c.calls)
	}
}

func TestGenerate_FallbackParse(t *testing.T) {
	c := &mockCompleter{out: "* Red, Green, Blue"}
	svc := app.NewOptionService(c)

	got, err := svc.Generate(context.Background(), "colors")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Red", "Green", "Blue"}
	if !slices.Equal(got.Options, want) {
		t.Errorf("expected %q, got %q", want, got.Options)
	}
}

func TestGenerate_NoOptions(t *testing.T) {
	svc := app.NewOptionService(&mockCompleter{out: "  \n * \n 1. \n"})

	_, err := svc.Generate(context.Background(), "anything")
	if !errors.Is(err, domain.ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	pe := &domain.ProviderError{Provider: "groq", Message: "Invalid API Key"}
	c := &mockCompleter{err: pe}
	svc := app.NewOptionService(c)

	_, err := svc.Generate(context.Background(), "anything")
	var got *domain.ProviderError
	if !errors.As(err, &got) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if got.Message != "Invalid API Key" {
		t.Errorf("unexpected message: %s", got.Message)
	}
	if c.calls != 1 {
		t.Errorf("expected a single attempt, got %d", c.calls)
	}
}

func TestProviderName(t *testing.T) {
	svc := app.NewOptionService(&mockCompleter{})
	if svc.ProviderName() != "Groq" {
		t.Errorf("unexpected provider name: %s", svc.ProviderName())
	}
}
