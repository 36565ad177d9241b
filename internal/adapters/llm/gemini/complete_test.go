package gemini_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/llm/gemini"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *gemini.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client, err := gemini.NewClient(context.Background(), "test-key", "", slog.New(slog.NewTextHandler(io.Discard, nil)),
		option.WithEndpoint(srv.URL),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func request() ports.CompletionRequest {
	return ports.CompletionRequest{System: "system text", User: "breakfast foods", Temperature: 0.7, MaxTokens: 200}
}

func TestClient_Complete_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "models/"+gemini.DefaultModel+":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"1. Pancakes\n2. Eggs\n"}]}}]}`)
	})

	out, err := client.Complete(context.Background(), request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1. Pancakes\n2. Eggs" {
		t.Errorf("unexpected text %q", out)
	}
}

func TestClient_Complete_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`)
	})

	_, err := client.Complete(context.Background(), request())

	var pe *domain.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %T: %v", err, err)
	}
	if pe.Provider != gemini.ProviderName {
		t.Errorf("unexpected provider %q", pe.Provider)
	}
	if pe.Message != "API key not valid. Please pass a valid API key." {
		t.Errorf("unexpected message %q", pe.Message)
	}
}

func TestClient_Complete_NoCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	_, err := client.Complete(context.Background(), request())
	if err == nil {
		t.Fatal("expected error for an empty response")
	}
	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		t.Errorf("empty response is not a provider error: %v", err)
	}
}
