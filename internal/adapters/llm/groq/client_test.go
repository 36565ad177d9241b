package groq_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/adapters/llm/groq"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
)

func testRequest() ports.CompletionRequest {
	return ports.CompletionRequest{
		System:      "system text",
		User:        "breakfast foods",
		Temperature: 0.7,
		MaxTokens:   200,
	}
}

func completion(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "llama3-8b-8192",
		"choices": []map[string]any{
			{"index": 0, "message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func TestClient_Complete_Success(t *testing.T) {
	var gotReq map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("bad auth header: %s", r.Header.Get("Authorization"))
		}

		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotReq)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion("\nPancakes\nEggs\n"))
	}))
	defer srv.Close()

	client := groq.NewClient(srv.Client(), "test-key", srv.URL, "", slog.Default())

	out, err := client.Complete(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Pancakes\nEggs" {
		t.Errorf("unexpected content: %q", out)
	}

	if gotReq["model"] != groq.DefaultModel {
		t.Errorf("request model: %v", gotReq["model"])
	}
	if gotReq["temperature"] != 0.7 {
		t.Errorf("request temperature: %v", gotReq["temperature"])
	}
	if gotReq["max_tokens"] != float64(200) {
		t.Errorf("request max_tokens: %v", gotReq["max_tokens"])
	}
	msgs, _ := gotReq["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %v", gotReq["messages"])
	}
	user, _ := msgs[1].(map[string]any)
	if user["role"] != "user" || user["content"] != "breakfast foods" {
		t.Errorf("unexpected user message: %v", user)
	}
}

func TestClient_Complete_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer srv.Close()

	client := groq.NewClient(srv.Client(), "bad", srv.URL, "m", slog.Default())

	_, err := client.Complete(context.Background(), testRequest())
	var pe *domain.ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if pe.Message != "Invalid API Key" || pe.Provider != groq.ProviderName {
		t.Errorf("unexpected provider error: %+v", pe)
	}
}

func TestClient_Complete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer srv.Close()

	client := groq.NewClient(srv.Client(), "key", srv.URL, "m", slog.Default())

	_, err := client.Complete(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		t.Error("empty choices must not be reported as a provider error")
	}
}

func TestClient_Complete_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := groq.NewClient(nil, "key", url, "m", slog.Default())

	if _, err := client.Complete(context.Background(), testRequest()); err == nil {
		t.Fatal("expected error for closed server")
	}
}
