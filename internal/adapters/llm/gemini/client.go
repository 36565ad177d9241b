// Package gemini implements ports.Completer with Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/ports"
)

const (
	ProviderName = "gemini"
	DefaultModel = "gemini-1.5-flash"
)

type Client struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewClient dials Gemini with apiKey. Extra options (endpoint, HTTP client)
// are passed through to genai.
func NewClient(ctx context.Context, apiKey, model string, logger *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	c, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini.NewClient: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{client: c, model: model, logger: logger}, nil
}

func (c *Client) Provider() string { return ProviderName }

func (c *Client) Close() error { return c.client.Close() }

func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(req.Temperature)
	m.SetMaxOutputTokens(int32(req.MaxTokens))
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}

	resp, err := m.GenerateContent(ctx, genai.Text(req.User))
	if err != nil {
		if ae, ok := apierror.FromError(err); ok {
			msg := ae.Error()
			var gerr *googleapi.Error
			if st := ae.GRPCStatus(); st != nil {
				msg = st.Message()
			} else if errors.As(err, &gerr) && gerr.Message != "" {
				msg = gerr.Message
			}
			c.logger.WarnContext(ctx, "gemini api error", "reason", ae.Reason(), "message", msg)
			return "", &domain.ProviderError{Provider: ProviderName, Message: msg}
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", fmt.Errorf("no candidates in response")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
		// The first candidate with content is the answer.
		if b.Len() > 0 {
			break
		}
	}
	return strings.TrimSpace(b.String())
}
