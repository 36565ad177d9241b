// Package optionsapi calls a running option generator service over HTTP.
package optionsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/EdenDigitalUK/ai-spin-wheel-public/internal/domain"
)

const generatePath = "/generate-options"

// ErrGenerate is returned for any non-2xx reply.
var ErrGenerate = errors.New("Failed to generate options")

// Client implements ports.OptionGenerator.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) Generate(ctx context.Context, prompt string) (domain.GeneratedOptions, error) {
	body, err := json.Marshal(generateRequest{Prompt: prompt})
	if err != nil {
		return domain.GeneratedOptions{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return domain.GeneratedOptions{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.GeneratedOptions{}, fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.GeneratedOptions{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		if json.Unmarshal(respBody, &e) == nil && e.Error != "" {
			return domain.GeneratedOptions{}, fmt.Errorf("%w: %s", ErrGenerate, e.Error)
		}
		return domain.GeneratedOptions{}, ErrGenerate
	}

	var out domain.GeneratedOptions
	if err := json.Unmarshal(respBody, &out); err != nil {
		return domain.GeneratedOptions{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
