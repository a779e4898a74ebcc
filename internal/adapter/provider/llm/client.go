// Package llm is a minimal chat-completions client for the configured
// text-generation endpoint. The endpoint, model, and API keys are all
// external configuration; the auth header style is picked by which known
// provider host the endpoint points at.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/okazimirov/learnlog-backend/internal/config"
	"github.com/okazimirov/learnlog-backend/internal/domain"
)

// Message is one chat message in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client calls the text-generation endpoint. One blocking round trip per
// request: no retry, no streaming.
type Client struct {
	cfg  config.AIConfig
	http *http.Client
	log  *slog.Logger
}

// New creates an LLM client. The request timeout comes from AIConfig.
func New(cfg config.AIConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.RequestTimeout},
		log:  logger.With("component", "llm"),
	}
}

// Complete sends the messages to the configured endpoint and returns the
// first completion. Any non-success status or malformed response maps to
// domain.ErrExternalService.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call %s: %v: %w", c.cfg.Endpoint, err, domain.ErrExternalService)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read completion response: %v: %w", err, domain.ErrExternalService)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.ErrorContext(ctx, "completion call failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncate(string(respBody), 512)),
		)
		return "", fmt.Errorf("completion endpoint returned %d: %w", resp.StatusCode, domain.ErrExternalService)
	}

	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %v: %w", err, domain.ErrExternalService)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("completion response missing content: %w", domain.ErrExternalService)
	}

	return parsed.Choices[0].Message.Content, nil
}

// setAuthHeaders applies the provider-specific auth scheme. Three hosts are
// recognized; anything else gets the OpenRouter-style headers.
func (c *Client) setAuthHeaders(req *http.Request) {
	endpoint := c.cfg.Endpoint
	switch {
	case strings.Contains(endpoint, "api.openai.com"):
		req.Header.Set("Authorization", "Bearer "+c.cfg.OpenAIKey)
	case strings.Contains(endpoint, "api.anthropic.com"):
		req.Header.Set("x-api-key", c.cfg.AnthropicKey)
		req.Header.Set("anthropic-version", "2023-06-01")
	default: // openrouter.ai and unknown hosts
		req.Header.Set("Authorization", "Bearer "+c.cfg.OpenRouterKey)
		req.Header.Set("HTTP-Referer", c.cfg.SiteURL)
		req.Header.Set("X-Title", "Learning Tracker")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
