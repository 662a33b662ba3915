package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/krishna2323777/tax-analyser-final/config"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// CompletionClient is the capability the extraction service depends on:
// prompt text in, completion text out. Tests substitute a deterministic
// stub so no network is involved.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// OpenAIClient calls the OpenAI Chat Completions API.
type OpenAIClient struct {
	apiKey    string
	model     string
	maxTokens int
	endpoint  string
	client    *http.Client
}

// NewOpenAIClient creates a client from the model configuration.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	return newOpenAIClient(cfg, apiURL)
}

// NewOpenAIClientWithEndpoint creates a client pointing at a custom API
// endpoint (for testing).
func NewOpenAIClientWithEndpoint(cfg *config.OpenAIConfig, endpoint string) *OpenAIClient {
	return newOpenAIClient(cfg, endpoint)
}

func newOpenAIClient(cfg *config.OpenAIConfig, endpoint string) *OpenAIClient {
	model := cfg.Model
	if model == "" {
		model = "gpt-4"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &OpenAIClient{
		apiKey:    cfg.APIKey,
		model:     model,
		maxTokens: maxTokens,
		endpoint:  endpoint,
		client:    &http.Client{Timeout: timeout},
	}
}

// Complete sends one chat-completion request. Temperature is pinned to zero
// so identical documents yield identical extractions.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	reqBody := map[string]interface{}{
		"model":       c.model,
		"temperature": 0,
		"max_tokens":  c.maxTokens,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userContent},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling openai API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	return parseCompletion(respBody)
}

// apiResponse models the OpenAI Chat Completions API response.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func parseCompletion(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API: no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
