package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"smart-negotiator-be/pkg/llm"
)

type AnthropicProvider struct {
	apiKey string
	model  string
	client *http.Client
}

var _ llm.LLMProvider = &AnthropicProvider{}

type messagesRequest struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature,omitempty"`
	System      string        `json:"system,omitempty"`
	Messages    []llm.Message `json:"messages"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func NewAnthropicProvider(apiKey, model string) *AnthropicProvider {
	if model == "" {
		model = "claude-3-haiku-20240307"
	}
	return &AnthropicProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *AnthropicProvider) Name() string {
	return "anthropic"
}

func (p *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	opts := &llm.Options{
		Model:       p.model,
		Temperature: 0.7,
		MaxTokens:   500,
	}
	for _, o := range options {
		o(opts)
	}

	// The messages API takes the system prompt as a top-level field
	var system string
	messages := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		if msg.Role == "system" {
			system = msg.Content
			continue
		}
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages = append(messages, llm.Message{Role: role, Content: msg.Content})
	}

	reqBody := messagesRequest{
		Model:       opts.Model,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		System:      system,
		Messages:    messages,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.anthropic.com/v1/messages", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("anthropic api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var msgResp messagesResponse
	if err := json.Unmarshal(bodyBytes, &msgResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if msgResp.Error != nil {
		return "", fmt.Errorf("anthropic api error: %s", msgResp.Error.Message)
	}
	if len(msgResp.Content) == 0 {
		return "", fmt.Errorf("anthropic returned no content")
	}

	return msgResp.Content[0].Text, nil
}

func (p *AnthropicProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}
