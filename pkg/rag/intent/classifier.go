package intent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"smart-negotiator-be/internal/constant"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/pkg/llm"
)

// Intent labels a user message with what they want to do.
type Intent string

const (
	IntentNegotiate Intent = "negotiate"
	IntentAddToCart Intent = "add_to_cart"
	IntentStock     Intent = "check_stock"
	IntentDeals     Intent = "check_deals"
	IntentCart      Intent = "check_cart"
	IntentGreeting  Intent = "greeting"
	IntentInfo      Intent = "info"
	IntentUnknown   Intent = "unknown"
)

// ErrProviderParse means a provider answered but not with the expected JSON
// schema. The classifier moves on to the next provider in the chain.
var ErrProviderParse = errors.New("intent response did not match schema")

var validIntents = map[Intent]bool{
	IntentNegotiate: true,
	IntentAddToCart: true,
	IntentStock:     true,
	IntentDeals:     true,
	IntentCart:      true,
	IntentGreeting:  true,
	IntentInfo:      true,
	IntentUnknown:   true,
}

// Classification is one resolved label plus whatever price the model managed
// to pull out of the message.
type Classification struct {
	Intent     Intent
	Price      *float64
	Confidence float64
}

// Classifier asks a chain of LLM providers to label a message. Each provider
// gets exactly one try; the first structurally valid response wins. With no
// providers configured the classifier reports absence rather than failure,
// so the caller can fall back to heuristics.
type Classifier struct {
	providers []llm.LLMProvider
	logger    logger.ILogger
}

func NewClassifier(providers []llm.LLMProvider, log logger.ILogger) *Classifier {
	return &Classifier{
		providers: providers,
		logger:    log,
	}
}

// Available reports whether any provider is configured.
func (c *Classifier) Available() bool {
	return len(c.providers) > 0
}

// Classify returns the resolved classification, or nil when no provider is
// configured. A non-nil error means every configured provider failed.
func (c *Classifier) Classify(ctx context.Context, message, contextProductName string) (*Classification, error) {
	if !c.Available() {
		return nil, nil
	}

	userContent := message
	if contextProductName != "" {
		userContent = fmt.Sprintf("Context product: %s\nMessage: %s", contextProductName, message)
	}

	history := []llm.Message{
		{Role: "system", Content: constant.IntentClassifierPromptV1},
		{Role: "user", Content: userContent},
	}

	var lastErr error
	for _, provider := range c.providers {
		reply, err := provider.Chat(ctx, history, llm.WithTemperature(0.0))
		if err != nil {
			c.logger.Warn("intent", "Provider call failed", map[string]interface{}{
				"provider": provider.Name(),
				"error":    err.Error(),
			})
			lastErr = err
			continue
		}

		resolved, err := parseClassification(reply)
		if err != nil {
			c.logger.Warn("intent", "Provider reply unparseable", map[string]interface{}{
				"provider": provider.Name(),
				"error":    err.Error(),
			})
			lastErr = err
			continue
		}

		c.logger.Debug("intent", "Intent resolved", map[string]interface{}{
			"provider":   provider.Name(),
			"intent":     string(resolved.Intent),
			"confidence": resolved.Confidence,
		})
		return resolved, nil
	}

	return nil, fmt.Errorf("all intent providers failed: %w", lastErr)
}

// parseClassification extracts the intent object, tolerating markdown code
// fences some models insist on adding.
func parseClassification(reply string) (*Classification, error) {
	cleaned := strings.TrimSpace(reply)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var payload struct {
		Intent     string   `json:"intent"`
		Price      *float64 `json:"price"`
		Confidence *float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderParse, err)
	}

	label := Intent(strings.ToLower(strings.TrimSpace(payload.Intent)))
	if !validIntents[label] {
		return nil, fmt.Errorf("%w: unknown label %q", ErrProviderParse, payload.Intent)
	}

	confidence := 1.0
	if payload.Confidence != nil {
		confidence = *payload.Confidence
		if confidence < 0 || confidence > 1 {
			return nil, fmt.Errorf("%w: confidence %v out of range", ErrProviderParse, confidence)
		}
	}

	return &Classification{
		Intent:     label,
		Price:      payload.Price,
		Confidence: confidence,
	}, nil
}
