package response

import (
	"context"
	"errors"
	"testing"

	"smart-negotiator-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, _ string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, nil, options...)
}

func (s *stubLLM) Name() string { return "stub" }

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestPolishUsesProviderReply(t *testing.T) {
	p := NewPolisher([]llm.LLMProvider{&stubLLM{reply: "Sure! The Laptop is ₹55000."}}, nopLogger{})
	got := p.Polish(context.Background(), "Laptop price ₹55000 — Fast ultrabook", "laptop?")
	assert.Equal(t, "Sure! The Laptop is ₹55000.", got)
}

func TestPolishFallsBackOnFailure(t *testing.T) {
	p := NewPolisher([]llm.LLMProvider{&stubLLM{err: errors.New("down")}}, nopLogger{})
	got := p.Polish(context.Background(), "plain answer", "query")
	assert.Equal(t, "plain answer", got)
}

func TestPolishWithoutProviders(t *testing.T) {
	p := NewPolisher(nil, nopLogger{})
	got := p.Polish(context.Background(), "plain answer", "query")
	assert.Equal(t, "plain answer", got)
}

func TestGreetingUsesEmailLocalPart(t *testing.T) {
	assert.Equal(t, "Hey ravi! 👋 How can I help you with our products today?", Greeting("ravi@example.com"))
	assert.Equal(t, "Hey guest! 👋 How can I help you with our products today?", Greeting("guest"))
}
