package intent

import (
	"context"
	"errors"
	"testing"

	"smart-negotiator-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name  string
	reply string
	err   error
	calls int
}

func (s *stubProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	s.calls++
	return s.reply, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func (s *stubProvider) Name() string { return s.name }

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestClassifyFirstProviderWins(t *testing.T) {
	first := &stubProvider{name: "first", reply: `{"intent": "negotiate", "price": 900, "confidence": 0.95}`}
	second := &stubProvider{name: "second", reply: `{"intent": "greeting"}`}

	c := NewClassifier([]llm.LLMProvider{first, second}, nopLogger{})
	got, err := c.Classify(context.Background(), "can you do 900?", "Laptop")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, IntentNegotiate, got.Intent)
	require.NotNil(t, got.Price)
	assert.Equal(t, 900.0, *got.Price)
	assert.Equal(t, 0.95, got.Confidence)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestClassifyFallsThroughOnBadReply(t *testing.T) {
	first := &stubProvider{name: "first", reply: "I think the user wants to negotiate"}
	second := &stubProvider{name: "second", reply: "```json\n{\"intent\": \"add_to_cart\"}\n```"}

	c := NewClassifier([]llm.LLMProvider{first, second}, nopLogger{})
	got, err := c.Classify(context.Background(), "add it to my cart", "")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, IntentAddToCart, got.Intent)
	assert.Nil(t, got.Price)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestClassifyEachProviderGetsOneTry(t *testing.T) {
	failing := &stubProvider{name: "down", err: errors.New("timeout")}
	c := NewClassifier([]llm.LLMProvider{failing}, nopLogger{})

	got, err := c.Classify(context.Background(), "hello", "")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1, failing.calls)
}

func TestClassifyWithoutProviders(t *testing.T) {
	c := NewClassifier(nil, nopLogger{})
	assert.False(t, c.Available())

	got, err := c.Classify(context.Background(), "hello", "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseClassificationRejectsUnknownLabels(t *testing.T) {
	_, err := parseClassification(`{"intent": "buy_now"}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProviderParse))
}

func TestParseClassificationRejectsBadConfidence(t *testing.T) {
	_, err := parseClassification(`{"intent": "info", "confidence": 1.7}`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProviderParse))
}

func TestParseClassificationNormalizesCase(t *testing.T) {
	got, err := parseClassification(`{"intent": " Check_Stock "}`)
	require.NoError(t, err)
	assert.Equal(t, IntentStock, got.Intent)
	assert.Equal(t, 1.0, got.Confidence)
}
