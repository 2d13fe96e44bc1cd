package router

import (
	"context"
	"errors"
	"testing"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/pkg/llm"
	"smart-negotiator-be/pkg/negotiation"
	"smart-negotiator-be/pkg/rag/intent"
	"smart-negotiator-be/pkg/rag/response"
	"smart-negotiator-be/pkg/rag/retrieval"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type stubCatalog struct {
	products map[uint]*entity.Product
}

func (s *stubCatalog) GetProduct(_ context.Context, id uint) (*entity.Product, error) {
	return s.products[id], nil
}

func (s *stubCatalog) ListProducts(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

type stubCart struct {
	items []*entity.CartItem
	added []uint
}

func (s *stubCart) Items(_ context.Context, _ string) ([]*entity.CartItem, error) {
	return s.items, nil
}

func (s *stubCart) Add(_ context.Context, _ string, product *entity.Product, _ int) error {
	s.added = append(s.added, product.Id)
	return nil
}

type stubRetriever struct {
	result    *retrieval.Result
	err       error
	lastQuery string
}

func (s *stubRetriever) Answer(_ context.Context, query string) (*retrieval.Result, error) {
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubLLM struct {
	reply string
	err   error
}

func (s *stubLLM) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return s.reply, s.err
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, nil, options...)
}

func (s *stubLLM) Name() string { return "stub" }

func defaultThresholds() negotiation.Thresholds {
	return negotiation.Thresholds{
		HighStockThreshold: 15,
		LowStockThreshold:  5,
		HighDiscountRate:   0.15,
		MediumDiscountRate: 0.10,
		LowDiscountRate:    0.05,
		DefaultMinPricePct: 0.80,
	}
}

func newTestRouter(catalog *stubCatalog, cart *stubCart, retriever *stubRetriever, providers []llm.LLMProvider) *Router {
	classifier := intent.NewClassifier(providers, nopLogger{})
	return NewRouter(
		classifier,
		retriever,
		negotiation.NewManager(defaultThresholds()),
		catalog,
		cart,
		nil,
		nopLogger{},
	)
}

func laptopCatalog() *stubCatalog {
	floor := 900.0
	return &stubCatalog{products: map[uint]*entity.Product{
		1: {Id: 1, Name: "Laptop", Description: "Fast ultrabook", Price: 1000, MinPrice: &floor, Stock: 3},
		2: {Id: 2, Name: "Headphones", Description: "Noise cancelling", Price: 2500, Stock: 20},
	}}
}

func TestRouteGreetingHeuristic(t *testing.T) {
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, nil)

	result, err := r.Route(context.Background(), Input{UserEmail: "asha@example.com", Message: "hello there"})
	require.NoError(t, err)

	assert.Equal(t, intent.IntentGreeting, result.Intent)
	assert.Equal(t, "Hey asha! 👋 How can I help you with our products today?", result.Reply)
}

func TestRouteNegotiationKeywordWithContext(t *testing.T) {
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, nil)
	contextId := uint(1)

	result, err := r.Route(context.Background(), Input{
		UserEmail:        "asha@example.com",
		Message:          "any discount?",
		ContextProductID: &contextId,
	})
	require.NoError(t, err)

	// stock 3, low tier 5%, nominal 950 >= floor 900
	assert.Equal(t, intent.IntentNegotiate, result.Intent)
	assert.Contains(t, result.Reply, "950")
	require.NotNil(t, result.ReferencedProductID)
	assert.Equal(t, uint(1), *result.ReferencedProductID)
}

func TestRouteCounterOfferDeal(t *testing.T) {
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, nil)
	contextId := uint(1)

	result, err := r.Route(context.Background(), Input{
		UserEmail:        "asha@example.com",
		Message:          "i'll pay 960",
		ContextProductID: &contextId,
	})
	require.NoError(t, err)

	assert.Contains(t, result.Reply, "Deal")
}

func TestRouteCounterOfferTooLow(t *testing.T) {
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, nil)
	contextId := uint(1)

	result, err := r.Route(context.Background(), Input{
		UserEmail:        "asha@example.com",
		Message:          "will you take 700",
		ContextProductID: &contextId,
	})
	require.NoError(t, err)

	assert.Contains(t, result.Reply, "950")
	// The floor and stock tier stay private.
	assert.NotContains(t, result.Reply, "900")
	assert.NotContains(t, result.Reply, "stock")
}

func TestRouteWalkAwayShortCircuits(t *testing.T) {
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, nil)
	contextId := uint(1)

	result, err := r.Route(context.Background(), Input{
		UserEmail:        "asha@example.com",
		Message:          "no thanks, that price is too much",
		ContextProductID: &contextId,
	})
	require.NoError(t, err)

	assert.Equal(t, response.NoDealMessage, result.Reply)
}

func TestRouteNegotiationWithoutContextAsksForProduct(t *testing.T) {
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, nil)

	result, err := r.Route(context.Background(), Input{
		UserEmail: "asha@example.com",
		Message:   "give me a discount",
	})
	require.NoError(t, err)

	assert.Equal(t, response.WhichProductToNegotiateMessage, result.Reply)
}

func TestRouteAddToCart(t *testing.T) {
	cart := &stubCart{}
	r := newTestRouter(laptopCatalog(), cart, &stubRetriever{}, nil)
	contextId := uint(2)

	result, err := r.Route(context.Background(), Input{
		UserEmail:        "asha@example.com",
		Message:          "add it to my cart please",
		ContextProductID: &contextId,
	})
	require.NoError(t, err)

	assert.Equal(t, response.AddedToCart("Headphones"), result.Reply)
	assert.Equal(t, []uint{2}, cart.added)
}

func TestRouteAddToCartWithoutContext(t *testing.T) {
	cart := &stubCart{}
	r := newTestRouter(laptopCatalog(), cart, &stubRetriever{}, nil)

	result, err := r.Route(context.Background(), Input{
		UserEmail: "asha@example.com",
		Message:   "add it to my cart",
	})
	require.NoError(t, err)

	assert.Equal(t, response.AskWhichProductMessage, result.Reply)
	assert.Empty(t, cart.added)
}

func TestRouteAddToCartOutOfStock(t *testing.T) {
	cart := &stubCart{}
	catalog := laptopCatalog()
	catalog.products[3] = &entity.Product{Id: 3, Name: "Webcam", Description: "Full HD", Price: 1800, Stock: 0}
	r := newTestRouter(catalog, cart, &stubRetriever{}, nil)
	contextId := uint(3)

	result, err := r.Route(context.Background(), Input{
		UserEmail:        "asha@example.com",
		Message:          "add it to my cart",
		ContextProductID: &contextId,
	})
	require.NoError(t, err)

	assert.Equal(t, response.StockReply("Webcam", 0), result.Reply)
	assert.Empty(t, cart.added)
}

func TestRouteCartViewEmpty(t *testing.T) {
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, nil)

	result, err := r.Route(context.Background(), Input{
		UserEmail: "asha@example.com",
		Message:   "show my cart",
	})
	require.NoError(t, err)

	assert.Equal(t, response.EmptyCartMessage, result.Reply)
}

func TestRouteHelp(t *testing.T) {
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, nil)

	result, err := r.Route(context.Background(), Input{
		UserEmail: "asha@example.com",
		Message:   "what can you do",
	})
	require.NoError(t, err)

	assert.Equal(t, response.HelpMessage, result.Reply)
}

func TestRouteEmptyMessageFallsThroughToRetrieval(t *testing.T) {
	retriever := &stubRetriever{result: &retrieval.Result{Answer: retrieval.NoMatchAnswer}}
	r := newTestRouter(laptopCatalog(), &stubCart{}, retriever, nil)

	result, err := r.Route(context.Background(), Input{
		UserEmail: "asha@example.com",
		Message:   "",
	})
	require.NoError(t, err)

	assert.Equal(t, retrieval.NoMatchAnswer, result.Reply)
	assert.False(t, result.Matched)
}

func TestRouteShortQueryPrefixesContextProduct(t *testing.T) {
	productId := uint(1)
	retriever := &stubRetriever{result: &retrieval.Result{
		Answer:    "Laptop price ₹1000 — Fast ultrabook",
		ProductID: &productId,
		Matched:   true,
	}}
	r := newTestRouter(laptopCatalog(), &stubCart{}, retriever, nil)
	contextId := uint(1)

	result, err := r.Route(context.Background(), Input{
		UserEmail:        "asha@example.com",
		Message:          "warranty?",
		ContextProductID: &contextId,
	})
	require.NoError(t, err)

	assert.Equal(t, "Laptop warranty?", retriever.lastQuery)
	require.NotNil(t, result.ReferencedProductID)
	assert.Equal(t, uint(1), *result.ReferencedProductID)
}

func TestRouteRetrievalFailureIsUserSafe(t *testing.T) {
	retriever := &stubRetriever{err: errors.New("connection refused")}
	r := newTestRouter(laptopCatalog(), &stubCart{}, retriever, nil)

	result, err := r.Route(context.Background(), Input{
		UserEmail: "asha@example.com",
		Message:   "tell me about tablets",
	})
	require.NoError(t, err)

	assert.Equal(t, response.RetrievalFallbackMessage, result.Reply)
	assert.NotContains(t, result.Reply, "connection refused")
}

func TestRouteClassifierDispatchWins(t *testing.T) {
	// The classifier says greeting even though the text matches no greeting
	// keyword; its verdict must take priority over heuristics.
	provider := &stubLLM{reply: `{"intent": "greeting", "confidence": 0.9}`}
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, []llm.LLMProvider{provider})

	result, err := r.Route(context.Background(), Input{
		UserEmail: "asha@example.com",
		Message:   "yo",
	})
	require.NoError(t, err)

	assert.Equal(t, intent.IntentGreeting, result.Intent)
}

func TestRouteClassifierFailureFallsBackToHeuristics(t *testing.T) {
	provider := &stubLLM{err: errors.New("timeout")}
	r := newTestRouter(laptopCatalog(), &stubCart{}, &stubRetriever{}, []llm.LLMProvider{provider})

	result, err := r.Route(context.Background(), Input{
		UserEmail: "asha@example.com",
		Message:   "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, intent.IntentGreeting, result.Intent)
}

func TestRouteClassifierUnknownFallsBackToHeuristics(t *testing.T) {
	provider := &stubLLM{reply: `{"intent": "unknown"}`}
	retriever := &stubRetriever{result: &retrieval.Result{Answer: retrieval.NoMatchAnswer}}
	r := newTestRouter(laptopCatalog(), &stubCart{}, retriever, []llm.LLMProvider{provider})

	result, err := r.Route(context.Background(), Input{
		UserEmail: "asha@example.com",
		Message:   "qwerty asdf",
	})
	require.NoError(t, err)

	assert.Equal(t, retrieval.NoMatchAnswer, result.Reply)
}
