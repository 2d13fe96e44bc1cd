package router

import (
	"context"
	"fmt"
	"strings"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/pkg/negotiation"
	"smart-negotiator-be/pkg/rag/intent"
	"smart-negotiator-be/pkg/rag/response"
	"smart-negotiator-be/pkg/rag/retrieval"
)

// Catalog is the narrow read surface the router needs from the product
// store. Writes to the catalog never happen here.
type Catalog interface {
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}

// CartService is the cart surface the router can reach: read the cart and
// add one product on the user's behalf.
type CartService interface {
	Items(ctx context.Context, userEmail string) ([]*entity.CartItem, error)
	Add(ctx context.Context, userEmail string, product *entity.Product, quantity int) error
}

// Retriever runs the semantic product lookup.
type Retriever interface {
	Answer(ctx context.Context, query string) (*retrieval.Result, error)
}

// AnswerPolisher rewrites retrieval answers; best-effort.
type AnswerPolisher interface {
	Polish(ctx context.Context, answer, query string) string
}

// Input is one incoming chat turn plus the session's context product.
type Input struct {
	UserEmail        string
	Message          string
	ContextProductID *uint
}

// Result is the routed reply. ReferencedProductID is set when this turn
// resolved a product (retrieval match or explicit context use) so the caller
// can update the dialogue context.
type Result struct {
	Reply               string
	Intent              intent.Intent
	ReferencedProductID *uint
	Matched             bool
}

// Router decides how each chat turn is handled: classifier first, fixed
// heuristic priority second, retrieval as the final fallback.
type Router struct {
	classifier *intent.Classifier
	retriever  Retriever
	thresholds *negotiation.Manager
	catalog    Catalog
	cart       CartService
	polisher   AnswerPolisher
	logger     logger.ILogger
}

func NewRouter(
	classifier *intent.Classifier,
	retriever Retriever,
	thresholds *negotiation.Manager,
	catalog Catalog,
	cart CartService,
	polisher AnswerPolisher,
	log logger.ILogger,
) *Router {
	return &Router{
		classifier: classifier,
		retriever:  retriever,
		thresholds: thresholds,
		catalog:    catalog,
		cart:       cart,
		polisher:   polisher,
		logger:     log,
	}
}

// Route handles one turn.
func (r *Router) Route(ctx context.Context, in Input) (*Result, error) {
	contextProduct := r.loadContextProduct(ctx, in.ContextProductID)

	// First pass: the classifier, when configured. Classifier trouble is
	// never fatal; heuristics take over.
	if r.classifier != nil && r.classifier.Available() {
		contextName := ""
		if contextProduct != nil {
			contextName = contextProduct.Name
		}
		classification, err := r.classifier.Classify(ctx, in.Message, contextName)
		if err != nil {
			r.logger.Warn("router", "Classifier unavailable, using heuristics", map[string]interface{}{
				"error": err.Error(),
			})
		} else if classification != nil {
			if result, handled := r.dispatchIntent(ctx, in, classification, contextProduct); handled {
				return result, nil
			}
		}
	}

	return r.routeByHeuristics(ctx, in, contextProduct)
}

func (r *Router) loadContextProduct(ctx context.Context, id *uint) *entity.Product {
	if id == nil {
		return nil
	}
	product, err := r.catalog.GetProduct(ctx, *id)
	if err != nil {
		r.logger.Warn("router", "Context product lookup failed", map[string]interface{}{
			"product_id": *id,
			"error":      err.Error(),
		})
		return nil
	}
	return product
}

// dispatchIntent handles the classifier labels that map directly to a
// branch. Info and unknown fall back to heuristics (handled=false).
func (r *Router) dispatchIntent(ctx context.Context, in Input, c *intent.Classification, contextProduct *entity.Product) (*Result, bool) {
	switch c.Intent {
	case intent.IntentGreeting:
		return &Result{Reply: response.Greeting(in.UserEmail), Intent: intent.IntentGreeting}, true
	case intent.IntentNegotiate:
		return r.negotiate(in.Message, c.Price, contextProduct), true
	case intent.IntentAddToCart:
		return r.addToCart(ctx, in.UserEmail, contextProduct), true
	case intent.IntentStock:
		return r.stockQuery(ctx, contextProduct), true
	case intent.IntentDeals:
		return r.dealsQuery(ctx), true
	case intent.IntentCart:
		return r.cartView(ctx, in.UserEmail), true
	default:
		return nil, false
	}
}

// routeByHeuristics applies the fixed priority: greeting, negotiation,
// add-to-cart, stock/deals/cart, help, retrieval.
func (r *Router) routeByHeuristics(ctx context.Context, in Input, contextProduct *entity.Product) (*Result, error) {
	switch {
	case isGreeting(in.Message):
		return &Result{Reply: response.Greeting(in.UserEmail), Intent: intent.IntentGreeting}, nil

	case isNegotiation(in.Message) || (ContainsNumber(in.Message) && contextProduct != nil):
		return r.negotiate(in.Message, nil, contextProduct), nil

	case isAddToCart(in.Message):
		return r.addToCart(ctx, in.UserEmail, contextProduct), nil

	case isStockQuery(in.Message):
		return r.stockQuery(ctx, contextProduct), nil

	case isDealsQuery(in.Message):
		return r.dealsQuery(ctx), nil

	case isCartView(in.Message):
		return r.cartView(ctx, in.UserEmail), nil

	case isHelp(in.Message):
		return &Result{Reply: response.HelpMessage, Intent: intent.IntentInfo}, nil

	default:
		return r.retrieve(ctx, in, contextProduct), nil
	}
}

func (r *Router) negotiate(message string, classifiedPrice *float64, product *entity.Product) *Result {
	if isWalkAway(message) {
		return &Result{Reply: response.NoDealMessage, Intent: intent.IntentNegotiate}
	}

	if product == nil {
		return &Result{Reply: response.WhichProductToNegotiateMessage, Intent: intent.IntentNegotiate}
	}

	thresholds := r.thresholds.Get()
	offer, err := negotiation.CalculateOffer(product.Price, product.Stock, product.MinPrice, thresholds)
	if err != nil {
		r.logger.Error("router", "Offer calculation failed", map[string]interface{}{
			"product_id": product.Id,
			"error":      err.Error(),
		})
		return &Result{Reply: response.RetrievalFallbackMessage, Intent: intent.IntentNegotiate}
	}

	proposed := classifiedPrice
	if proposed == nil {
		proposed = ExtractPrice(message)
	}

	productId := product.Id
	if proposed != nil {
		counter := negotiation.EvaluateCounterOffer(*proposed, offer)
		return &Result{Reply: counter.Message, Intent: intent.IntentNegotiate, ReferencedProductID: &productId}
	}
	return &Result{Reply: offer.Message, Intent: intent.IntentNegotiate, ReferencedProductID: &productId}
}

func (r *Router) addToCart(ctx context.Context, userEmail string, product *entity.Product) *Result {
	if product == nil {
		return &Result{Reply: response.AskWhichProductMessage, Intent: intent.IntentAddToCart}
	}

	if product.Stock < 1 {
		return &Result{Reply: response.StockReply(product.Name, product.Stock), Intent: intent.IntentAddToCart}
	}

	if err := r.cart.Add(ctx, userEmail, product, 1); err != nil {
		r.logger.Error("router", "Cart add failed", map[string]interface{}{
			"product_id": product.Id,
			"error":      err.Error(),
		})
		return &Result{Reply: response.RetrievalFallbackMessage, Intent: intent.IntentAddToCart}
	}

	productId := product.Id
	return &Result{
		Reply:               response.AddedToCart(product.Name),
		Intent:              intent.IntentAddToCart,
		ReferencedProductID: &productId,
	}
}

func (r *Router) stockQuery(ctx context.Context, product *entity.Product) *Result {
	if product != nil {
		productId := product.Id
		return &Result{
			Reply:               response.StockReply(product.Name, product.Stock),
			Intent:              intent.IntentStock,
			ReferencedProductID: &productId,
		}
	}

	products, err := r.catalog.ListProducts(ctx)
	if err != nil {
		r.logger.Error("router", "Catalog listing failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &Result{Reply: response.RetrievalFallbackMessage, Intent: intent.IntentStock}
	}

	var b strings.Builder
	b.WriteString("Current stock:\n")
	for _, p := range products {
		b.WriteString(response.StockReply(p.Name, p.Stock))
		b.WriteString("\n")
	}
	return &Result{Reply: strings.TrimRight(b.String(), "\n"), Intent: intent.IntentStock}
}

func (r *Router) dealsQuery(ctx context.Context) *Result {
	products, err := r.catalog.ListProducts(ctx)
	if err != nil {
		r.logger.Error("router", "Catalog listing failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &Result{Reply: response.RetrievalFallbackMessage, Intent: intent.IntentDeals}
	}

	thresholds := r.thresholds.Get()
	var lines []string
	for _, p := range products {
		offer, err := negotiation.CalculateOffer(p.Price, p.Stock, p.MinPrice, thresholds)
		if err != nil || !offer.CanNegotiate {
			continue
		}
		lines = append(lines, response.DealItem(p.Name, p.Price, offer.Message))
	}

	if len(lines) == 0 {
		return &Result{Reply: response.NoDealsMessage, Intent: intent.IntentDeals}
	}
	return &Result{
		Reply:  "Today's deals:\n" + strings.Join(lines, "\n"),
		Intent: intent.IntentDeals,
	}
}

func (r *Router) cartView(ctx context.Context, userEmail string) *Result {
	items, err := r.cart.Items(ctx, userEmail)
	if err != nil {
		r.logger.Error("router", "Cart read failed", map[string]interface{}{
			"error": err.Error(),
		})
		return &Result{Reply: response.RetrievalFallbackMessage, Intent: intent.IntentCart}
	}

	if len(items) == 0 {
		return &Result{Reply: response.EmptyCartMessage, Intent: intent.IntentCart}
	}

	var b strings.Builder
	b.WriteString("Your cart:\n")
	total := 0.0
	for _, item := range items {
		b.WriteString(response.CartLine(item.ProductName, item.Price, item.Quantity))
		b.WriteString("\n")
		total += item.Price * float64(item.Quantity)
	}
	b.WriteString(fmt.Sprintf("Total: ₹%.2f", total))
	return &Result{Reply: b.String(), Intent: intent.IntentCart}
}

func (r *Router) retrieve(ctx context.Context, in Input, contextProduct *entity.Product) *Result {
	query := in.Message
	if isShortQuery(query) && contextProduct != nil {
		query = contextProduct.Name + " " + query
	}

	result, err := r.retriever.Answer(ctx, query)
	if err != nil {
		r.logger.Error("router", "Retrieval failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return &Result{Reply: response.RetrievalFallbackMessage, Intent: intent.IntentInfo}
	}

	reply := result.Answer
	if result.Matched && r.polisher != nil {
		reply = r.polisher.Polish(ctx, reply, in.Message)
	}

	return &Result{
		Reply:               reply,
		Intent:              intent.IntentInfo,
		ReferencedProductID: result.ProductID,
		Matched:             result.Matched,
	}
}
