package negotiation

import (
	"errors"
	"fmt"
	"math"
)

// ErrPolicyViolation is an internal assertion: an offer computed below the
// floor price. The clamp in CalculateOffer makes this unreachable; it exists
// so the invariant is checked, not assumed.
var ErrPolicyViolation = errors.New("offer price below floor price")

// Thresholds is the full named parameter set for the offer calculator. It is
// always replaced as a whole (see Manager), never mutated field by field.
type Thresholds struct {
	HighStockThreshold int     `json:"high_stock_threshold" validate:"gt=0"`
	LowStockThreshold  int     `json:"low_stock_threshold" validate:"gte=0"`
	HighDiscountRate   float64 `json:"high_discount_rate" validate:"gte=0,lt=1"`
	MediumDiscountRate float64 `json:"medium_discount_rate" validate:"gte=0,lt=1"`
	LowDiscountRate    float64 `json:"low_discount_rate" validate:"gte=0,lt=1"`
	DefaultMinPricePct float64 `json:"default_min_price_pct" validate:"gt=0,lte=1"`
}

// Offer is ephemeral: recomputed on every negotiation turn from current
// product state and the current threshold set, never persisted.
type Offer struct {
	OriginalPrice   float64 `json:"original_price"`
	OfferPrice      float64 `json:"offer_price"`
	DiscountPercent float64 `json:"discount_percent"`
	Message         string  `json:"message"`
	CanNegotiate    bool    `json:"can_negotiate"`
}

// CounterResult is the outcome of evaluating a user-proposed price.
type CounterResult struct {
	Deal    bool
	Message string
}

// CalculateOffer maps (price, stock, floor) to an offer under the given
// thresholds. floorPrice may be nil; the floor then defaults to
// price * DefaultMinPricePct. The offer never goes below the floor
// regardless of the stock-tier discount.
func CalculateOffer(price float64, stock int, floorPrice *float64, t Thresholds) (Offer, error) {
	var discount float64
	canNegotiate := true

	switch {
	case stock > t.HighStockThreshold:
		discount = t.HighDiscountRate
	case stock > t.LowStockThreshold:
		discount = t.MediumDiscountRate
	default:
		discount = t.LowDiscountRate
		if t.LowDiscountRate == 0 {
			canNegotiate = false
		}
	}

	floor := price * t.DefaultMinPricePct
	if floorPrice != nil {
		floor = *floorPrice
	}

	offerPrice := round2(price * (1 - discount))
	if offerPrice < floor {
		offerPrice = floor
	}

	if offerPrice < floor {
		return Offer{}, fmt.Errorf("%w: offer %.2f, floor %.2f", ErrPolicyViolation, offerPrice, floor)
	}

	// Recomputed from the actual offer so floor clamping shows up in the
	// reported percentage.
	discountPercent := round2((price - offerPrice) / price * 100)

	offer := Offer{
		OriginalPrice:   price,
		OfferPrice:      offerPrice,
		DiscountPercent: discountPercent,
		CanNegotiate:    canNegotiate,
	}
	offer.Message = offerMessage(offer, stock, t)
	return offer, nil
}

// EvaluateCounterOffer accepts when the proposed price meets the computed
// offer; otherwise it counters at the offer price. Stock tier and floor are
// never revealed.
func EvaluateCounterOffer(proposed float64, offer Offer) CounterResult {
	if proposed >= offer.OfferPrice {
		return CounterResult{
			Deal:    true,
			Message: fmt.Sprintf("Deal! ₹%.2f it is. Adding it at that price is on me — just say the word. 🤝", proposed),
		}
	}
	return CounterResult{
		Deal:    false,
		Message: fmt.Sprintf("I can't go that low. My best offer is ₹%.2f — that's %.0f%% off the MRP of ₹%.2f.", offer.OfferPrice, offer.DiscountPercent, offer.OriginalPrice),
	}
}

func offerMessage(o Offer, stock int, t Thresholds) string {
	switch {
	case stock > t.HighStockThreshold:
		return fmt.Sprintf("Great stock available! I can offer ₹%.2f (%.0f%% off the MRP of ₹%.2f)", o.OfferPrice, o.DiscountPercent, o.OriginalPrice)
	case stock > t.LowStockThreshold:
		return fmt.Sprintf("Limited stock available. I can offer ₹%.2f (%.0f%% off the MRP of ₹%.2f)", o.OfferPrice, o.DiscountPercent, o.OriginalPrice)
	case !o.CanNegotiate:
		return fmt.Sprintf("Very limited stock. Best price: ₹%.2f (MRP)", o.OriginalPrice)
	default:
		return fmt.Sprintf("Stock is running low. I can still do ₹%.2f (%.0f%% off ₹%.2f)", o.OfferPrice, o.DiscountPercent, o.OriginalPrice)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
