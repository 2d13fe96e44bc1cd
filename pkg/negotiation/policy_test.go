package negotiation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultThresholds() Thresholds {
	return Thresholds{
		HighStockThreshold: 15,
		LowStockThreshold:  5,
		HighDiscountRate:   0.15,
		MediumDiscountRate: 0.10,
		LowDiscountRate:    0.05,
		DefaultMinPricePct: 0.80,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestCalculateOfferTiers(t *testing.T) {
	tests := []struct {
		name            string
		price           float64
		stock           int
		floor           *float64
		wantOffer       float64
		wantDiscountPct float64
		wantNegotiable  bool
	}{
		{
			name:            "high stock gets high tier discount",
			price:           1000,
			stock:           20,
			wantOffer:       850,
			wantDiscountPct: 15,
			wantNegotiable:  true,
		},
		{
			name:            "medium stock gets medium tier discount",
			price:           1000,
			stock:           10,
			wantOffer:       900,
			wantDiscountPct: 10,
			wantNegotiable:  true,
		},
		{
			name:            "low stock above floor keeps nominal rate",
			price:           1000,
			stock:           3,
			floor:           floatPtr(900),
			wantOffer:       950,
			wantDiscountPct: 5,
			wantNegotiable:  true,
		},
		{
			name:            "floor clamps offer and reported percent",
			price:           1000,
			stock:           3,
			floor:           floatPtr(960),
			wantOffer:       960,
			wantDiscountPct: 4,
			wantNegotiable:  true,
		},
		{
			name:            "boundary stock equals high threshold falls to medium tier",
			price:           1000,
			stock:           15,
			wantOffer:       900,
			wantDiscountPct: 10,
			wantNegotiable:  true,
		},
		{
			name:            "boundary stock equals low threshold falls to low tier",
			price:           1000,
			stock:           5,
			wantOffer:       950,
			wantDiscountPct: 5,
			wantNegotiable:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer, err := CalculateOffer(tt.price, tt.stock, tt.floor, defaultThresholds())
			require.NoError(t, err)

			assert.Equal(t, tt.price, offer.OriginalPrice)
			assert.Equal(t, tt.wantOffer, offer.OfferPrice)
			assert.Equal(t, tt.wantDiscountPct, offer.DiscountPercent)
			assert.Equal(t, tt.wantNegotiable, offer.CanNegotiate)
			assert.NotEmpty(t, offer.Message)
		})
	}
}

func TestCalculateOfferZeroLowRateBlocksNegotiation(t *testing.T) {
	thresholds := defaultThresholds()
	thresholds.LowDiscountRate = 0

	for _, stock := range []int{0, -1, 3, 5} {
		offer, err := CalculateOffer(500, stock, nil, thresholds)
		require.NoError(t, err)
		assert.False(t, offer.CanNegotiate, "stock=%d", stock)
		assert.Equal(t, 500.0, offer.OfferPrice, "stock=%d", stock)
	}
}

// The clamp invariant: offer_price >= floor for every combination we can
// throw at it.
func TestCalculateOfferNeverViolatesFloor(t *testing.T) {
	prices := []float64{0.5, 1, 9.99, 100, 999.99, 1000, 123456.78}
	stocks := []int{0, 1, 4, 5, 6, 14, 15, 16, 50, 1000}
	rates := []float64{0, 0.01, 0.05, 0.10, 0.15, 0.5, 0.99}
	floorPcts := []float64{0.5, 0.8, 0.9, 0.95, 0.99, 1.0}

	for _, price := range prices {
		for _, stock := range stocks {
			for _, rate := range rates {
				for _, pct := range floorPcts {
					thresholds := defaultThresholds()
					thresholds.HighDiscountRate = rate
					thresholds.MediumDiscountRate = rate
					thresholds.LowDiscountRate = rate

					floor := price * pct
					offer, err := CalculateOffer(price, stock, &floor, thresholds)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, offer.OfferPrice, floor,
						"price=%v stock=%d rate=%v floorPct=%v", price, stock, rate, pct)

					// Reported percent must agree with the actual price
					wantPct := round2((price - offer.OfferPrice) / price * 100)
					assert.Equal(t, wantPct, offer.DiscountPercent)
				}
			}
		}
	}
}

func TestCalculateOfferDefaultFloorWhenAbsent(t *testing.T) {
	thresholds := defaultThresholds()
	thresholds.HighDiscountRate = 0.5 // nominal offer well below the default floor

	offer, err := CalculateOffer(1000, 100, nil, thresholds)
	require.NoError(t, err)

	assert.Equal(t, 800.0, offer.OfferPrice) // clamped to price * 0.80
	assert.Equal(t, 20.0, offer.DiscountPercent)
}

func TestEvaluateCounterOffer(t *testing.T) {
	offer, err := CalculateOffer(1000, 3, floatPtr(900), defaultThresholds())
	require.NoError(t, err)
	require.Equal(t, 950.0, offer.OfferPrice)

	t.Run("proposal at or above offer is a deal", func(t *testing.T) {
		result := EvaluateCounterOffer(960, offer)
		assert.True(t, result.Deal)
		assert.Contains(t, result.Message, "Deal")

		result = EvaluateCounterOffer(950, offer)
		assert.True(t, result.Deal)
	})

	t.Run("proposal below offer gets countered at offer price", func(t *testing.T) {
		result := EvaluateCounterOffer(900, offer)
		assert.False(t, result.Deal)
		assert.Contains(t, result.Message, "950")
		// internals stay hidden
		assert.NotContains(t, result.Message, "floor")
		assert.NotContains(t, result.Message, "stock")
	})
}
