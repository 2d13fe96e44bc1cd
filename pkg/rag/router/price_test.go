package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPriceTakesMaximum(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    float64
	}{
		{"single number", "i'll pay 900", 900},
		{"multiple numbers", "2 units at 850 each", 850},
		{"decimal", "can you do 949.50", 949.50},
		{"quantity smaller than price", "give me 3 for 2400", 2400},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractPrice(tc.message)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestExtractPriceNoNumbers(t *testing.T) {
	assert.Nil(t, ExtractPrice("no numbers here"))
	assert.Nil(t, ExtractPrice(""))
}

func TestContainsNumber(t *testing.T) {
	assert.True(t, ContainsNumber("take 950"))
	assert.False(t, ContainsNumber("take it"))
}
