package embedding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVector(t *testing.T) {
	t.Run("unit length output", func(t *testing.T) {
		got := normalizeVector([]float32{3, 4})

		var magnitude float64
		for _, v := range got {
			magnitude += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
	})

	t.Run("zero vector passes through", func(t *testing.T) {
		got := normalizeVector([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, got)
	})
}
