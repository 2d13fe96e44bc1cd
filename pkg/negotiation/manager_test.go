package negotiation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerReplaceIsAtomic(t *testing.T) {
	m := NewManager(defaultThresholds())

	updated := defaultThresholds()
	updated.HighDiscountRate = 0.20
	updated.MediumDiscountRate = 0.12

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				got := m.Get()
				// A reader sees either the old or the new full set,
				// never a mix.
				if got.HighDiscountRate == 0.20 {
					assert.Equal(t, 0.12, got.MediumDiscountRate)
				} else {
					assert.Equal(t, 0.10, got.MediumDiscountRate)
				}
			}
		}()
	}

	m.Replace(updated)
	wg.Wait()

	assert.Equal(t, updated, m.Get())
}
