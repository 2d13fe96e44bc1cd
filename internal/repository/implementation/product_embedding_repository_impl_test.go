package implementation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSimilarWithScoreZeroVectorMatchesNothing(t *testing.T) {
	// The guard fires before any SQL runs, so no live connection is needed.
	repo := NewProductEmbeddingRepository(nil)

	results, err := repo.SearchSimilarWithScore(context.Background(), []float32{0, 0, 0}, 3)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = repo.SearchSimilarWithScore(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestIsZeroVector(t *testing.T) {
	assert.True(t, isZeroVector(nil))
	assert.True(t, isZeroVector([]float32{}))
	assert.True(t, isZeroVector([]float32{0, 0}))
	assert.False(t, isZeroVector([]float32{0, 0.01}))
}
