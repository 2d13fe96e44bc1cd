package memory

import (
	"context"
	"testing"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingIndexUpsertBulkAllWritten(t *testing.T) {
	idx := NewEmbeddingIndex()

	written, err := idx.UpsertBulk(context.Background(), []*entity.ProductEmbedding{
		{ProductId: 1, EmbeddingValue: []float32{1, 0}},
		{ProductId: 2, EmbeddingValue: []float32{0, 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, written)

	count, err := idx.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestEmbeddingIndexUpsertBulkSkipsBadRecords(t *testing.T) {
	idx := NewEmbeddingIndex()

	written, err := idx.UpsertBulk(context.Background(), []*entity.ProductEmbedding{
		{ProductId: 1, EmbeddingValue: []float32{1, 0}},
		nil,
		{ProductId: 2, EmbeddingValue: []float32{0, 1}},
	})

	// The bad record is reported but the rest of the batch still lands.
	require.Error(t, err)
	assert.Equal(t, 2, written)

	count, err := idx.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	rec, err := idx.FindOne(context.Background(), specification.ByProductID{ProductID: 2})
	require.NoError(t, err)
	require.NotNil(t, rec)
}
