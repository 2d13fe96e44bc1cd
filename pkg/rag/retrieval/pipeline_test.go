package retrieval

import (
	"context"
	"errors"
	"testing"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/memory"
	"smart-negotiator-be/pkg/embedding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (s *stubEmbedder) Generate(text string, _ string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	vec, ok := s.vectors[text]
	if !ok {
		vec = []float32{0, 0, 1}
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: vec},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func seedIndex(t *testing.T, index *memory.EmbeddingIndex) {
	t.Helper()
	ctx := context.Background()

	records := []*entity.ProductEmbedding{
		{
			ProductId:      1,
			EmbeddingValue: []float32{1, 0, 0},
			Document:       BuildDocument("Laptop", 55000, "Fast ultrabook"),
			Metadata:       entity.ProductMetadata{Name: "Laptop", Price: 55000, Description: "Fast ultrabook", Stock: 20},
		},
		{
			ProductId:      2,
			EmbeddingValue: []float32{0, 1, 0},
			Document:       BuildDocument("Headphones", 2500, "Noise cancelling"),
			Metadata:       entity.ProductMetadata{Name: "Headphones", Price: 2500, Description: "Noise cancelling", Stock: 4},
		},
	}
	for _, r := range records {
		require.NoError(t, index.Upsert(ctx, r))
	}
}

func TestPipelineAnswersBestMatch(t *testing.T) {
	index := memory.NewEmbeddingIndex()
	seedIndex(t, index)

	provider := &stubEmbedder{vectors: map[string][]float32{
		"do you have a laptop": {0.9, 0.1, 0},
	}}
	pipeline := NewPipeline(provider, index, nopLogger{}, 3)

	result, err := pipeline.Answer(context.Background(), "do you have a laptop")
	require.NoError(t, err)

	assert.True(t, result.Matched)
	require.NotNil(t, result.ProductID)
	assert.Equal(t, uint(1), *result.ProductID)
	assert.Equal(t, "Laptop price ₹55000 — Fast ultrabook", result.Answer)
}

func TestPipelineEmptyIndexIsNotAnError(t *testing.T) {
	index := memory.NewEmbeddingIndex()
	provider := &stubEmbedder{}
	pipeline := NewPipeline(provider, index, nopLogger{}, 3)

	result, err := pipeline.Answer(context.Background(), "anything")
	require.NoError(t, err)

	assert.False(t, result.Matched)
	assert.Nil(t, result.ProductID)
	assert.Equal(t, NoMatchAnswer, result.Answer)
}

func TestPipelineEmbeddingFailure(t *testing.T) {
	index := memory.NewEmbeddingIndex()
	seedIndex(t, index)

	provider := &stubEmbedder{err: embedding.ErrUnavailable}
	pipeline := NewPipeline(provider, index, nopLogger{}, 3)

	_, err := pipeline.Answer(context.Background(), "laptop")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetrievalFailed))
}

func TestPipelineClampsTopK(t *testing.T) {
	index := memory.NewEmbeddingIndex()
	seedIndex(t, index)

	pipeline := NewPipeline(&stubEmbedder{}, index, nopLogger{}, 0)
	assert.Equal(t, DefaultTopK, pipeline.topK)
}

func TestUpsertReplacesExistingRecord(t *testing.T) {
	ctx := context.Background()
	index := memory.NewEmbeddingIndex()
	seedIndex(t, index)

	// Re-index product 1 with a new price; the record count must not grow
	// and queries must see the new metadata.
	require.NoError(t, index.Upsert(ctx, &entity.ProductEmbedding{
		ProductId:      1,
		EmbeddingValue: []float32{1, 0, 0},
		Document:       BuildDocument("Laptop", 52000, "Fast ultrabook"),
		Metadata:       entity.ProductMetadata{Name: "Laptop", Price: 52000, Description: "Fast ultrabook", Stock: 18},
	}))

	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	provider := &stubEmbedder{vectors: map[string][]float32{"laptop": {1, 0, 0}}}
	pipeline := NewPipeline(provider, index, nopLogger{}, 3)

	result, err := pipeline.Answer(ctx, "laptop")
	require.NoError(t, err)
	assert.Equal(t, "Laptop price ₹52000 — Fast ultrabook", result.Answer)
}

func TestBuildDocumentShape(t *testing.T) {
	doc := BuildDocument("Mouse", 499.5, "Wireless")
	assert.Equal(t, "Mouse Price 499.5 Description Wireless", doc)
}
