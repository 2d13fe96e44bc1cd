package contract

import (
	"context"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/specification"
)

type ProductEmbeddingRepository interface {
	// Upsert writes the index record for a product, replacing any previous
	// record for the same product id.
	Upsert(ctx context.Context, embedding *entity.ProductEmbedding) error
	// UpsertBulk writes many records, skipping any that fail instead of
	// aborting the batch. Returns the count actually written and the joined
	// per-item errors, nil when every record landed.
	UpsertBulk(ctx context.Context, embeddings []*entity.ProductEmbedding) (int, error)
	DeleteByProductId(ctx context.Context, productId uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns the closest records by cosine
	// similarity, highest first.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.SearchResult, error)
}
