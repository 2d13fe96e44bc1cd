package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/internal/repository/specification"
)

// EmbeddingIndex is a brute-force in-memory vector index keyed by product id.
// It mirrors the pgvector-backed repository closely enough to stand in for it
// in tests and single-node setups without Postgres.
type EmbeddingIndex struct {
	mu      sync.RWMutex
	records map[uint]*entity.ProductEmbedding
	nextId  uint
}

func NewEmbeddingIndex() *EmbeddingIndex {
	return &EmbeddingIndex{
		records: make(map[uint]*entity.ProductEmbedding),
		nextId:  1,
	}
}

var _ contract.ProductEmbeddingRepository = (*EmbeddingIndex)(nil)

func (x *EmbeddingIndex) Upsert(_ context.Context, embedding *entity.ProductEmbedding) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if existing, ok := x.records[embedding.ProductId]; ok {
		embedding.Id = existing.Id
	} else {
		embedding.Id = x.nextId
		x.nextId++
	}

	cp := *embedding
	cp.EmbeddingValue = append([]float32(nil), embedding.EmbeddingValue...)
	x.records[embedding.ProductId] = &cp
	return nil
}

// UpsertBulk skips failing records and keeps going, matching the SQL-backed
// repository's batch behavior.
func (x *EmbeddingIndex) UpsertBulk(ctx context.Context, embeddings []*entity.ProductEmbedding) (int, error) {
	written := 0
	var errs []error
	for i, e := range embeddings {
		if e == nil {
			errs = append(errs, fmt.Errorf("embedding %d: nil record", i))
			continue
		}
		if err := x.Upsert(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("product %d: %w", e.ProductId, err))
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}

func (x *EmbeddingIndex) DeleteByProductId(_ context.Context, productId uint) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	delete(x.records, productId)
	return nil
}

// FindOne only understands the ByProductID specification; the SQL-backed
// repository covers the general case.
func (x *EmbeddingIndex) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ProductEmbedding, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	for _, spec := range specs {
		if byProduct, ok := spec.(specification.ByProductID); ok {
			if rec, found := x.records[byProduct.ProductID]; found {
				cp := *rec
				return &cp, nil
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (x *EmbeddingIndex) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return int64(len(x.records)), nil
}

func (x *EmbeddingIndex) SearchSimilarWithScore(_ context.Context, embedding []float32, limit int) ([]*entity.SearchResult, error) {
	if limit <= 0 {
		limit = 3
	}

	x.mu.RLock()
	defer x.mu.RUnlock()

	results := make([]*entity.SearchResult, 0, len(x.records))
	for _, rec := range x.records {
		cp := *rec
		results = append(results, &entity.SearchResult{
			Embedding:  &cp,
			Similarity: cosineSimilarity(embedding, rec.EmbeddingValue),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
