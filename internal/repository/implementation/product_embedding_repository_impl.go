package implementation

import (
	"context"
	"errors"
	"fmt"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/mapper"
	"smart-negotiator-be/internal/model"
	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductEmbeddingMapper
}

func NewProductEmbeddingRepository(db *gorm.DB) contract.ProductEmbeddingRepository {
	return &ProductEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductEmbeddingMapper(),
	}
}

func (r *ProductEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Upsert keys on product_id so re-indexing the same product overwrites the
// old vector instead of stacking duplicates.
func (r *ProductEmbeddingRepositoryImpl) Upsert(ctx context.Context, embedding *entity.ProductEmbedding) error {
	m := r.mapper.ToModel(embedding)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"embedding_value", "document", "metadata", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

// UpsertBulk writes each record independently so one bad row cannot sink the
// rest of the batch.
func (r *ProductEmbeddingRepositoryImpl) UpsertBulk(ctx context.Context, embeddings []*entity.ProductEmbedding) (int, error) {
	written := 0
	var errs []error
	for i, e := range embeddings {
		if e == nil {
			errs = append(errs, fmt.Errorf("embedding %d: nil record", i))
			continue
		}
		if err := r.Upsert(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("product %d: %w", e.ProductId, err))
			continue
		}
		written++
	}
	return written, errors.Join(errs...)
}

func (r *ProductEmbeddingRepositoryImpl) DeleteByProductId(ctx context.Context, productId uint) error {
	return r.db.WithContext(ctx).Where("product_id = ?", productId).Delete(&model.ProductEmbedding{}).Error
}

func (r *ProductEmbeddingRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductEmbedding, error) {
	var m model.ProductEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.ProductEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore ranks by pgvector cosine distance. Cosine distance
// is 1 - cosine_similarity, so 1 - (embedding_value <=> query) recovers the
// similarity the callers expect.
func (r *ProductEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.SearchResult, error) {
	if limit <= 0 {
		limit = 3
	}

	// A zero vector has no direction; pgvector's <=> yields NaN against it,
	// so by convention it matches nothing.
	if isZeroVector(embedding) {
		return []*entity.SearchResult{}, nil
	}

	type result struct {
		model.ProductEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("product_embeddings").
		Select("product_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN products ON products.id = product_embeddings.product_id").
		Where("products.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	searchResults := make([]*entity.SearchResult, len(results))
	for i, res := range results {
		searchResults[i] = &entity.SearchResult{
			Embedding:  r.mapper.ToEntity(&res.ProductEmbedding),
			Similarity: res.Similarity,
		}
	}
	return searchResults, nil
}

func isZeroVector(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
