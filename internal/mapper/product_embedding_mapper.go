package mapper

import (
	"encoding/json"
	"time"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type ProductEmbeddingMapper struct{}

func NewProductEmbeddingMapper() *ProductEmbeddingMapper {
	return &ProductEmbeddingMapper{}
}

func (m *ProductEmbeddingMapper) ToEntity(e *model.ProductEmbedding) *entity.ProductEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	var meta entity.ProductMetadata
	if len(e.Metadata) > 0 {
		// A record with unreadable metadata still maps; retrieval treats the
		// zero metadata as an empty description.
		_ = json.Unmarshal(e.Metadata, &meta)
	}

	return &entity.ProductEmbedding{
		Id:             e.Id,
		ProductId:      e.ProductId,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		Document:       e.Document,
		Metadata:       meta,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ProductEmbeddingMapper) ToModel(e *entity.ProductEmbedding) *model.ProductEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	metaBytes, _ := json.Marshal(e.Metadata)

	return &model.ProductEmbedding{
		Id:             e.Id,
		ProductId:      e.ProductId,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		Document:       e.Document,
		Metadata:       datatypes.JSON(metaBytes),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *ProductEmbeddingMapper) ToEntities(embeddings []*model.ProductEmbedding) []*entity.ProductEmbedding {
	entities := make([]*entity.ProductEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *ProductEmbeddingMapper) ToModels(embeddings []*entity.ProductEmbedding) []*model.ProductEmbedding {
	models := make([]*model.ProductEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}
