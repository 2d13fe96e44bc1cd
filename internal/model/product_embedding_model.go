package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// ProductEmbedding is the vector index record for one product. A product has
// either a complete record or none; rebuilds overwrite by ProductId.
type ProductEmbedding struct {
	Id             uint            `gorm:"primaryKey;autoIncrement"`
	ProductId      uint            `gorm:"not null;uniqueIndex"`
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"` // Gemini text-embedding-004 uses 768 dimensions
	Document       string          `gorm:"type:text"`
	// Metadata is a denormalized copy of name/price/description/stock so
	// retrieval never needs a join against products.
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (ProductEmbedding) TableName() string {
	return "product_embeddings"
}
