package entity

import "time"

type ProductEmbedding struct {
	Id             uint
	ProductId      uint
	EmbeddingValue []float32
	Document       string
	Metadata       ProductMetadata
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// ProductMetadata rides alongside every index record so retrieval can build
// an answer without touching the products table.
type ProductMetadata struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
}

// SearchResult pairs an index record with its cosine similarity to a query.
type SearchResult struct {
	Embedding  *ProductEmbedding
	Similarity float64
}
