package dto

import "time"

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	MinPrice    *float64 `json:"min_price,omitempty" validate:"omitempty,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Image       string   `json:"image,omitempty"`
}

type CreateProductResponse struct {
	Id uint `json:"id"`
}

type UpdateProductRequest struct {
	Id          uint
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	MinPrice    *float64 `json:"min_price,omitempty" validate:"omitempty,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Image       string   `json:"image,omitempty"`
}

type UpdateProductResponse struct {
	Id uint `json:"id"`
}

type ProductResponse struct {
	Id          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Stock       int        `json:"stock"`
	Image       string     `json:"image,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type SearchProductResponse struct {
	Id             uint     `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Stock          int      `json:"stock"`
	RelevanceScore *float64 `json:"relevance_score,omitempty"` // 0.0-1.0, cosine similarity
}
