package dto

import "time"

type AddCartItemRequest struct {
	ProductId uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"omitempty,gt=0"`
}

type AddCartItemResponse struct {
	Id uint `json:"id"`
}

type CartItemResponse struct {
	Id          uint      `json:"id"`
	ProductId   uint      `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
}

type CartSummaryResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}
