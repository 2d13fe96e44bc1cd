package contract

import (
	"context"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/specification"
)

type CartRepository interface {
	// AddItem inserts a cart line or bumps the quantity when the user
	// already has the product in their cart.
	AddItem(ctx context.Context, item *entity.CartItem) error
	RemoveItem(ctx context.Context, userEmail string, productId uint) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CartItem, error)
	ClearByUserEmail(ctx context.Context, userEmail string) error
}
