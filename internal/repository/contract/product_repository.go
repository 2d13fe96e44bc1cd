package contract

import (
	"context"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
