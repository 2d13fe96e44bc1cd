package mapper

import (
	"time"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/model"

	"gorm.io/gorm"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Product{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		MinPrice:    p.MinPrice,
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   p.DeletedAt.Valid,
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Product{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		MinPrice:    p.MinPrice,
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProductMapper) ToModels(products []*entity.Product) []*model.Product {
	models := make([]*model.Product, len(products))
	for i, p := range products {
		models[i] = m.ToModel(p)
	}
	return models
}
