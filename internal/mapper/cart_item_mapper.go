package mapper

import (
	"time"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/model"
)

type CartItemMapper struct{}

func NewCartItemMapper() *CartItemMapper {
	return &CartItemMapper{}
}

func (m *CartItemMapper) ToEntity(c *model.CartItem) *entity.CartItem {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.CartItem{
		Id:          c.Id,
		UserEmail:   c.UserEmail,
		ProductId:   c.ProductId,
		ProductName: c.ProductName,
		Price:       c.Price,
		Quantity:    c.Quantity,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CartItemMapper) ToModel(c *entity.CartItem) *model.CartItem {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.CartItem{
		Id:          c.Id,
		UserEmail:   c.UserEmail,
		ProductId:   c.ProductId,
		ProductName: c.ProductName,
		Price:       c.Price,
		Quantity:    c.Quantity,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *CartItemMapper) ToEntities(items []*model.CartItem) []*entity.CartItem {
	entities := make([]*entity.CartItem, len(items))
	for i, c := range items {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CartItemMapper) ToModels(items []*entity.CartItem) []*model.CartItem {
	models := make([]*model.CartItem, len(items))
	for i, c := range items {
		models[i] = m.ToModel(c)
	}
	return models
}
