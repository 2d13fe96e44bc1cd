package service

import (
	"context"
	"testing"

	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemRejectsInsufficientStock(t *testing.T) {
	factory := newFakeUowFactory(&entity.Product{Id: 1, Name: "Laptop", Price: 1000, Stock: 2})
	svc := NewCartService(factory, nil, nopLogger{})

	_, err := svc.AddItem(context.Background(), "asha@example.com", &dto.AddCartItemRequest{
		ProductId: 1,
		Quantity:  5,
	})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Empty(t, factory.uow.carts.items)

	// Within stock it goes through.
	res, err := svc.AddItem(context.Background(), "asha@example.com", &dto.AddCartItemRequest{
		ProductId: 1,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Len(t, factory.uow.carts.items, 1)
}

func TestAddItemRejectsOutOfStockProduct(t *testing.T) {
	factory := newFakeUowFactory(&entity.Product{Id: 3, Name: "Webcam", Price: 1800, Stock: 0})
	svc := NewCartService(factory, nil, nopLogger{})

	_, err := svc.AddItem(context.Background(), "asha@example.com", &dto.AddCartItemRequest{
		ProductId: 3,
	})
	require.Error(t, err)

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
	assert.Empty(t, factory.uow.carts.items)
}

func TestChatAddRejectsOutOfStockProduct(t *testing.T) {
	factory := newFakeUowFactory()
	svc := NewCartService(factory, nil, nopLogger{})

	err := svc.Add(context.Background(), "asha@example.com", &entity.Product{
		Id:    3,
		Name:  "Webcam",
		Price: 1800,
		Stock: 0,
	}, 1)
	require.Error(t, err)
	assert.Empty(t, factory.uow.carts.items)
}
