package service

import (
	"context"
	"fmt"
	"time"

	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/internal/repository/specification"
	"smart-negotiator-be/internal/repository/unitofwork"
	"smart-negotiator-be/pkg/events"
	pktNats "smart-negotiator-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
)

type ICartService interface {
	AddItem(ctx context.Context, userEmail string, req *dto.AddCartItemRequest) (*dto.AddCartItemResponse, error)
	RemoveItem(ctx context.Context, userEmail string, productId uint) error
	Summary(ctx context.Context, userEmail string) (*dto.CartSummaryResponse, error)
	Clear(ctx context.Context, userEmail string) error

	// Cart surface for the dialogue router.
	Items(ctx context.Context, userEmail string) ([]*entity.CartItem, error)
	Add(ctx context.Context, userEmail string, product *entity.Product, quantity int) error
}

type cartService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewCartService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher, log logger.ILogger) ICartService {
	return &cartService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *cartService) AddItem(ctx context.Context, userEmail string, req *dto.AddCartItemRequest) (*dto.AddCartItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.ProductId})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	if product.Stock < quantity {
		return nil, fiber.NewError(fiber.StatusBadRequest, "not enough stock")
	}

	item := entity.CartItem{
		UserEmail:   userEmail,
		ProductId:   product.Id,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
		CreatedAt:   time.Now(),
	}
	if err := uow.CartRepository().AddItem(ctx, &item); err != nil {
		return nil, err
	}
	return &dto.AddCartItemResponse{Id: item.Id}, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userEmail string, productId uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CartRepository().RemoveItem(ctx, userEmail, productId)
}

func (s *cartService) Summary(ctx context.Context, userEmail string) (*dto.CartSummaryResponse, error) {
	items, err := s.Items(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	out := &dto.CartSummaryResponse{Items: make([]dto.CartItemResponse, len(items))}
	for i, item := range items {
		out.Items[i] = dto.CartItemResponse{
			Id:          item.Id,
			ProductId:   item.ProductId,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			CreatedAt:   item.CreatedAt,
		}
		out.Total += item.Price * float64(item.Quantity)
	}
	return out, nil
}

func (s *cartService) Clear(ctx context.Context, userEmail string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CartRepository().ClearByUserEmail(ctx, userEmail)
}

func (s *cartService) Items(ctx context.Context, userEmail string) ([]*entity.CartItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CartRepository().FindAll(ctx,
		specification.ByUserEmail{Email: userEmail},
		specification.OrderBy{Field: "created_at"},
	)
}

// Add is the chat-initiated cart write. It also emits a bus event so
// downstream systems can tell chat adds from form adds.
func (s *cartService) Add(ctx context.Context, userEmail string, product *entity.Product, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}
	if product.Stock < quantity {
		return fmt.Errorf("not enough stock for %s", product.Name)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	item := entity.CartItem{
		UserEmail:   userEmail,
		ProductId:   product.Id,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
		CreatedAt:   time.Now(),
	}
	if err := uow.CartRepository().AddItem(ctx, &item); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeCartItemAddedByChat,
			Data: map[string]interface{}{
				"user_email": userEmail,
				"product_id": product.Id,
				"quantity":   quantity,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("cart", "Failed to publish cart event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return nil
}
