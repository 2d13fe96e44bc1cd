package service

import (
	"context"
	"sync/atomic"
	"time"

	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/internal/repository/unitofwork"
	"smart-negotiator-be/pkg/embedding"
	"smart-negotiator-be/pkg/events"
	pktNats "smart-negotiator-be/pkg/nats"
	"smart-negotiator-be/pkg/negotiation"
	"smart-negotiator-be/pkg/rag/retrieval"

	"github.com/gofiber/fiber/v2"
)

type IAdminService interface {
	GetThresholds() *dto.ThresholdsResponse
	UpdateThresholds(ctx context.Context, req *dto.UpdateThresholdsRequest) (*dto.ThresholdsResponse, error)
	Reindex(ctx context.Context) (*dto.ReindexResponse, error)
}

type adminService struct {
	uowFactory        unitofwork.RepositoryFactory
	thresholds        *negotiation.Manager
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
	logger            logger.ILogger

	reindexing atomic.Bool
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	thresholds *negotiation.Manager,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:        uowFactory,
		thresholds:        thresholds,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
		logger:            log,
	}
}

func (s *adminService) GetThresholds() *dto.ThresholdsResponse {
	t := s.thresholds.Get()
	return toThresholdsResponse(t)
}

func (s *adminService) UpdateThresholds(ctx context.Context, req *dto.UpdateThresholdsRequest) (*dto.ThresholdsResponse, error) {
	if req.LowStockThreshold >= req.HighStockThreshold {
		return nil, fiber.NewError(fiber.StatusBadRequest, "low_stock_threshold must be below high_stock_threshold")
	}

	next := negotiation.Thresholds{
		HighStockThreshold: req.HighStockThreshold,
		LowStockThreshold:  req.LowStockThreshold,
		HighDiscountRate:   req.HighDiscountRate,
		MediumDiscountRate: req.MediumDiscountRate,
		LowDiscountRate:    req.LowDiscountRate,
		DefaultMinPricePct: req.DefaultMinPricePct,
	}
	s.thresholds.Replace(next)

	s.logger.Info("admin", "Negotiation thresholds replaced", map[string]interface{}{
		"high_stock_threshold": next.HighStockThreshold,
		"low_stock_threshold":  next.LowStockThreshold,
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeThresholdsUpdated,
			Data: map[string]interface{}{
				"high_stock_threshold":  next.HighStockThreshold,
				"low_stock_threshold":   next.LowStockThreshold,
				"high_discount_rate":    next.HighDiscountRate,
				"medium_discount_rate":  next.MediumDiscountRate,
				"low_discount_rate":     next.LowDiscountRate,
				"default_min_price_pct": next.DefaultMinPricePct,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("admin", "Failed to publish thresholds event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return toThresholdsResponse(next), nil
}

// Reindex rebuilds the vector index for the whole catalog. Only one rebuild
// runs at a time; a second request while one is in flight gets a 409.
// Per-product failures are logged and skipped so one bad row cannot wedge
// the whole catalog.
func (s *adminService) Reindex(ctx context.Context) (*dto.ReindexResponse, error) {
	if !s.reindexing.CompareAndSwap(false, true) {
		return nil, fiber.NewError(fiber.StatusConflict, "a reindex is already in progress")
	}
	defer s.reindexing.Store(false)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	products, err := uow.ProductRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*entity.ProductEmbedding, 0, len(products))
	failed := 0
	for _, product := range products {
		record, err := s.buildIndexRecord(product)
		if err != nil {
			failed++
			s.logger.Error("admin", "Product reindex failed", map[string]interface{}{
				"product_id": product.Id,
				"error":      err.Error(),
			})
			continue
		}
		records = append(records, record)
	}

	indexed, err := uow.ProductEmbeddingRepository().UpsertBulk(ctx, records)
	if err != nil {
		s.logger.Error("admin", "Reindex bulk write skipped records", map[string]interface{}{
			"skipped": len(records) - indexed,
			"error":   err.Error(),
		})
	}
	failed += len(records) - indexed

	s.logger.Info("admin", "Reindex completed", map[string]interface{}{
		"indexed": indexed,
		"failed":  failed,
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeReindexCompleted,
			Data: map[string]interface{}{
				"indexed": indexed,
				"failed":  failed,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("admin", "Failed to publish reindex event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.ReindexResponse{
		Indexed: indexed,
		Failed:  failed,
		Total:   int64(len(products)),
	}, nil
}

func (s *adminService) buildIndexRecord(product *entity.Product) (*entity.ProductEmbedding, error) {
	document := retrieval.BuildDocument(product.Name, product.Price, product.Description)
	res, err := s.embeddingProvider.Generate(document, retrieval.TaskTypeDocument)
	if err != nil {
		return nil, err
	}

	return &entity.ProductEmbedding{
		ProductId:      product.Id,
		EmbeddingValue: res.Embedding.Values,
		Document:       document,
		Metadata: entity.ProductMetadata{
			Name:        product.Name,
			Price:       product.Price,
			Description: product.Description,
			Stock:       product.Stock,
		},
	}, nil
}

func toThresholdsResponse(t negotiation.Thresholds) *dto.ThresholdsResponse {
	return &dto.ThresholdsResponse{
		HighStockThreshold: t.HighStockThreshold,
		LowStockThreshold:  t.LowStockThreshold,
		HighDiscountRate:   t.HighDiscountRate,
		MediumDiscountRate: t.MediumDiscountRate,
		LowDiscountRate:    t.LowDiscountRate,
		DefaultMinPricePct: t.DefaultMinPricePct,
	}
}
