package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/internal/repository/specification"
	"smart-negotiator-be/internal/repository/unitofwork"
	"smart-negotiator-be/pkg/embedding"
	"smart-negotiator-be/pkg/rag/retrieval"

	"github.com/gofiber/fiber/v2"
)

type IProductService interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.CreateProductResponse, error)
	Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.UpdateProductResponse, error)
	Show(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]*dto.ProductResponse, error)
	SemanticSearch(ctx context.Context, query string) ([]*dto.SearchProductResponse, error)

	// Catalog reads for the dialogue router.
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
}

type productService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewProductService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IProductService {
	return &productService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.CreateProductResponse, error) {
	if req.MinPrice != nil && *req.MinPrice > req.Price {
		return nil, fiber.NewError(fiber.StatusBadRequest, "min_price must not exceed price")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	product := entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		MinPrice:    req.MinPrice,
		Stock:       req.Stock,
		Image:       req.Image,
		CreatedAt:   time.Now(),
	}

	if err := uow.ProductRepository().Create(ctx, &product); err != nil {
		return nil, err
	}

	if err := s.publishEmbedMessage(ctx, product.Id); err != nil {
		return nil, err
	}

	return &dto.CreateProductResponse{Id: product.Id}, nil
}

func (s *productService) Update(ctx context.Context, req *dto.UpdateProductRequest) (*dto.UpdateProductResponse, error) {
	if req.MinPrice != nil && *req.MinPrice > req.Price {
		return nil, fiber.NewError(fiber.StatusBadRequest, "min_price must not exceed price")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.MinPrice = req.MinPrice
	product.Stock = req.Stock
	product.Image = req.Image

	if err := uow.ProductRepository().Update(ctx, product); err != nil {
		return nil, err
	}

	if err := s.publishEmbedMessage(ctx, product.Id); err != nil {
		return nil, err
	}

	return &dto.UpdateProductResponse{Id: product.Id}, nil
}

func (s *productService) publishEmbedMessage(ctx context.Context, productId uint) error {
	payload, err := json.Marshal(dto.PublishEmbedProductMessage{ProductId: productId})
	if err != nil {
		return fmt.Errorf("failed to marshal embed message: %w", err)
	}
	return s.publisherService.Publish(ctx, payload)
}

func (s *productService) Show(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return toProductResponse(product), nil
}

func (s *productService) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out, nil
}

// SemanticSearch embeds the query and returns the closest products with
// their similarity scores.
func (s *productService) SemanticSearch(ctx context.Context, query string) ([]*dto.SearchProductResponse, error) {
	res, err := s.embeddingProvider.Generate(query, retrieval.TaskTypeQuery)
	if err != nil {
		s.logger.Error("product", "Search embedding failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "search is temporarily unavailable")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	results, err := uow.ProductEmbeddingRepository().SearchSimilarWithScore(ctx, res.Embedding.Values, retrieval.DefaultTopK)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SearchProductResponse, len(results))
	for i, r := range results {
		score := r.Similarity
		meta := r.Embedding.Metadata
		out[i] = &dto.SearchProductResponse{
			Id:             r.Embedding.ProductId,
			Name:           meta.Name,
			Description:    meta.Description,
			Price:          meta.Price,
			Stock:          meta.Stock,
			RelevanceScore: &score,
		}
	}
	return out, nil
}

func (s *productService) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
}

func (s *productService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ProductRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
