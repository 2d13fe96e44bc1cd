package service

import (
	"context"
	"encoding/json"

	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/internal/repository/specification"
	"smart-negotiator-be/internal/repository/unitofwork"
	"smart-negotiator-be/pkg/embedding"
	"smart-negotiator-be/pkg/rag/retrieval"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService rebuilds one product's index record per message. It is the
// async half of catalog writes: the HTTP handler persists the product and
// publishes; this side embeds and upserts.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedProductMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal embed message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads would retry forever
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: payload.ProductId})
	if err != nil {
		cs.logger.Error("consumer", "Failed to load product", map[string]interface{}{
			"product_id": payload.ProductId,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}
	if product == nil {
		// Deleted between publish and consume; drop the stale index record too.
		if err := uow.ProductEmbeddingRepository().DeleteByProductId(ctx, payload.ProductId); err != nil {
			cs.logger.Warn("consumer", "Failed to drop index record for missing product", map[string]interface{}{
				"product_id": payload.ProductId,
				"error":      err.Error(),
			})
		}
		msg.Ack()
		return
	}

	document := retrieval.BuildDocument(product.Name, product.Price, product.Description)

	res, err := cs.embeddingProvider.Generate(document, retrieval.TaskTypeDocument)
	if err != nil {
		cs.logger.Error("consumer", "Embedding generation failed", map[string]interface{}{
			"product_id": product.Id,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	record := &entity.ProductEmbedding{
		ProductId:      product.Id,
		EmbeddingValue: res.Embedding.Values,
		Document:       document,
		Metadata: entity.ProductMetadata{
			Name:        product.Name,
			Price:       product.Price,
			Description: product.Description,
			Stock:       product.Stock,
		},
	}

	if err := uow.ProductEmbeddingRepository().Upsert(ctx, record); err != nil {
		cs.logger.Error("consumer", "Index upsert failed", map[string]interface{}{
			"product_id": product.Id,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("consumer", "Product indexed", map[string]interface{}{
		"product_id": product.Id,
	})
	msg.Ack()
}
