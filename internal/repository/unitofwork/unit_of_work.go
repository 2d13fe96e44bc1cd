package unitofwork

import (
	"context"

	"smart-negotiator-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	ProductEmbeddingRepository() contract.ProductEmbeddingRepository
	CartRepository() contract.CartRepository
	ConversationRepository() contract.ConversationRepository
}
