package service

import (
	"context"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/internal/repository/memory"
	"smart-negotiator-be/internal/repository/specification"
	"smart-negotiator-be/internal/repository/unitofwork"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeProductRepo struct {
	products map[uint]*entity.Product
	nextId   uint
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.Id == 0 {
		p.Id = f.nextId
		f.nextId++
	}
	f.products[p.Id] = p
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	f.products[p.Id] = p
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.Product, error) {
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			return f.products[byID.ID], nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(f.products)), nil
}

type fakeCartRepo struct {
	items  []*entity.CartItem
	nextId uint
}

func (f *fakeCartRepo) AddItem(_ context.Context, item *entity.CartItem) error {
	for _, existing := range f.items {
		if existing.UserEmail == item.UserEmail && existing.ProductId == item.ProductId {
			existing.Quantity += item.Quantity
			item.Id = existing.Id
			return nil
		}
	}
	f.nextId++
	item.Id = f.nextId
	f.items = append(f.items, item)
	return nil
}

func (f *fakeCartRepo) RemoveItem(_ context.Context, userEmail string, productId uint) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.UserEmail != userEmail || item.ProductId != productId {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCartRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.CartItem, error) {
	return f.items, nil
}

func (f *fakeCartRepo) ClearByUserEmail(_ context.Context, userEmail string) error {
	return f.RemoveItemAll(userEmail)
}

func (f *fakeCartRepo) RemoveItemAll(userEmail string) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.UserEmail != userEmail {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

type fakeConversationRepo struct {
	messages []*entity.ConversationMessage
}

func (f *fakeConversationRepo) Create(_ context.Context, message *entity.ConversationMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeConversationRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.ConversationMessage, error) {
	return f.messages, nil
}

func (f *fakeConversationRepo) DeleteByUserEmail(_ context.Context, userEmail string) (int64, error) {
	var deleted int64
	kept := f.messages[:0]
	for _, m := range f.messages {
		if m.UserEmail == userEmail {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	f.messages = kept
	return deleted, nil
}

type fakeUow struct {
	products      *fakeProductRepo
	index         contract.ProductEmbeddingRepository
	carts         *fakeCartRepo
	conversations *fakeConversationRepo
}

func (f *fakeUow) Begin(context.Context) error { return nil }
func (f *fakeUow) Commit() error               { return nil }
func (f *fakeUow) Rollback() error             { return nil }

func (f *fakeUow) ProductRepository() contract.ProductRepository { return f.products }
func (f *fakeUow) ProductEmbeddingRepository() contract.ProductEmbeddingRepository {
	return f.index
}
func (f *fakeUow) CartRepository() contract.CartRepository                 { return f.carts }
func (f *fakeUow) ConversationRepository() contract.ConversationRepository { return f.conversations }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func newFakeUowFactory(products ...*entity.Product) *fakeUowFactory {
	repo := &fakeProductRepo{products: make(map[uint]*entity.Product), nextId: 1}
	for _, p := range products {
		repo.products[p.Id] = p
		if p.Id >= repo.nextId {
			repo.nextId = p.Id + 1
		}
	}
	return &fakeUowFactory{uow: &fakeUow{
		products:      repo,
		index:         memory.NewEmbeddingIndex(),
		carts:         &fakeCartRepo{},
		conversations: &fakeConversationRepo{},
	}}
}
