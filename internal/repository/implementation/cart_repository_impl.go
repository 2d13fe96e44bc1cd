package implementation

import (
	"context"
	"errors"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/mapper"
	"smart-negotiator-be/internal/model"
	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CartRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CartItemMapper
}

func NewCartRepository(db *gorm.DB) contract.CartRepository {
	return &CartRepositoryImpl{
		db:     db,
		mapper: mapper.NewCartItemMapper(),
	}
}

func (r *CartRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CartRepositoryImpl) AddItem(ctx context.Context, item *entity.CartItem) error {
	var existing model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND product_id = ?", item.UserEmail, item.ProductId).
		First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err == nil {
		existing.Quantity += item.Quantity
		existing.Price = item.Price
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return err
		}
		*item = *r.mapper.ToEntity(&existing)
		return nil
	}

	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *CartRepositoryImpl) RemoveItem(ctx context.Context, userEmail string, productId uint) error {
	return r.db.WithContext(ctx).
		Where("user_email = ? AND product_id = ?", userEmail, productId).
		Delete(&model.CartItem{}).Error
}

func (r *CartRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CartItem, error) {
	var models []*model.CartItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CartRepositoryImpl) ClearByUserEmail(ctx context.Context, userEmail string) error {
	return r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Delete(&model.CartItem{}).Error
}
