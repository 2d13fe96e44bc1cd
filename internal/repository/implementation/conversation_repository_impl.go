package implementation

import (
	"context"

	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/mapper"
	"smart-negotiator-be/internal/model"
	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, message *entity.ConversationMessage) error {
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error) {
	var models []*model.ConversationMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ConversationRepositoryImpl) DeleteByUserEmail(ctx context.Context, userEmail string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_email = ?", userEmail).
		Delete(&model.ConversationMessage{})
	return res.RowsAffected, res.Error
}
