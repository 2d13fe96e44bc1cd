package mapper

import (
	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/model"
)

type ConversationMapper struct{}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{}
}

func (m *ConversationMapper) ToEntity(c *model.ConversationMessage) *entity.ConversationMessage {
	if c == nil {
		return nil
	}

	return &entity.ConversationMessage{
		Id:        c.Id,
		UserEmail: c.UserEmail,
		SessionId: c.SessionId,
		ProductId: c.ProductId,
		Role:      c.Role,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ToModel(c *entity.ConversationMessage) *model.ConversationMessage {
	if c == nil {
		return nil
	}

	return &model.ConversationMessage{
		Id:        c.Id,
		UserEmail: c.UserEmail,
		SessionId: c.SessionId,
		ProductId: c.ProductId,
		Role:      c.Role,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *ConversationMapper) ToEntities(messages []*model.ConversationMessage) []*entity.ConversationMessage {
	entities := make([]*entity.ConversationMessage, len(messages))
	for i, c := range messages {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ConversationMapper) ToModels(messages []*entity.ConversationMessage) []*model.ConversationMessage {
	models := make([]*model.ConversationMessage, len(messages))
	for i, c := range messages {
		models[i] = m.ToModel(c)
	}
	return models
}
