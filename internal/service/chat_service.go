package service

import (
	"context"
	"time"

	"smart-negotiator-be/internal/constant"
	"smart-negotiator-be/internal/dto"
	"smart-negotiator-be/internal/entity"
	"smart-negotiator-be/internal/pkg/logger"
	"smart-negotiator-be/internal/repository/contract"
	"smart-negotiator-be/internal/repository/specification"
	"smart-negotiator-be/internal/repository/unitofwork"
	"smart-negotiator-be/pkg/events"
	pktNats "smart-negotiator-be/pkg/nats"
	"smart-negotiator-be/pkg/rag/router"
	"smart-negotiator-be/pkg/store"

	"github.com/google/uuid"
)

// providerTimeout bounds one routed turn end to end, including any LLM and
// embedding calls underneath. Timeouts surface as the fallback reply, never
// as a hung request.
const providerTimeout = 30 * time.Second

type IChatService interface {
	SendMessage(ctx context.Context, userEmail string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	History(ctx context.Context, userEmail string, productId *uint) ([]*dto.ChatHistoryItem, error)
	ClearHistory(ctx context.Context, userEmail string, sessionId string) (*dto.ClearHistoryResponse, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	router         *router.Router
	sessionRepo    contract.SessionContextRepository
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	dialogueRouter *router.Router,
	sessionRepo contract.SessionContextRepository,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		router:         dialogueRouter,
		sessionRepo:    sessionRepo,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *chatService) SendMessage(ctx context.Context, userEmail string, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = uuid.New().String()
	}

	dialogueCtx, err := s.sessionRepo.Get(ctx, sessionId)
	if err != nil {
		s.logger.Warn("chat", "Session context read failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}
	if dialogueCtx == nil {
		dialogueCtx = &store.DialogueContext{SessionID: sessionId, UserEmail: userEmail}
	}

	ctxDirty := false
	if req.ProductId != nil {
		dialogueCtx.LastReferencedProduct = req.ProductId
		ctxDirty = true
	}

	routeCtx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	result, err := s.router.Route(routeCtx, router.Input{
		UserEmail:        userEmail,
		Message:          req.Message,
		ContextProductID: dialogueCtx.LastReferencedProduct,
	})
	if err != nil {
		return nil, err
	}

	if result.ReferencedProductID != nil {
		dialogueCtx.LastReferencedProduct = result.ReferencedProductID
		ctxDirty = true
	}
	// Save on any change, not just on a resolved product: a pinned product
	// sent alongside a greeting must still be there next turn.
	if ctxDirty {
		if err := s.sessionRepo.Save(ctx, dialogueCtx); err != nil {
			s.logger.Warn("chat", "Session context save failed", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
		}
	}

	if err := s.persistTurn(ctx, userEmail, sessionId, req.Message, result); err != nil {
		// The reply was already produced; losing the audit row is logged,
		// not surfaced.
		s.logger.Error("chat", "Failed to persist chat turn", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewChatTurn(userEmail, string(result.Intent), result.ReferencedProductID)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("chat", "Failed to publish chat turn event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.SendMessageResponse{
		Reply:     result.Reply,
		Intent:    string(result.Intent),
		SessionId: sessionId,
		ProductId: result.ReferencedProductID,
		Matched:   result.Matched,
	}, nil
}

// persistTurn writes the user and bot rows in one transaction so history
// never shows a question without its answer.
func (s *chatService) persistTurn(ctx context.Context, userEmail, sessionId, message string, result *router.Result) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	userRow := entity.ConversationMessage{
		UserEmail: userEmail,
		SessionId: sessionId,
		ProductId: result.ReferencedProductID,
		Role:      constant.ChatMessageRoleUser,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, &userRow); err != nil {
		_ = uow.Rollback()
		return err
	}

	botRow := entity.ConversationMessage{
		UserEmail: userEmail,
		SessionId: sessionId,
		ProductId: result.ReferencedProductID,
		Role:      constant.ChatMessageRoleBot,
		Message:   result.Reply,
		CreatedAt: time.Now(),
	}
	if err := uow.ConversationRepository().Create(ctx, &botRow); err != nil {
		_ = uow.Rollback()
		return err
	}

	return uow.Commit()
}

func (s *chatService) History(ctx context.Context, userEmail string, productId *uint) ([]*dto.ChatHistoryItem, error) {
	specs := []specification.Specification{
		specification.ByUserEmail{Email: userEmail},
		specification.OrderBy{Field: "created_at"},
	}
	if productId != nil {
		specs = append(specs, specification.ByProductID{ProductID: *productId})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ConversationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ChatHistoryItem, len(messages))
	for i, m := range messages {
		out[i] = &dto.ChatHistoryItem{
			Id:        m.Id,
			Role:      m.Role,
			Message:   m.Message,
			ProductId: m.ProductId,
			CreatedAt: m.CreatedAt,
		}
	}
	return out, nil
}

func (s *chatService) ClearHistory(ctx context.Context, userEmail string, sessionId string) (*dto.ClearHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	deleted, err := uow.ConversationRepository().DeleteByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	// Dropping the context pointer with the history keeps the next turn from
	// negotiating against a product the user can no longer see.
	if sessionId != "" {
		if err := s.sessionRepo.Delete(ctx, sessionId); err != nil {
			s.logger.Warn("chat", "Session context delete failed", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
		}
	}

	return &dto.ClearHistoryResponse{Deleted: deleted}, nil
}
