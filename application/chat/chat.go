package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/vastu-shakti/constant"
	"github.com/muhammadheryan/vastu-shakti/model"
	chatrepo "github.com/muhammadheryan/vastu-shakti/repository/chat"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"github.com/muhammadheryan/vastu-shakti/utils/metrics"
	"go.uber.org/zap"
)

type ChatApp interface {
	SendMessage(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
	History(ctx context.Context, sessionID string) (*model.ChatHistoryResponse, error)
}

type ChatAppImpl struct {
	chatRepo chatrepo.ChatRepository
}

func NewChatApp(chatRepo chatrepo.ChatRepository) ChatApp {
	return &ChatAppImpl{chatRepo: chatRepo}
}

// SendMessage answers the message and records both lines of the exchange. A failed
// write never costs the caller the reply.
func (s *ChatAppImpl) SendMessage(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	intent, response, confidence := Reply(req.Message, req.Language)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	now := time.Now()
	err := s.chatRepo.Append(ctx,
		&model.ChatMessageEntity{SessionID: sessionID, Message: req.Message, IsBot: false, CreatedAt: now},
		&model.ChatMessageEntity{SessionID: sessionID, Message: response, IsBot: true, Intent: intent, Confidence: confidence, CreatedAt: now},
	)
	if err != nil {
		logger.Warn("[SendMessage] err chatRepo.Append", zap.String("session_id", sessionID), zap.String("error", err.Error()))
	}

	language := constant.LanguageEnglish
	if req.Language == constant.LanguageHindi {
		language = constant.LanguageHindi
	}
	metrics.RecordChatMessage(string(intent), language)

	return &model.ChatResponse{
		Response:  response,
		Intent:    intent,
		SessionID: sessionID,
	}, nil
}

func (s *ChatAppImpl) History(ctx context.Context, sessionID string) (*model.ChatHistoryResponse, error) {
	if sessionID == "" || len(sessionID) > 64 {
		return nil, errors.SetValidationError([]errors.FieldError{{Field: "sessionId", Message: "sessionId must be between 1 and 64 characters"}})
	}

	entities, err := s.chatRepo.ListBySession(ctx, sessionID, constant.ChatHistoryLimit)
	if err != nil {
		logger.Error("[History] err chatRepo.ListBySession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	messages := make([]*model.ChatMessage, 0, len(entities))
	for _, e := range entities {
		messages = append(messages, &model.ChatMessage{
			Message:    e.Message,
			IsBot:      e.IsBot,
			Intent:     e.Intent,
			Confidence: e.Confidence,
			Timestamp:  e.CreatedAt,
		})
	}

	return &model.ChatHistoryResponse{
		SessionID: sessionID,
		Messages:  messages,
	}, nil
}
