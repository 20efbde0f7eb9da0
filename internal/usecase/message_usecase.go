package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/internal/domain/entity"
	"logisocial/internal/domain/repository"
	ws "logisocial/internal/infrastructure/websocket"
	"logisocial/pkg/logger"
)

// Notifier delivers a payload to a connected user. Delivery is best effort.
type Notifier interface {
	SendToUser(userID string, payload []byte) bool
}

type MessageUseCase struct {
	*crudUseCase[entity.Message, entity.MessageUpdate]
	messageRepo repository.MessageRepository
	notifier    Notifier
}

// NewMessageUseCase accepts a nil notifier when real-time delivery is disabled.
func NewMessageUseCase(messageRepo repository.MessageRepository, notifier Notifier) *MessageUseCase {
	return &MessageUseCase{
		crudUseCase: newCRUDUseCase[entity.Message, entity.MessageUpdate](messageRepo, "Message"),
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

func (uc *MessageUseCase) Create(ctx context.Context, message *entity.Message) (*entity.Message, error) {
	created, err := uc.crudUseCase.Create(ctx, message)
	if err != nil {
		return nil, err
	}
	uc.notify(created.ReceiverID, ws.EventMessageCreated, ws.MessageCreatedData{
		ID:         created.ID.Hex(),
		SenderID:   created.SenderID,
		ReceiverID: created.ReceiverID,
		Subject:    created.Subject,
		CreatedAt:  created.CreatedAt.Format(time.RFC3339),
	})
	return created, nil
}

func (uc *MessageUseCase) ListMessages(ctx context.Context, filter entity.MessageFilter) ([]*entity.Message, error) {
	switch {
	case filter.Conversation != nil:
		return uc.messageRepo.FindConversation(ctx, *filter.Conversation)
	case filter.SenderID != "":
		return uc.messageRepo.FindBySenderID(ctx, filter.SenderID)
	case filter.ReceiverID != "":
		return uc.messageRepo.FindByReceiverID(ctx, filter.ReceiverID)
	default:
		return uc.messageRepo.FindAll(ctx)
	}
}

func (uc *MessageUseCase) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	return uc.matched(uc.messageRepo.MarkAsRead(ctx, id))
}

func (uc *MessageUseCase) notify(userID, eventType string, data interface{}) {
	if uc.notifier == nil || userID == "" {
		return
	}

	payload, err := json.Marshal(ws.Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Warn("Failed to encode %s notification: %v", eventType, err)
		return
	}

	if !uc.notifier.SendToUser(userID, payload) {
		logger.Debug("No live connection for %s, %s not delivered", userID, eventType)
	}
}
