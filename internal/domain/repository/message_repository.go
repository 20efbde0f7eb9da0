package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/internal/domain/entity"
)

// MessageRepository lists newest first, except FindConversation which is
// oldest first so a thread reads top to bottom.
type MessageRepository interface {
	ResourceRepository[entity.Message, entity.MessageUpdate]

	FindBySenderID(ctx context.Context, senderID string) ([]*entity.Message, error)
	FindByReceiverID(ctx context.Context, receiverID string) ([]*entity.Message, error)
	FindConversation(ctx context.Context, conversation entity.Conversation) ([]*entity.Message, error)
	// MarkAsRead sets isRead and stamps read_at. Repeating it only re-stamps read_at.
	MarkAsRead(ctx context.Context, id primitive.ObjectID) (int64, error)
}
