package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"logisocial/internal/domain/entity"
	"logisocial/internal/domain/repository"
)

const messagesCollection = "messages"

type mongoMessageRepository struct {
	messages *mongoCollection[entity.Message]
}

func NewMongoMessageRepository(db *mongo.Database, timeout time.Duration) repository.MessageRepository {
	return &mongoMessageRepository{
		messages: newMongoCollection[entity.Message](db, messagesCollection, "Message", timeout),
	}
}

// Create stores a new unread message. Subject defaults to "" through the zero value.
func (r *mongoMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = now()
	}

	id, err := r.messages.insert(ctx, message)
	if err != nil {
		return err
	}
	message.ID = id
	return nil
}

func (r *mongoMessageRepository) FindAll(ctx context.Context) ([]*entity.Message, error) {
	return r.messages.find(ctx, bson.M{}, newestFirst)
}

func (r *mongoMessageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Message, error) {
	return r.messages.findByID(ctx, id)
}

func (r *mongoMessageRepository) FindBySenderID(ctx context.Context, senderID string) ([]*entity.Message, error) {
	return r.messages.find(ctx, bson.M{"senderId": senderID}, newestFirst)
}

func (r *mongoMessageRepository) FindByReceiverID(ctx context.Context, receiverID string) ([]*entity.Message, error) {
	return r.messages.find(ctx, bson.M{"receiverId": receiverID}, newestFirst)
}

// FindConversation matches both directions between the pair.
func (r *mongoMessageRepository) FindConversation(ctx context.Context, conv entity.Conversation) ([]*entity.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.D{{Key: "senderId", Value: conv.UserA}, {Key: "receiverId", Value: conv.UserB}},
		bson.D{{Key: "senderId", Value: conv.UserB}, {Key: "receiverId", Value: conv.UserA}},
	}}
	return r.messages.find(ctx, filter, oldestFirst)
}

// Update never touches senderId, receiverId or isRead.
func (r *mongoMessageRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.MessageUpdate) (int64, error) {
	set := bson.M{"updated_at": now()}
	setIf(set, "subject", fields.Subject)
	setIf(set, "content", fields.Content)
	return r.messages.setFields(ctx, id, set)
}

func (r *mongoMessageRepository) MarkAsRead(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.messages.setFields(ctx, id, bson.M{"isRead": true, "read_at": now()})
}

func (r *mongoMessageRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.messages.deleteByID(ctx, id)
}
