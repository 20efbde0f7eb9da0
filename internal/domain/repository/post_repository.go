package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/internal/domain/entity"
)

// PostRepository lists newest first.
type PostRepository interface {
	ResourceRepository[entity.Post, entity.PostUpdate]

	FindByUserID(ctx context.Context, userID string) ([]*entity.Post, error)
	FindByProviderID(ctx context.Context, providerID string) ([]*entity.Post, error)
	// IncrementLikes adds one to likes atomically and returns the matched count.
	IncrementLikes(ctx context.Context, id primitive.ObjectID) (int64, error)
}
