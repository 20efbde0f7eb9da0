package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceRepository is the capability every resource store shares.
//
// FindByID returns a NotFound AppError when nothing matches. Update and Delete
// report the matched/deleted count instead, so callers decide what 0 means.
type ResourceRepository[T any, U any] interface {
	Create(ctx context.Context, record *T) error
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	Update(ctx context.Context, id primitive.ObjectID, fields U) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
