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

const usersCollection = "users"

type mongoUserRepository struct {
	users *mongoCollection[entity.User]
}

func NewMongoUserRepository(db *mongo.Database, timeout time.Duration) repository.UserRepository {
	return &mongoUserRepository{
		users: newMongoCollection[entity.User](db, usersCollection, "User", timeout),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := r.users.insert(ctx, user)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// FindAll uses natural order; callers must not rely on it.
func (r *mongoUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	return r.users.find(ctx, bson.M{}, nil)
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return r.users.findByID(ctx, id)
}

func (r *mongoUserRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.UserUpdate) (int64, error) {
	set := bson.M{}
	setIf(set, "username", fields.Username)
	setIf(set, "full_name", fields.FullName)
	setIf(set, "email", fields.Email)
	setIf(set, "registered_date", fields.RegisteredDate)
	return r.users.setFields(ctx, id, set)
}

func (r *mongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.users.deleteByID(ctx, id)
}
