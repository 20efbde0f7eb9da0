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

const reviewsCollection = "reviews"

type mongoReviewRepository struct {
	reviews *mongoCollection[entity.Review]
}

func NewMongoReviewRepository(db *mongo.Database, timeout time.Duration) repository.ReviewRepository {
	return &mongoReviewRepository{
		reviews: newMongoCollection[entity.Review](db, reviewsCollection, "Review", timeout),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	id, err := r.reviews.insert(ctx, review)
	if err != nil {
		return err
	}
	review.ID = id
	return nil
}

func (r *mongoReviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	return r.reviews.find(ctx, bson.M{}, nil)
}

func (r *mongoReviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error) {
	return r.reviews.findByID(ctx, id)
}

func (r *mongoReviewRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.ReviewUpdate) (int64, error) {
	set := bson.M{}
	setIf(set, "userId", fields.UserID)
	setIf(set, "providerId", fields.ProviderID)
	setIf(set, "title", fields.Title)
	setIf(set, "content", fields.Content)
	setIf(set, "rating", fields.Rating)
	setIf(set, "created_at", fields.CreatedAt)
	return r.reviews.setFields(ctx, id, set)
}

func (r *mongoReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.reviews.deleteByID(ctx, id)
}
