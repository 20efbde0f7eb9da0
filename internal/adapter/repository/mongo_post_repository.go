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

const postsCollection = "posts"

type mongoPostRepository struct {
	posts *mongoCollection[entity.Post]
}

func NewMongoPostRepository(db *mongo.Database, timeout time.Duration) repository.PostRepository {
	return &mongoPostRepository{
		posts: newMongoCollection[entity.Post](db, postsCollection, "Post", timeout),
	}
}

// Create fills the insert-time defaults: empty images and tags, zero likes
// and created_at = now when the caller left it unset.
func (r *mongoPostRepository) Create(ctx context.Context, post *entity.Post) error {
	if post.Images == nil {
		post.Images = []string{}
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now()
	}

	id, err := r.posts.insert(ctx, post)
	if err != nil {
		return err
	}
	post.ID = id
	return nil
}

func (r *mongoPostRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	return r.posts.find(ctx, bson.M{}, newestFirst)
}

func (r *mongoPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	return r.posts.findByID(ctx, id)
}

func (r *mongoPostRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Post, error) {
	return r.posts.find(ctx, bson.M{"userId": userID}, newestFirst)
}

func (r *mongoPostRepository) FindByProviderID(ctx context.Context, providerID string) ([]*entity.Post, error) {
	return r.posts.find(ctx, bson.M{"providerId": providerID}, newestFirst)
}

func (r *mongoPostRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.PostUpdate) (int64, error) {
	set := bson.M{"updated_at": now()}
	setIf(set, "title", fields.Title)
	setIf(set, "content", fields.Content)
	setIf(set, "images", fields.Images)
	setIf(set, "tags", fields.Tags)
	return r.posts.setFields(ctx, id, set)
}

func (r *mongoPostRepository) IncrementLikes(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.posts.inc(ctx, id, "likes", 1)
}

func (r *mongoPostRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.posts.deleteByID(ctx, id)
}
