package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/internal/domain/entity"
	"logisocial/internal/domain/repository"
)

type PostUseCase struct {
	*crudUseCase[entity.Post, entity.PostUpdate]
	postRepo repository.PostRepository
}

func NewPostUseCase(postRepo repository.PostRepository) *PostUseCase {
	return &PostUseCase{
		crudUseCase: newCRUDUseCase[entity.Post, entity.PostUpdate](postRepo, "Post"),
		postRepo:    postRepo,
	}
}

func (uc *PostUseCase) ListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	switch {
	case filter.UserID != "":
		return uc.postRepo.FindByUserID(ctx, filter.UserID)
	case filter.ProviderID != "":
		return uc.postRepo.FindByProviderID(ctx, filter.ProviderID)
	default:
		return uc.postRepo.FindAll(ctx)
	}
}

func (uc *PostUseCase) Like(ctx context.Context, id primitive.ObjectID) error {
	return uc.matched(uc.postRepo.IncrementLikes(ctx, id))
}
