package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/internal/domain/entity"
	"logisocial/internal/domain/repository"
	"logisocial/pkg/errors"
)

type ReviewUseCase struct {
	*crudUseCase[entity.Review, entity.ReviewUpdate]
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{crudUseCase: newCRUDUseCase[entity.Review, entity.ReviewUpdate](reviewRepo, "Review")}
}

func (uc *ReviewUseCase) Create(ctx context.Context, review *entity.Review) (*entity.Review, error) {
	if !entity.ValidRating(review.Rating) {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	return uc.crudUseCase.Create(ctx, review)
}

// Update checks the rating bound only when a rating is supplied.
func (uc *ReviewUseCase) Update(ctx context.Context, id primitive.ObjectID, fields entity.ReviewUpdate) error {
	if fields.Rating != nil && !entity.ValidRating(*fields.Rating) {
		return errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	return uc.crudUseCase.Update(ctx, id, fields)
}
