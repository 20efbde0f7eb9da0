package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/internal/domain/repository"
	"logisocial/pkg/errors"
)

// crudUseCase turns repository outcomes into the errors handlers respond
// with: a zero matched or deleted count becomes NotFound.
type crudUseCase[T any, U any] struct {
	repo     repository.ResourceRepository[T, U]
	resource string
}

func newCRUDUseCase[T any, U any](repo repository.ResourceRepository[T, U], resource string) *crudUseCase[T, U] {
	return &crudUseCase[T, U]{repo: repo, resource: resource}
}

func (uc *crudUseCase[T, U]) Create(ctx context.Context, record *T) (*T, error) {
	if err := uc.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *crudUseCase[T, U]) List(ctx context.Context) ([]*T, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *crudUseCase[T, U]) Get(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *crudUseCase[T, U]) Update(ctx context.Context, id primitive.ObjectID, fields U) error {
	return uc.matched(uc.repo.Update(ctx, id, fields))
}

func (uc *crudUseCase[T, U]) Delete(ctx context.Context, id primitive.ObjectID) error {
	return uc.matched(uc.repo.Delete(ctx, id))
}

func (uc *crudUseCase[T, U]) matched(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.NotFound(uc.resource, nil)
	}
	return nil
}
