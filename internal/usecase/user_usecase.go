package usecase

import (
	"logisocial/internal/domain/entity"
	"logisocial/internal/domain/repository"
)

type UserUseCase struct {
	*crudUseCase[entity.User, entity.UserUpdate]
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{crudUseCase: newCRUDUseCase[entity.User, entity.UserUpdate](userRepo, "User")}
}
