package repository

import "logisocial/internal/domain/entity"

type UserRepository interface {
	ResourceRepository[entity.User, entity.UserUpdate]
}
