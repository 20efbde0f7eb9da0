package repository

import "logisocial/internal/domain/entity"

type ReviewRepository interface {
	ResourceRepository[entity.Review, entity.ReviewUpdate]
}
