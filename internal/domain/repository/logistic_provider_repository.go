package repository

import "logisocial/internal/domain/entity"

type LogisticProviderRepository interface {
	ResourceRepository[entity.LogisticProvider, entity.LogisticProviderUpdate]
}
