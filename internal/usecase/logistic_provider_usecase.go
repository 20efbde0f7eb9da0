package usecase

import (
	"logisocial/internal/domain/entity"
	"logisocial/internal/domain/repository"
)

type LogisticProviderUseCase struct {
	*crudUseCase[entity.LogisticProvider, entity.LogisticProviderUpdate]
}

func NewLogisticProviderUseCase(providerRepo repository.LogisticProviderRepository) *LogisticProviderUseCase {
	return &LogisticProviderUseCase{
		crudUseCase: newCRUDUseCase[entity.LogisticProvider, entity.LogisticProviderUpdate](providerRepo, "Provider"),
	}
}
