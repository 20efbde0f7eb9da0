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

const logisticProvidersCollection = "logistic_providers"

type mongoLogisticProviderRepository struct {
	providers *mongoCollection[entity.LogisticProvider]
}

func NewMongoLogisticProviderRepository(db *mongo.Database, timeout time.Duration) repository.LogisticProviderRepository {
	return &mongoLogisticProviderRepository{
		providers: newMongoCollection[entity.LogisticProvider](db, logisticProvidersCollection, "Provider", timeout),
	}
}

func (r *mongoLogisticProviderRepository) Create(ctx context.Context, provider *entity.LogisticProvider) error {
	id, err := r.providers.insert(ctx, provider)
	if err != nil {
		return err
	}
	provider.ID = id
	return nil
}

func (r *mongoLogisticProviderRepository) FindAll(ctx context.Context) ([]*entity.LogisticProvider, error) {
	return r.providers.find(ctx, bson.M{}, nil)
}

func (r *mongoLogisticProviderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.LogisticProvider, error) {
	return r.providers.findByID(ctx, id)
}

func (r *mongoLogisticProviderRepository) Update(ctx context.Context, id primitive.ObjectID, fields entity.LogisticProviderUpdate) (int64, error) {
	set := bson.M{}
	setIf(set, "company_name", fields.CompanyName)
	setIf(set, "ruc", fields.RUC)
	setIf(set, "contact_email", fields.ContactEmail)
	setIf(set, "services", fields.Services)
	return r.providers.setFields(ctx, id, set)
}

func (r *mongoLogisticProviderRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.providers.deleteByID(ctx, id)
}
