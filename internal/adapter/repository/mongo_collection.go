package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"logisocial/pkg/errors"
)

// _id breaks ties between records created in the same millisecond.
var (
	newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	oldestFirst = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
)

// now is truncated to BSON date precision so what we return equals what is stored.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// mongoCollection wraps one collection with the single-document operations the
// resource repositories are built from. Every call is one driver operation
// bounded by timeout.
type mongoCollection[T any] struct {
	coll     *mongo.Collection
	resource string
	timeout  time.Duration
}

func newMongoCollection[T any](db *mongo.Database, name, resource string, timeout time.Duration) *mongoCollection[T] {
	return &mongoCollection[T]{
		coll:     db.Collection(name),
		resource: resource,
		timeout:  timeout,
	}
}

func (m *mongoCollection[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.timeout)
}

func (m *mongoCollection[T]) insert(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, errors.Internal(fmt.Sprintf("Failed to create %s", m.resource), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.Internal(
			fmt.Sprintf("Failed to create %s", m.resource),
			fmt.Errorf("unexpected inserted id type %T", res.InsertedID),
		)
	}
	return id, nil
}

// find never returns a nil slice, so an empty result encodes as [].
func (m *mongoCollection[T]) find(ctx context.Context, filter interface{}, sort bson.D) ([]*T, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.Internal(fmt.Sprintf("Failed to list %s", m.resource), err)
	}
	defer cursor.Close(ctx)

	results := make([]*T, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, errors.Internal(fmt.Sprintf("Failed to parse %s data", m.resource), err)
	}
	return results, nil
}

func (m *mongoCollection[T]) findByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	var out T
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound(m.resource, err)
	}
	if err != nil {
		return nil, errors.Internal(fmt.Sprintf("Failed to get %s", m.resource), err)
	}
	return &out, nil
}

// setFields overwrites only the given fields. An empty set still reports
// whether the record exists, since Mongo rejects an empty $set.
func (m *mongoCollection[T]) setFields(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	if len(set) == 0 {
		n, err := m.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
		if err != nil {
			return 0, errors.Internal(fmt.Sprintf("Failed to update %s", m.resource), err)
		}
		return n, nil
	}

	res, err := m.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, errors.Internal(fmt.Sprintf("Failed to update %s", m.resource), err)
	}
	return res.MatchedCount, nil
}

func (m *mongoCollection[T]) inc(ctx context.Context, id primitive.ObjectID, field string, by int) (int64, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{field: by}})
	if err != nil {
		return 0, errors.Internal(fmt.Sprintf("Failed to update %s", m.resource), err)
	}
	return res.MatchedCount, nil
}

func (m *mongoCollection[T]) deleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, errors.Internal(fmt.Sprintf("Failed to delete %s", m.resource), err)
	}
	return res.DeletedCount, nil
}

// setIf adds key to set when v is non-nil.
func setIf[V any](set bson.M, key string, v *V) {
	if v != nil {
		set[key] = *v
	}
}
