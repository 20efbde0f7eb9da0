// Package objectid checks client supplied identifiers before they reach a store filter.
package objectid

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/pkg/errors"
)

// IsValid reports whether s is a 24 character hex ObjectID.
func IsValid(s string) bool {
	return primitive.IsValidObjectID(s)
}

func Parse(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, errors.BadRequest("Invalid ID format", err)
	}
	return id, nil
}
