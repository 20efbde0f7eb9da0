package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of a logistic provider. UserID and ProviderID are
// stored as given; nothing checks that they exist.
type Review struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	ProviderID string             `json:"providerId" bson:"providerId"`
	Title      string             `json:"title,omitempty" bson:"title,omitempty"`
	Content    string             `json:"content,omitempty" bson:"content,omitempty"`
	Rating     int                `json:"rating" bson:"rating"`
	CreatedAt  *time.Time         `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

type ReviewUpdate struct {
	UserID     *string
	ProviderID *string
	Title      *string
	Content    *string
	Rating     *int
	CreatedAt  *time.Time
}

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
