package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID     string             `json:"userId" bson:"userId"`
	ProviderID *string            `json:"providerId" bson:"providerId"`
	Title      string             `json:"title,omitempty" bson:"title,omitempty"`
	Content    string             `json:"content" bson:"content"`
	Images     []string           `json:"images" bson:"images"`
	Tags       []string           `json:"tags" bson:"tags"`
	Likes      int                `json:"likes" bson:"likes"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

type PostUpdate struct {
	Title   *string
	Content *string
	Images  *[]string
	Tags    *[]string
}

// PostFilter selects posts by author or by the provider they discuss. UserID wins when both are set.
type PostFilter struct {
	UserID     string
	ProviderID string
}
