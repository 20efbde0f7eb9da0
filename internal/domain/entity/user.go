package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username"`
	FullName       string             `json:"full_name,omitempty" bson:"full_name,omitempty"`
	Email          string             `json:"email" bson:"email"`
	RegisteredDate *time.Time         `json:"registered_date,omitempty" bson:"registered_date,omitempty"`
}

// UserUpdate holds the fields a PUT may overwrite. Nil means untouched.
type UserUpdate struct {
	Username       *string
	FullName       *string
	Email          *string
	RegisteredDate *time.Time
}
