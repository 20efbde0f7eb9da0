package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	SenderID   string             `json:"senderId" bson:"senderId"`
	ReceiverID string             `json:"receiverId" bson:"receiverId"`
	Subject    string             `json:"subject" bson:"subject"`
	Content    string             `json:"content" bson:"content"`
	IsRead     bool               `json:"isRead" bson:"isRead"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	ReadAt     *time.Time         `json:"read_at,omitempty" bson:"read_at,omitempty"`
	UpdatedAt  *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

type MessageUpdate struct {
	Subject *string
	Content *string
}

// MessageFilter picks one lookup: Conversation, then SenderID, then ReceiverID.
type MessageFilter struct {
	SenderID     string
	ReceiverID   string
	Conversation *Conversation
}

// Conversation is the unordered pair of participants; (A, B) and (B, A) select the same messages.
type Conversation struct {
	UserA string
	UserB string
}
