package websocket

const (
	EventMessageCreated = "message.created"
)

type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type MessageCreatedData struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Subject    string `json:"subject,omitempty"`
	CreatedAt  string `json:"created_at"`
}
