package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/internal/domain/entity"
	ws "logisocial/internal/infrastructure/websocket"
	"logisocial/internal/testutil/memstore"
	apperrors "logisocial/pkg/errors"
)

type recordingNotifier struct {
	sent map[string][][]byte
}

func (n *recordingNotifier) SendToUser(userID string, payload []byte) bool {
	if n.sent == nil {
		n.sent = make(map[string][][]byte)
	}
	n.sent[userID] = append(n.sent[userID], payload)
	return true
}

func TestCreateMessageNotifiesReceiver(t *testing.T) {
	store := memstore.New()
	notifier := &recordingNotifier{}
	uc := NewMessageUseCase(store.Messages, notifier)

	msg, err := uc.Create(context.Background(), &entity.Message{SenderID: "a", ReceiverID: "b", Content: "hi"})
	require.NoError(t, err)
	assert.False(t, msg.IsRead)
	assert.False(t, msg.CreatedAt.IsZero())

	require.Len(t, notifier.sent["b"], 1)
	assert.Empty(t, notifier.sent["a"])

	var event struct {
		Type string                `json:"type"`
		Data ws.MessageCreatedData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(notifier.sent["b"][0], &event))
	assert.Equal(t, ws.EventMessageCreated, event.Type)
	assert.Equal(t, msg.ID.Hex(), event.Data.ID)
	assert.Equal(t, "a", event.Data.SenderID)
}

func TestCreateMessageWithoutNotifier(t *testing.T) {
	uc := NewMessageUseCase(memstore.New().Messages, nil)
	_, err := uc.Create(context.Background(), &entity.Message{SenderID: "a", ReceiverID: "b", Content: "hi"})
	assert.NoError(t, err)
}

func TestListMessagesFilterPrecedence(t *testing.T) {
	store := memstore.New()
	uc := NewMessageUseCase(store.Messages, nil)
	ctx := context.Background()

	send := func(from, to, content string) {
		_, err := uc.Create(ctx, &entity.Message{SenderID: from, ReceiverID: to, Content: content})
		require.NoError(t, err)
	}
	send("a", "b", "1")
	send("b", "a", "2")
	send("a", "c", "3")

	conversation, err := uc.ListMessages(ctx, entity.MessageFilter{
		SenderID:     "c",
		Conversation: &entity.Conversation{UserA: "b", UserB: "a"},
	})
	require.NoError(t, err)
	require.Len(t, conversation, 2)
	assert.Equal(t, "1", conversation[0].Content, "oldest first")
	assert.Equal(t, "2", conversation[1].Content)

	bySender, err := uc.ListMessages(ctx, entity.MessageFilter{SenderID: "a", ReceiverID: "a"})
	require.NoError(t, err)
	require.Len(t, bySender, 2)
	assert.Equal(t, "3", bySender[0].Content, "newest first")

	byReceiver, err := uc.ListMessages(ctx, entity.MessageFilter{ReceiverID: "a"})
	require.NoError(t, err)
	require.Len(t, byReceiver, 1)

	all, err := uc.ListMessages(ctx, entity.MessageFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMarkAsReadIsRepeatable(t *testing.T) {
	store := memstore.New()
	uc := NewMessageUseCase(store.Messages, nil)
	ctx := context.Background()

	msg, err := uc.Create(ctx, &entity.Message{SenderID: "a", ReceiverID: "b", Content: "hi"})
	require.NoError(t, err)

	require.NoError(t, uc.MarkAsRead(ctx, msg.ID))
	require.NoError(t, uc.MarkAsRead(ctx, msg.ID))

	got, err := uc.Get(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.NotNil(t, got.ReadAt)

	assert.True(t, apperrors.IsNotFound(uc.MarkAsRead(ctx, primitive.NewObjectID())))
}
