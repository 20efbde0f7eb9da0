package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"logisocial/internal/domain/entity"
	"logisocial/internal/usecase"
	"logisocial/pkg/errors"
	"logisocial/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type createMessageRequest struct {
	SenderID   string `json:"senderId" validate:"required"`
	ReceiverID string `json:"receiverId" validate:"required"`
	Subject    string `json:"subject"`
	Content    string `json:"content" validate:"required"`
}

// Participants are fixed once a message is sent.
type updateMessageRequest struct {
	Subject *string `json:"subject"`
	Content *string `json:"content"`
}

func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.Create(c.Request().Context(), &entity.Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Subject:    req.Subject,
		Content:    req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Message sent successfully", message.ID)
}

func (h *MessageHandler) GetMessages(c echo.Context) error {
	filter := entity.MessageFilter{
		SenderID:   c.QueryParam("senderId"),
		ReceiverID: c.QueryParam("receiverId"),
	}

	if raw := c.QueryParam("conversation"); raw != "" {
		conversation, err := parseConversation(raw)
		if err != nil {
			return response.Error(c, err)
		}
		filter.Conversation = conversation
	}

	messages, err := h.messageUseCase.ListMessages(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *MessageHandler) GetMessageByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, message)
}

func (h *MessageHandler) UpdateMessage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	err = h.messageUseCase.Update(c.Request().Context(), id, entity.MessageUpdate{
		Subject: req.Subject,
		Content: req.Content,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Message updated successfully")
}

func (h *MessageHandler) MarkAsRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.messageUseCase.MarkAsRead(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Message marked as read")
}

func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.messageUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Message deleted successfully")
}

// parseConversation accepts exactly two non-empty ids separated by a comma.
func parseConversation(raw string) (*entity.Conversation, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return nil, errors.BadRequest("Conversation query requires two user IDs separated by comma", nil)
	}

	a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if a == "" || b == "" {
		return nil, errors.BadRequest("Conversation query requires two user IDs separated by comma", nil)
	}

	return &entity.Conversation{UserA: a, UserB: b}, nil
}
