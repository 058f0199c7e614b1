// Package handler provides HTTP handlers for the message board.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"greenthumb_backend/internal/feature/messages/domain/entity"
	"greenthumb_backend/internal/feature/messages/transport/http/dto"
	"greenthumb_backend/internal/feature/messages/usecase"
	jwtmw "greenthumb_backend/internal/platform/jwt"
)

// MessageUsecase defines the board operations used by MessageHandler.
type MessageUsecase interface {
	List(ctx context.Context) ([]*entity.Message, error)
	Get(ctx context.Context, id string) (*entity.Message, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Message, error)
	Delete(ctx context.Context, actorID, id string) error
}

type MessageHandler struct {
	messages MessageUsecase
}

func NewMessageHandler(messages MessageUsecase) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// List handles GET /api/messages.
func (h *MessageHandler) List(c *gin.Context) {
	msgs, err := h.messages.List(c.Request.Context())
	if err != nil {
		respondError(c, "list messages", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageListRes(msgs))
}

// Get handles GET /api/messages/:id.
func (h *MessageHandler) Get(c *gin.Context) {
	msg, err := h.messages.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get message", err, "message_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, dto.NewMessageRes(msg))
}

// Create handles POST /api/messages.
func (h *MessageHandler) Create(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthenticated"})
		return
	}

	var req dto.CreateMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create message validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
		return
	}

	msg, err := h.messages.Create(c.Request.Context(), usecase.CreateInput{
		AuthorID: userID,
		Text:     req.Text,
		Time:     req.Time,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, "create message", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMessageRes(msg))
}

// Delete handles DELETE /api/messages/:id. Only the author may delete.
func (h *MessageHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthenticated"})
		return
	}
	id := c.Param("id")
	if err := h.messages.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, "delete message", err, "user_id", userID, "message_id", id)
		return
	}
	c.JSON(http.StatusOK, dto.MessageAckRes{Message: "message deleted"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrEmptyText):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrMessageNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, op string, err error, attrs ...any) {
	status := statusFor(err)
	attrs = append(attrs, "error", err, "remote_addr", c.ClientIP())
	if status == http.StatusInternalServerError {
		slog.Error(op+" failed", attrs...)
		c.JSON(status, dto.ErrorRes{Error: "internal server error"})
		return
	}
	slog.Warn(op+" failed", attrs...)
	c.JSON(status, dto.ErrorRes{Error: err.Error()})
}
