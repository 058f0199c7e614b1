// Package handler exposes the chatbot over HTTP.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Responder answers a gardening question.
type Responder interface {
	Reply(question string) (string, error)
}

// ChatbotHandler handles POST /api/chatbot.
type ChatbotHandler struct {
	bot Responder
}

// NewChatbotHandler creates a new ChatbotHandler.
func NewChatbotHandler(bot Responder) *ChatbotHandler {
	return &ChatbotHandler{bot: bot}
}

type askReq struct {
	Question string `json:"question"`
}

type replyRes struct {
	Reply string `json:"reply"`
}

// Ask replies with {"reply": ...}; a missing question is a 400 in the same shape.
func (h *ChatbotHandler) Ask(c *gin.Context) {
	var req askReq
	_ = c.ShouldBindJSON(&req)

	reply, err := h.bot.Reply(req.Question)
	if err != nil {
		c.JSON(http.StatusBadRequest, replyRes{Reply: "❌ Question manquante."})
		return
	}
	c.JSON(http.StatusOK, replyRes{Reply: reply})
}
