package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"greenthumb_backend/internal/feature/messages/domain/entity"
	"greenthumb_backend/internal/feature/messages/transport/http/dto"
)

// Event names pushed to websocket subscribers.
const (
	EventNewMessage    = "new_message"
	EventDeleteMessage = "delete_message"
)

// Broadcaster fans an event out to live subscribers.
type Broadcaster interface {
	Broadcast(event string, data any)
}

// Subscriber upgrades a request into a live subscription.
type Subscriber interface {
	Serve(w http.ResponseWriter, r *http.Request) error
}

// HubNotifier publishes message changes in their HTTP shape.
type HubNotifier struct {
	hub Broadcaster
}

func NewHubNotifier(hub Broadcaster) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) MessageCreated(m *entity.Message) {
	n.hub.Broadcast(EventNewMessage, dto.NewMessageRes(m))
}

func (n *HubNotifier) MessageDeleted(id string) {
	n.hub.Broadcast(EventDeleteMessage, id)
}

// Subscribe handles GET /api/ws.
func Subscribe(sub Subscriber) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sub.Serve(c.Writer, c.Request); err != nil {
			// The upgrader has already written the error response.
			slog.Warn("websocket upgrade failed", "error", err, "remote_addr", c.ClientIP())
		}
	}
}
