// Package dto holds the JSON shapes of the message endpoints.
package dto

import (
	"time"

	"greenthumb_backend/internal/feature/messages/domain/entity"
)

// CreateMessageReq is the body of POST /api/messages.
type CreateMessageReq struct {
	Text     string  `json:"text" binding:"max=2000"`
	Time     string  `json:"time"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,max=2048"`
}

type AuthorRes struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// MessageRes is a message with its author summary.
type MessageRes struct {
	ID        string     `json:"id"`
	Author    *AuthorRes `json:"author"`
	Text      string     `json:"text"`
	Time      time.Time  `json:"time"`
	ImageURL  *string    `json:"imageUrl"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func NewMessageRes(m *entity.Message) MessageRes {
	res := MessageRes{
		ID:        m.ID,
		Text:      m.Text,
		Time:      m.Time,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Author != nil {
		res.Author = &AuthorRes{
			ID:        m.Author.ID,
			Username:  m.Author.Username,
			FirstName: m.Author.FirstName,
			LastName:  m.Author.LastName,
		}
	}
	return res
}

func NewMessageListRes(msgs []*entity.Message) []MessageRes {
	out := make([]MessageRes, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, NewMessageRes(m))
	}
	return out
}

type ErrorRes struct {
	Error string `json:"error"`
}

type MessageAckRes struct {
	Message string `json:"message"`
}
