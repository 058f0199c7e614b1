package adapters

import (
	"time"

	"greenthumb_backend/internal/feature/messages/domain/entity"
)

// MessageModel is the GORM model for the messages table.
type MessageModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	AuthorID  string    `gorm:"index;size:36;not null"`
	Text      string    `gorm:"type:text;not null"`
	Time      time.Time `gorm:"not null"`
	ImageURL  *string   `gorm:"size:2048"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}

func (m *MessageModel) toEntity(author *entity.Author) *entity.Message {
	return &entity.Message{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Author:    author,
		Text:      m.Text,
		Time:      m.Time,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// authorRow is the projection read from the users table.
type authorRow struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
}
