package usecase

import (
	"context"

	"greenthumb_backend/internal/feature/messages/domain/entity"
)

// MessageRepository persists messages.
type MessageRepository interface {
	List(ctx context.Context, limit int) ([]*entity.Message, error)
	FindByID(ctx context.Context, id string) (*entity.Message, error)
	Create(ctx context.Context, m *entity.Message) error
	Delete(ctx context.Context, id string) error
}

// Notifier announces message changes to live subscribers.
// Implementations must not block.
type Notifier interface {
	MessageCreated(m *entity.Message)
	MessageDeleted(id string)
}
