// Package usecase implements the community message board.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"greenthumb_backend/internal/feature/messages/domain/entity"
)

// ListLimit caps how many messages List returns.
const ListLimit = 100

// acceptedTimeLayouts are tried in order when parsing a client supplied time.
var acceptedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreateInput is a new message as submitted by its author.
type CreateInput struct {
	AuthorID string
	Text     string
	// Time is the client's timestamp; empty or unparsable means now.
	Time     string
	ImageURL *string
}

type messageUsecase struct {
	repo     MessageRepository
	notifier Notifier
	now      func() time.Time
}

// NewMessageUsecase creates a new message usecase.
func NewMessageUsecase(repo MessageRepository, notifier Notifier) *messageUsecase {
	return &messageUsecase{repo: repo, notifier: notifier, now: time.Now}
}

func (u *messageUsecase) List(ctx context.Context) ([]*entity.Message, error) {
	msgs, err := u.repo.List(ctx, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

func (u *messageUsecase) Get(ctx context.Context, id string) (*entity.Message, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return u.repo.FindByID(ctx, id)
}

// Create stores the message and announces it with its author attached.
func (u *messageUsecase) Create(ctx context.Context, in CreateInput) (*entity.Message, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	var image *string
	if in.ImageURL != nil && strings.TrimSpace(*in.ImageURL) != "" {
		v := strings.TrimSpace(*in.ImageURL)
		image = &v
	}

	msg := &entity.Message{
		ID:       uuid.NewString(),
		AuthorID: in.AuthorID,
		Text:     text,
		Time:     u.parseTime(in.Time),
		ImageURL: image,
	}
	if err := u.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	stored, err := u.repo.FindByID(ctx, msg.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload message: %w", err)
	}
	u.notifier.MessageCreated(stored)
	return stored, nil
}

// Delete removes a message written by actorID.
func (u *messageUsecase) Delete(ctx context.Context, actorID, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	msg, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !msg.OwnedBy(actorID) {
		return ErrForbidden
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	u.notifier.MessageDeleted(id)
	return nil
}

func (u *messageUsecase) parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return u.now()
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
