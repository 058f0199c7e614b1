// Package adapters provides the GORM message repository.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"greenthumb_backend/internal/feature/messages/domain/entity"
	"greenthumb_backend/internal/feature/messages/usecase"
)

type messageGorm struct {
	db *gorm.DB
}

var _ usecase.MessageRepository = (*messageGorm)(nil)

// NewMessageGorm creates a new instance of messageGorm.
func NewMessageGorm(db *gorm.DB) *messageGorm {
	return &messageGorm{db: db}
}

// List returns up to limit messages, oldest first, with their authors.
func (r *messageGorm) List(ctx context.Context, limit int) ([]*entity.Message, error) {
	var models []MessageModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.AuthorID)
	}
	authors, err := r.authors(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Message, 0, len(models))
	for i := range models {
		out = append(out, models[i].toEntity(authors[models[i].AuthorID]))
	}
	return out, nil
}

func (r *messageGorm) FindByID(ctx context.Context, id string) (*entity.Message, error) {
	var m MessageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrMessageNotFound
		}
		return nil, err
	}
	authors, err := r.authors(ctx, []string{m.AuthorID})
	if err != nil {
		return nil, err
	}
	return m.toEntity(authors[m.AuthorID]), nil
}

func (r *messageGorm) Create(ctx context.Context, msg *entity.Message) error {
	m := MessageModel{
		ID:       msg.ID,
		AuthorID: msg.AuthorID,
		Text:     msg.Text,
		Time:     msg.Time,
		ImageURL: msg.ImageURL,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	msg.CreatedAt = m.CreatedAt
	msg.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *messageGorm) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MessageModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrMessageNotFound
	}
	return nil
}

// authors loads the author summaries for ids in a single query.
func (r *messageGorm) authors(ctx context.Context, ids []string) (map[string]*entity.Author, error) {
	out := make(map[string]*entity.Author, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []authorRow
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("id, username, first_name, last_name").
		Where("id IN ?", ids).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = &entity.Author{
			ID:        row.ID,
			Username:  row.Username,
			FirstName: row.FirstName,
			LastName:  row.LastName,
		}
	}
	return out, nil
}
