package usecase

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidID       = errors.New("invalid message id")
	ErrEmptyText       = errors.New("message text is required")
	ErrForbidden       = errors.New("not allowed to delete this message")
)
