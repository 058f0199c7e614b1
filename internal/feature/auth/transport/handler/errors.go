package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"greenthumb_backend/internal/feature/auth/transport/http/dto"
	"greenthumb_backend/internal/feature/auth/usecase"
)

// statusFor maps usecase sentinels to HTTP status codes.
// Unknown errors map to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrPasswordMismatch),
		errors.Is(err, usecase.ErrPasswordTooLong),
		errors.Is(err, usecase.ErrDuplicateIdentity),
		errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrAlreadyVerified),
		errors.Is(err, usecase.ErrInvalidCode),
		errors.Is(err, usecase.ErrCodeExpired),
		errors.Is(err, usecase.ErrInvalidProfile):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrEmailNotVerified),
		errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, usecase.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err using the status mapping. Internal errors are logged
// with their cause and answered with a generic message.
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

func badRequest(c *gin.Context, op string, err error) {
	slog.Warn(op+" validation failed", "error", err, "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "invalid request"})
}
