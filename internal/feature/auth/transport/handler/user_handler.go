package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"greenthumb_backend/internal/feature/auth/domain/entity"
	"greenthumb_backend/internal/feature/auth/transport/http/dto"
	"greenthumb_backend/internal/feature/auth/usecase"
	jwtmw "greenthumb_backend/internal/platform/jwt"
)

// ProfileUsecase defines the profile operations used by UserHandler.
type ProfileUsecase interface {
	GetUser(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, actorID, targetID string, patch usecase.ProfilePatch) (*entity.User, error)
}

// UserHandler serves public profiles and owner edits.
type UserHandler struct {
	profiles ProfileUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(profiles ProfileUsecase) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.profiles.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "get user", err, "user_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// Update handles PUT /api/users/:id. Passwords cannot be changed here.
func (h *UserHandler) Update(c *gin.Context) {
	actorID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthenticated"})
		return
	}

	var req dto.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "update user", err)
		return
	}
	if req.Password != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "password cannot be updated here"})
		return
	}

	user, err := h.profiles.UpdateProfile(c.Request.Context(), actorID, c.Param("id"), usecase.ProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
	})
	if err != nil {
		respondError(c, "update user", err, "actor_id", actorID, "user_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}
