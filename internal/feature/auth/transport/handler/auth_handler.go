// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"greenthumb_backend/internal/feature/auth/domain/entity"
	"greenthumb_backend/internal/feature/auth/transport/http/dto"
	"greenthumb_backend/internal/feature/auth/usecase"
	jwtmw "greenthumb_backend/internal/platform/jwt"
)

// AuthUsecase defines the account operations used by AuthHandler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	VerifyCode(ctx context.Context, email, code string) error
	ResendCode(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	Logout(ctx context.Context, cookieToken string) error
	GetUser(ctx context.Context, id string) (*entity.User, error)
}

// AuthHandler handles signup, verification, login and logout.
type AuthHandler struct {
	auth    AuthUsecase
	cookies CookieOptions
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{auth: auth, cookies: cookies}
}

// Signup handles POST /signup.
// 201 with the sanitized user, 400 on validation, mismatch or duplicate.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "signup", err)
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondError(c, "signup", err, "email", req.Email)
		return
	}
	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserRes(user))
}

// VerifyCode handles POST /verify-code.
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var req dto.VerifyCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "verify code", err)
		return
	}
	if err := h.auth.VerifyCode(c.Request.Context(), req.Email, req.Code); err != nil {
		respondError(c, "verify code", err, "email", req.Email)
		return
	}
	slog.Info("email verified", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.MessageRes{Message: "email verified"})
}

// ResendCode handles POST /resend-code.
func (h *AuthHandler) ResendCode(c *gin.Context) {
	var req dto.ResendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "resend code", err)
		return
	}
	if err := h.auth.ResendCode(c.Request.Context(), req.Email); err != nil {
		respondError(c, "resend code", err, "email", req.Email)
		return
	}
	c.JSON(http.StatusOK, dto.MessageRes{Message: "verification code sent"})
}

// Login handles POST /login.
// Unknown email and wrong password share one response to prevent user enumeration.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "login", err)
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, "login", err, "email", req.Email)
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.LoginRes{Token: token, User: dto.NewUserRes(user)})
}

// Logout handles POST /api/auth/logout. It always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(jwtmw.CookieName); err == nil {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		}
	}
	h.cookies.clear(c, jwtmw.CookieName)
	c.JSON(http.StatusOK, dto.MessageRes{Message: "logged out"})
}

// Me handles GET /users/me behind AuthRequired.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthenticated"})
		return
	}
	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		// The middleware resolved this id a moment ago; a miss now is a deleted account.
		if statusFor(err) == http.StatusNotFound {
			c.JSON(http.StatusUnauthorized, dto.ErrorRes{Error: "unauthenticated"})
			return
		}
		respondError(c, "get current user", err, "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// NotImplemented answers the password reset routes.
func (h *AuthHandler) NotImplemented(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, dto.ErrorRes{Error: "not implemented"})
}
