// Package router assembles the HTTP routes.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "greenthumb_backend/internal/feature/auth/transport/handler"
	chatbothandler "greenthumb_backend/internal/feature/chatbot/transport/handler"
	messagehandler "greenthumb_backend/internal/feature/messages/transport/handler"
	"greenthumb_backend/internal/platform/http/handler"
	jwtmw "greenthumb_backend/internal/platform/jwt"
	"greenthumb_backend/internal/platform/ratelimit"
)

// Deps carries everything the routes are built from.
type Deps struct {
	Auth     *authhandler.AuthHandler
	Users    *authhandler.UserHandler
	OAuth    *authhandler.OAuthHandler
	Chatbot  *chatbothandler.ChatbotHandler
	Messages *messagehandler.MessageHandler
	Realtime messagehandler.Subscriber
	Sessions jwtmw.Authenticator
	Limiter  ratelimit.Limiter
	Health   map[string]handler.Check
	Origins  []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.Origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	health := handler.Health(d.Health)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	authRequired := jwtmw.AuthRequired(d.Sessions)
	limited := ratelimit.Middleware(d.Limiter, "auth")

	// 認証不要
	public := r.Group("/", limited)
	{
		public.POST("/signup", d.Auth.Signup)
		public.POST("/login", d.Auth.Login)
		public.POST("/verify-code", d.Auth.VerifyCode)
		public.POST("/resend-code", d.Auth.ResendCode)
	}
	r.GET("/users/me", authRequired, d.Auth.Me)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", limited, d.Auth.Signup)
		auth.POST("/register", limited, d.Auth.Signup)
		auth.POST("/login", limited, d.Auth.Login)
		auth.POST("/verify-code", limited, d.Auth.VerifyCode)
		auth.POST("/resend-code", limited, d.Auth.ResendCode)
		auth.POST("/logout", d.Auth.Logout)
		auth.POST("/forgot-password", d.Auth.NotImplemented)
		auth.POST("/reset-password/:token", d.Auth.NotImplemented)
		auth.GET("/social/:provider", d.OAuth.Begin)
		auth.GET("/social/:provider/callback", d.OAuth.Callback)
	}

	api.POST("/chatbot", d.Chatbot.Ask)

	// 認証必須のルート
	private := api.Group("/", authRequired)
	{
		private.GET("/users/me", d.Auth.Me)
		private.PUT("/users/:id", d.Users.Update)

		private.GET("/messages", d.Messages.List)
		private.GET("/messages/:id", d.Messages.Get)
		private.POST("/messages", d.Messages.Create)
		private.DELETE("/messages/:id", d.Messages.Delete)

		private.GET("/ws", messagehandler.Subscribe(d.Realtime))
	}
	// /api/users/me is registered above; gin resolves the static segment first.
	api.GET("/users/:id", d.Users.Get)

	return r
}
