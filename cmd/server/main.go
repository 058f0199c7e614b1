package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	redisv9 "github.com/redis/go-redis/v9"

	"greenthumb_backend/internal/app/di"
	"greenthumb_backend/internal/app/router"
	authadapters "greenthumb_backend/internal/feature/auth/adapters"
	"greenthumb_backend/internal/feature/auth/domain/entity"
	authhandler "greenthumb_backend/internal/feature/auth/transport/handler"
	authusecase "greenthumb_backend/internal/feature/auth/usecase"
	chatbotadapters "greenthumb_backend/internal/feature/chatbot/adapters"
	chatbothandler "greenthumb_backend/internal/feature/chatbot/transport/handler"
	chatbotusecase "greenthumb_backend/internal/feature/chatbot/usecase"
	messageadapters "greenthumb_backend/internal/feature/messages/adapters"
	messagehandler "greenthumb_backend/internal/feature/messages/transport/handler"
	messageusecase "greenthumb_backend/internal/feature/messages/usecase"
	"greenthumb_backend/internal/platform/cache"
	"greenthumb_backend/internal/platform/config"
	infradb "greenthumb_backend/internal/platform/db"
	"greenthumb_backend/internal/platform/http/handler"
	jwtmw "greenthumb_backend/internal/platform/jwt"
	"greenthumb_backend/internal/platform/logger"
	"greenthumb_backend/internal/platform/mail"
	"greenthumb_backend/internal/platform/password"
	"greenthumb_backend/internal/platform/realtime"
	infraredis "greenthumb_backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	defer sentry.Flush(2 * time.Second)

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// JWT_SECRETチェック
	secret := cfg.JWTSecret
	if secret == "" {
		if cfg.IsProduction() {
			return errors.New("JWT_SECRET must be set in production")
		}
		secret = randomSecret()
		slog.Warn("JWT_SECRET is not set; using a random secret, tokens will not survive a restart")
	}

	// db
	db, err := infradb.OpenDB(infradb.Config{
		Driver:       cfg.DBDriver,
		User:         cfg.DBUser,
		Password:     cfg.DBPassword,
		Name:         cfg.DBName,
		Host:         cfg.DBHost,
		Port:         cfg.DBPort,
		InstanceName: cfg.DBInstanceName,
		SQLitePath:   cfg.DBSQLitePath,
	})
	if err != nil {
		return err
	}
	if cfg.RunMigrations || cfg.IsDevelopment() {
		if err := infradb.Migrate(db, &entity.User{}, &authadapters.SessionModel{}, &messageadapters.MessageModel{}); err != nil {
			return err
		}
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword); err != nil {
		slog.Warn("Redis unavailable, using database sessions and in-process rate limiting", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := di.NewSessionRepository(ctx, rdb, db)
	var messageCache redisv9.Cmdable
	if rdb != nil {
		messageCache = rdb
	}
	messageRepo := cache.NewCachingMessageRepository(messageCache, 30*time.Second, messageadapters.NewMessageGorm(db), "messages")

	hub := realtime.NewHub(cfg.CORSOrigins)
	defer hub.Close()

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo,
		sessionRepo,
		password.NewHasher(password.DefaultCost),
		jwtmw.NewIssuer(secret, cfg.JWTAccessTTL, cfg.JWTCookieTTL),
		mail.NewMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.ClientURL, cfg.IsDevelopment()),
	)
	messageUC := messageusecase.NewMessageUsecase(messageRepo, messagehandler.NewHubNotifier(hub))
	bot := chatbotusecase.NewResponder(chatbotadapters.NewStaticKnowledge())

	// Handler
	cookies := authhandler.CookieOptions{Secure: cfg.IsProduction()}
	checks := map[string]handler.Check{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	r := router.NewRouter(router.Deps{
		Auth:     authhandler.NewAuthHandler(authUC, cookies),
		Users:    authhandler.NewUserHandler(authUC),
		OAuth:    authhandler.NewOAuthHandler(authUC, cfg.ClientURL, cookies, di.NewOAuthProviders(cfg)...),
		Chatbot:  chatbothandler.NewChatbotHandler(bot),
		Messages: messagehandler.NewMessageHandler(messageUC),
		Realtime: hub,
		Sessions: authUC,
		Limiter:  di.NewAuthLimiter(rdb, cfg.AuthRateLimit, cfg.AuthRateWindow),
		Health:   checks,
		Origins:  cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
