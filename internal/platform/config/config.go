// Package config loads runtime settings from the environment.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	// Application
	AppEnv      string
	Port        string
	ClientURL   string
	CORSOrigins []string

	// Security
	JWTSecret      string
	JWTAccessTTL   time.Duration
	JWTCookieTTL   time.Duration
	AuthRateLimit  int
	AuthRateWindow time.Duration

	// Database
	DBDriver       string
	DBUser         string
	DBPassword     string
	DBName         string
	DBHost         string
	DBPort         string
	DBInstanceName string
	DBSQLitePath   string
	RunMigrations  bool

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Email
	ResendAPIKey string
	EmailFrom    string

	// OAuth
	GoogleClientID       string
	GoogleClientSecret   string
	GoogleCallbackURL    string
	FacebookClientID     string
	FacebookClientSecret string
	FacebookCallbackURL  string

	// Observability
	SentryDSN string
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return &Config{
		AppEnv:      envString("APP_ENV", "development"),
		Port:        envString("PORT", "5000"),
		ClientURL:   strings.TrimRight(envString("CLIENT_URL", "http://localhost:3000"), "/"),
		CORSOrigins: envList("CORS_ORIGINS", []string{"http://localhost:3000"}),

		JWTSecret:      envString("JWT_SECRET", ""),
		JWTAccessTTL:   envDuration("JWT_ACCESS_TTL", 24*time.Hour),
		JWTCookieTTL:   envDuration("JWT_COOKIE_TTL", 7*24*time.Hour),
		AuthRateLimit:  envInt("AUTH_RATE_LIMIT", 20),
		AuthRateWindow: envDuration("AUTH_RATE_WINDOW", time.Minute),

		DBDriver:       envString("DB_DRIVER", "mysql"),
		DBUser:         envString("DB_USER", ""),
		DBPassword:     envString("DB_PASSWORD", ""),
		DBName:         envString("DB_NAME", "greenthumb"),
		DBHost:         envString("DB_HOST", "localhost"),
		DBPort:         envString("DB_PORT", "3306"),
		DBInstanceName: envString("INSTANCE_CONNECTION_NAME", ""),
		DBSQLitePath:   envString("DB_SQLITE_PATH", "./greenthumb.db"),
		RunMigrations:  envBool("RUN_MIGRATIONS", false),

		RedisHost:     envString("REDIS_HOST", ""),
		RedisPort:     envString("REDIS_PORT", "6379"),
		RedisPassword: envString("REDIS_PASSWORD", ""),

		ResendAPIKey: envString("RESEND_API_KEY", ""),
		EmailFrom:    envString("EMAIL_FROM", "GreenThumb <noreply@greenthumb.local>"),

		GoogleClientID:       envString("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret:   envString("GOOGLE_CLIENT_SECRET", ""),
		GoogleCallbackURL:    envString("GOOGLE_CALLBACK_URL", ""),
		FacebookClientID:     envString("FACEBOOK_CLIENT_ID", ""),
		FacebookClientSecret: envString("FACEBOOK_CLIENT_SECRET", ""),
		FacebookCallbackURL:  envString("FACEBOOK_CALLBACK_URL", ""),

		SentryDSN: envString("SENTRY_DSN", ""),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envList splits a comma separated value, dropping empty items.
func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
