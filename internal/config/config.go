package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Required values are enforced by must();
// the rest fall back to sensible defaults so a bare .env still boots.
type Config struct {
	Env           string // application environment (dev/test/prod)
	Port          string // HTTP port to listen on
	MongoURI      string // MongoDB connection string
	MongoDB       string // MongoDB database name
	JWTSecret     string // secret used to sign session tokens
	SessionTTLMin int    // session token time-to-live in minutes
	SessionCookie string // cookie name carrying the session token
	BcryptCost    int    // bcrypt cost for password hashing

	// Google OAuth. Login via Google is disabled when the client id or
	// secret is absent.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// RabbitMQ connection string for notification events. Empty
	// disables publishing.
	RabbitURL string
}

// Load reads configuration values from environment variables and
// returns a Config. Missing required variables abort startup with a
// fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),
		Port:          must("APP_PORT"),
		MongoURI:      must("MONGODB_URI"),
		MongoDB:       must("MONGODB_DB"),
		JWTSecret:     must("JWT_SECRET"),
		SessionTTLMin: envInt("SESSION_TTL_MIN", 43200), // 30 days
		SessionCookie: envStr("SESSION_COOKIE", "session"),
		BcryptCost:    envInt("BCRYPT_COST", 10),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  envStr("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/google/callback"),

		RabbitURL: os.Getenv("RABBITMQ_URL"),
	}
}

// OAuthEnabled reports whether Google login can be offered.
func (c Config) OAuthEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
