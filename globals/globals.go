package globals

import (
	"context"
	"os"
	"time"
)

var (
	JwtSecret = []byte(envOr("JWT_SECRET", "change-me-in-production"))

	// TokenTTL bounds issued access tokens. Override via TOKEN_TTL, e.g. "168h".
	TokenTTL = parseTTL(os.Getenv("TOKEN_TTL"), 7*24*time.Hour)
)

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RoleKey ContextKey = "role"

var Ctx = context.Background()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseTTL(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
