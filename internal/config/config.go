package config

import (
	"os"
	"strings"
	"time"
)

// Config is the single place the environment is read. Every store and
// service receives what it needs from here; there are no package-level
// secrets or database handles.
type Config struct {
	Port           string
	DBPath         string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
}

func Load() *Config {
	cfg := &Config{
		Port:      getEnv("PORT", "5000"),
		DBPath:    getEnv("DB_PATH", "globetrotter.db"),
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenTTL:  7 * 24 * time.Hour,
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS",
			"http://localhost:5173,http://localhost:3000")),
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			cfg.TokenTTL = parsed
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
