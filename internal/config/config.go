package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string

	// UpstreamBaseURL points at the quiz backend that owns quiz content,
	// grading and authentication. The portal never talks to a database of
	// its own.
	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	// RedisURL enables the quiz payload cache when set. Empty disables
	// caching entirely; every view then hits the upstream directly.
	RedisURL     string
	QuizCacheTTL time.Duration

	QuizPageSize       int
	AttemptTTL         time.Duration
	RecentResultsLimit int
	RateLimitPerMinute int

	// AllowedOrigins controls HTTP CORS. Empty slice means all origins are
	// permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible
// defaults. It loads .env if present but does not fail when missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "pretty"),
		UpstreamBaseURL:    getEnv("UPSTREAM_BASE_URL", "http://localhost:8000"),
		UpstreamTimeout:    time.Duration(getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,
		RedisURL:           getEnv("REDIS_URL", ""),
		QuizCacheTTL:       time.Duration(getEnvInt("QUIZ_CACHE_TTL_SECONDS", 600)) * time.Second,
		QuizPageSize:       getEnvInt("QUIZ_PAGE_SIZE", 5),
		AttemptTTL:         time.Duration(getEnvInt("ATTEMPT_TTL_MINUTES", 120)) * time.Minute,
		RecentResultsLimit: getEnvInt("RECENT_RESULTS_LIMIT", 5),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed
// slice. Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
