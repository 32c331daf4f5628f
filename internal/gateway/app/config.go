package app

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/voicelab/internal/gateway/domain"
	"github.com/aussiebroadwan/voicelab/pkg/httpx"
	"github.com/joho/godotenv"
)

// DefaultBackendURL is used when neither INTERNAL_API_URL nor PUBLIC_API_URL is set.
const DefaultBackendURL = "http://localhost:8000"

type Config struct {
	BackendURL          string        // Backend base URL (INTERNAL_API_URL, then PUBLIC_API_URL, default: http://localhost:8000)
	BackendTimeout      time.Duration // Optional: per-call timeout, 0 leaves it to the request context (default: 0)
	CookieSecure        bool          // Secure flag on the session cookie (default: true in prod)
	WebRoot             string        // Directory holding the page shells (default: ./web)
	LandingPath         string        // Where signed-in users are sent from /login (default: /providers)
	MaxTextLength       int           // Generation text limit in characters (default: 5000)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 3000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	RateLimits          httpx.RateLimitProfiles
}

// LoadConfig reads the environment, after loading .env from the working
// directory when one exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	env := getEnvOrDefault("ENV", "dev")

	cfg := Config{
		BackendURL:          resolveBackendURL(),
		BackendTimeout:      getEnvDurationOrDefault("BACKEND_TIMEOUT", 0),
		CookieSecure:        getEnvBoolOrDefault("COOKIE_SECURE", isProduction(env)),
		WebRoot:             getEnvOrDefault("WEB_ROOT", "web"),
		LandingPath:         getEnvOrDefault("LANDING_PATH", "/providers"),
		MaxTextLength:       getEnvIntOrDefault("MAX_TEXT_LENGTH", domain.DefaultMaxTextLength),
		Env:                 env,
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 3000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		RateLimits:          httpx.RateLimitProfilesFromEnv(),
	}

	return cfg, nil
}

// resolveBackendURL prefers the internal network address so containers talk
// to each other directly.
func resolveBackendURL() string {
	for _, key := range []string{"INTERNAL_API_URL", "PUBLIC_API_URL"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return strings.TrimSuffix(v, "/")
		}
	}
	return DefaultBackendURL
}

func isProduction(env string) bool {
	switch strings.ToLower(env) {
	case "prod", "production":
		return true
	}
	return false
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1m", "30s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
