package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string
	HTTPTimeout time.Duration
	SessionFile string

	// Stub server settings, used only by feedback-stub.
	StubHTTPAddr      string
	JWTSecret         string
	JWTIssuer         string
	AccessTokenTTL    time.Duration
	StubAdminEmail    string
	StubAdminPassword string
}

func Load() Config {
	// A .env next to the working directory is optional; real env vars win.
	_ = godotenv.Load()

	return Config{
		APIBaseURL:        strings.TrimRight(getenv("FEEDBACK_API_URL", "http://localhost:3000"), "/"),
		HTTPTimeout:       getenvDuration("FEEDBACK_HTTP_TIMEOUT", 10*time.Second),
		SessionFile:       getenv("FEEDBACK_SESSION_FILE", defaultSessionFile()),
		StubHTTPAddr:      getenv("STUB_HTTP_ADDR", ":3000"),
		JWTSecret:         getenv("JWT_SECRET", "dev-secret"),
		JWTIssuer:         getenv("JWT_ISSUER", "feedback-stub"),
		AccessTokenTTL:    getenvDuration("ACCESS_TOKEN_TTL", 24*time.Hour),
		StubAdminEmail:    getenv("STUB_ADMIN_EMAIL", "admin@example.com"),
		StubAdminPassword: getenv("STUB_ADMIN_PASSWORD", "admin123"),
	}
}

func defaultSessionFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".feedbackctl-session.json"
	}
	return filepath.Join(configDir, "feedbackctl", "session.json")
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
