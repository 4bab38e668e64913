package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer   string // Issuer claim for session tokens (default: spendly)
	Audience string // Audience claim for session tokens (default: spendly)
	NumKeys  int    // Optional: number of signing keys to generate (default: 3, min: 1, max: 10)

	DatabaseFile string // Path to SQLite database file (default: ./spendly.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	CORSOrigins []string // Allowed browser origins (default: *)

	LLMBaseURL string // Chat-completion API base URL (default: https://api.openai.com/v1)
	LLMAPIKey  string // Required for the chat endpoint
	LLMModel   string // Completion model (default: gpt-4o-mini)

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)

	Port                  int           // HTTP server port (default: 8080)
	ShutdownGracePeriod   time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval  time.Duration // Housekeeping interval (default: 1h)
	ConversationRetention time.Duration // How long chat history is kept (default: 720h)
}

// LoadConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present, so local development does
// not need exported variables.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Issuer:   getEnvOrDefault("SPENDLY_ISSUER", "spendly"),
		Audience: getEnvOrDefault("SPENDLY_AUDIENCE", "spendly"),

		DatabaseFile: getEnvOrDefault("SPENDLY_DATABASE_FILE", "spendly.db"),
		PepperFile:   getEnvOrDefault("SPENDLY_PEPPER_FILE", "pepper"),

		CORSOrigins: splitCommaList(getEnvOrDefault("SPENDLY_CORS_ORIGINS", "*")),

		LLMBaseURL: getEnvOrDefault("SPENDLY_LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:  os.Getenv("SPENDLY_LLM_API_KEY"),
		LLMModel:   getEnvOrDefault("SPENDLY_LLM_MODEL", "gpt-4o-mini"),

		Env:       getEnvOrDefault("ENV", "dev"),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),

		Port:                  getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:   getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval:  getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		ConversationRetention: getEnvDurationOrDefault("SPENDLY_CONVERSATION_RETENTION", 30*24*time.Hour),
	}

	// Parse number of keys (default handled in KeyManager)
	if numKeysStr := os.Getenv("SPENDLY_NUM_KEYS"); numKeysStr != "" {
		if numKeys, err := strconv.Atoi(numKeysStr); err == nil {
			cfg.NumKeys = numKeys
		}
	}

	return cfg
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
