package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"quizkit/internal/quiz"
)

// Config holds all application configuration.
type Config struct {
	ServerAddr string
	GinMode    string
	LogLevel   string
	LogFormat  string
	// BankPath is the question bank file. Empty selects the embedded bank.
	BankPath string
	// Strict rejects banks that fail validation before serving them.
	Strict            bool
	UnsupportedPolicy string
	// AllowedOrigins controls CORS on the API. Empty means all origins are permitted.
	AllowedOrigins []string
}

// Load reads configuration from environment variables with defaults.
// The given env files (or .env when none are given) are loaded first if present.
func Load(files ...string) *Config {
	_ = godotenv.Load(files...) // env files are optional

	return &Config{
		ServerAddr:        getEnv("SERVER_ADDR", ":8080"),
		GinMode:           getEnv("GIN_MODE", "release"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "pretty"),
		BankPath:          getEnv("QUIZ_BANK", ""),
		Strict:            getEnvBool("QUIZ_STRICT", false),
		UnsupportedPolicy: getEnv("QUIZ_UNSUPPORTED_POLICY", quiz.UnsupportedBlock.String()),
		AllowedOrigins:    parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

// Policy returns the parsed unsupported question policy, falling back to block.
func (cfg *Config) Policy() quiz.UnsupportedPolicy {
	policy, err := quiz.ParseUnsupportedPolicy(cfg.UnsupportedPolicy)
	if err != nil {
		return quiz.UnsupportedBlock
	}
	return policy
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
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
