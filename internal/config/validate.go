package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"quizkit/internal/quiz"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks the configuration values that have a closed set of spellings.
func Validate(cfg *Config) error {
	var issues []Issue
	if strings.TrimSpace(cfg.ServerAddr) == "" {
		issues = append(issues, Issue{Field: "SERVER_ADDR", Message: "is required"})
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		issues = append(issues, Issue{Field: "GIN_MODE", Message: fmt.Sprintf("unknown mode %q", cfg.GinMode)})
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		issues = append(issues, Issue{Field: "LOG_LEVEL", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)})
	}
	switch cfg.LogFormat {
	case "pretty", "json":
	default:
		issues = append(issues, Issue{Field: "LOG_FORMAT", Message: fmt.Sprintf("expected pretty or json, got %q", cfg.LogFormat)})
	}
	if _, err := quiz.ParseUnsupportedPolicy(cfg.UnsupportedPolicy); err != nil {
		issues = append(issues, Issue{Field: "QUIZ_UNSUPPORTED_POLICY", Message: err.Error()})
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
