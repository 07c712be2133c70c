package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/newsdesk/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma separated variable, trimming each entry.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	s := MustGetEnvAsString(ctx, name)

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	s := MustGetEnvAsString(ctx, name)
	return mustParseInt(ctx, name, s)
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	s := MustGetEnvAsString(ctx, name)

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	s := MustGetEnvAsString(ctx, name)
	return mustParseDuration(ctx, name, s)
}

func GetEnvAsStringOrDefault(name, def string) string {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}
	return s
}

// GetEnvAsIntOrDefault returns def when name is unset or empty, and panics when it is
// set to something that is not an integer.
func GetEnvAsIntOrDefault(ctx context.Context, name string, def int) int {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}
	return mustParseInt(ctx, name, s)
}

// GetEnvAsDurationOrDefault returns def when name is unset or empty, and panics when it
// is set to something that is not a duration.
func GetEnvAsDurationOrDefault(ctx context.Context, name string, def time.Duration) time.Duration {
	s, exists := os.LookupEnv(name)
	if !exists || s == "" {
		return def
	}
	return mustParseDuration(ctx, name, s)
}

func mustParseInt(ctx context.Context, name, s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func mustParseDuration(ctx context.Context, name, s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}
