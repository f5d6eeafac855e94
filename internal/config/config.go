// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string of the unit catalog. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:8081"] (Expo dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SessionTTL is how long an idle registration session is kept. Defaults to 30m.
	SessionTTL time.Duration

	// BarcodeConfirmDelay and RecipientIntroDelay are the auto-advance
	// delays of the two fixed-delay phases. Default to 3s and 2s.
	BarcodeConfirmDelay time.Duration
	RecipientIntroDelay time.Duration

	// AutoAdvance enables server-side timer delivery. Defaults to true.
	AutoAdvance bool

	// SubmissionURL is the endpoint completed registrations are POSTed to.
	// When empty, submissions are only logged.
	SubmissionURL string

	// SubmissionAPIKey is sent as X-API-Key to SubmissionURL. Optional.
	SubmissionAPIKey string

	// SubmissionTimeout bounds each submission request. Defaults to 10s.
	SubmissionTimeout time.Duration

	// MaxBodyBytes limits request bodies. Defaults to 64 KiB.
	MaxBodyBytes int64

	// MigrateOnStart applies pending migrations at boot. Defaults to true.
	MigrateOnStart bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set and any
// values that cannot be parsed.
func Load() (Config, error) {
	var p parser
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		CORSOrigins:         splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8081")),
		SessionTTL:          p.duration("SESSION_TTL", 30*time.Minute),
		BarcodeConfirmDelay: p.duration("BARCODE_CONFIRM_DELAY", 3*time.Second),
		RecipientIntroDelay: p.duration("RECIPIENT_INTRO_DELAY", 2*time.Second),
		AutoAdvance:         p.boolean("AUTO_ADVANCE", true),
		SubmissionURL:       os.Getenv("SUBMISSION_URL"),
		SubmissionAPIKey:    os.Getenv("SUBMISSION_API_KEY"),
		SubmissionTimeout:   p.duration("SUBMISSION_TIMEOUT", 10*time.Second),
		MaxBodyBytes:        p.integer("MAX_BODY_BYTES", 64<<10),
		MigrateOnStart:      p.boolean("MIGRATE_ON_START", true),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	var errs []error
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", ")))
	}
	errs = append(errs, p.errs...)
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parser reads typed variables and collects every parse failure so Load
// can report them together.
type parser struct {
	errs []error
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return fallback
	}
	return d
}

func (p *parser) boolean(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid boolean %q", key, v))
		return fallback
	}
	return b
}

func (p *parser) integer(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid positive integer %q", key, v))
		return fallback
	}
	return n
}
