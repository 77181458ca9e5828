// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// SheetsConfig names the spreadsheet and its tabs.
type SheetsConfig struct {
	SpreadsheetID   string // target spreadsheet
	CredentialsFile string // service account key file (empty = application default credentials)
	RecordsSheet    string // records tab name (default "Records")
	UsersSheet      string // users tab name (default "Users")
	AuditSheet      string // audit tab name (default "AuditLog")
}

// AuthConfig holds identity provider and session configuration.
type AuthConfig struct {
	GoogleClientID string        // OAuth client id, required audience of incoming ID tokens
	SessionSecret  string        // HS256 secret for session credentials
	SessionTTL     time.Duration // session lifetime (default 1h)
}

// Config holds the configuration for the HTTP API.
type Config struct {
	ListenAddr string // HTTP listen address (default ":8080")
	LogLevel   string // log level: debug, info, warn, error (default "info")
	Env        string // environment: "development" (default) or "production"

	// Rate limiting
	RateLimitRPS   float64 // sustained requests per second (default 100)
	RateLimitBurst int     // burst capacity (default 200)

	// CORS
	CORSAllowedOrigins []string // allowed origins (default: ["*"])

	Sheets SheetsConfig
	Auth   AuthConfig

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		ListenAddr: os.Getenv("LISTEN_ADDR"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
		Env:        os.Getenv("ENV"),
		Sheets: SheetsConfig{
			SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
			CredentialsFile: os.Getenv("SHEETS_CREDENTIALS_FILE"),
			RecordsSheet:    os.Getenv("RECORDS_SHEET"),
			UsersSheet:      os.Getenv("USERS_SHEET"),
			AuditSheet:      os.Getenv("AUDIT_SHEET"),
		},
		Auth: AuthConfig{
			GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
			SessionSecret:  os.Getenv("SESSION_SECRET"),
		},
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Auth.SessionTTL = d
		}
	}

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 100
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 200
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
	if cfg.Sheets.RecordsSheet == "" {
		cfg.Sheets.RecordsSheet = "Records"
	}
	if cfg.Sheets.UsersSheet == "" {
		cfg.Sheets.UsersSheet = "Users"
	}
	if cfg.Sheets.AuditSheet == "" {
		cfg.Sheets.AuditSheet = "AuditLog"
	}
	if cfg.Auth.SessionTTL == 0 {
		cfg.Auth.SessionTTL = time.Hour
	}

	if cfg.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is required")
	}
	if cfg.Auth.SessionSecret == "" {
		cfg.Auth.SessionSecret = "dev-secret-change-in-production"
		cfg.Warnings = append(cfg.Warnings, "SESSION_SECRET not set — using insecure default. Set SESSION_SECRET in production!")
	}
	if cfg.Auth.GoogleClientID == "" {
		cfg.Warnings = append(cfg.Warnings, "GOOGLE_CLIENT_ID not set — Google login will reject every token")
	}

	// Production mode: insecure defaults are fatal errors.
	if cfg.IsProduction() {
		if cfg.Auth.SessionSecret == "dev-secret-change-in-production" {
			return nil, fmt.Errorf("SESSION_SECRET must be set in production (ENV=production)")
		}
		if cfg.Auth.GoogleClientID == "" {
			return nil, fmt.Errorf("GOOGLE_CLIENT_ID must be set in production (ENV=production)")
		}
		if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
			return nil, fmt.Errorf("CORS wildcard (*) is not allowed in production (ENV=production)")
		}
	}

	return cfg, nil
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. Lines must be in KEY=VALUE format. Comments (#) and blank
// lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = stripQuotes(strings.TrimSpace(value))
		// Env vars take precedence over the file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
