package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id.apps.googleusercontent.com")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "Records", cfg.Sheets.RecordsSheet)
	assert.Equal(t, "Users", cfg.Sheets.UsersSheet)
	assert.Equal(t, "AuditLog", cfg.Sheets.AuditSheet)
	assert.Equal(t, time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, float64(100), cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv_MissingSpreadsheet(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPREADSHEET_ID")
}

func TestLoadFromEnv_InsecureDefaultsWarn(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("GOOGLE_CLIENT_ID", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Len(t, cfg.Warnings, 2)
}

func TestLoadFromEnv_ProductionChecks(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name: "default secret rejected",
			env: map[string]string{
				"GOOGLE_CLIENT_ID":     "client-id",
				"CORS_ALLOWED_ORIGINS": "https://registry.example.com",
			},
			wantErr: "SESSION_SECRET",
		},
		{
			name: "missing client id rejected",
			env: map[string]string{
				"SESSION_SECRET":       "prod-secret",
				"CORS_ALLOWED_ORIGINS": "https://registry.example.com",
			},
			wantErr: "GOOGLE_CLIENT_ID",
		},
		{
			name: "cors wildcard rejected",
			env: map[string]string{
				"SESSION_SECRET":   "prod-secret",
				"GOOGLE_CLIENT_ID": "client-id",
			},
			wantErr: "CORS wildcard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENV", "production")
			t.Setenv("SPREADSHEET_ID", "sheet-123")
			t.Setenv("SESSION_SECRET", "")
			t.Setenv("GOOGLE_CLIENT_ID", "")
			t.Setenv("CORS_ALLOWED_ORIGINS", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("GOOGLE_CLIENT_ID", "c")
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("RECORDS_SHEET", "Penduduk")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "Penduduk", cfg.Sheets.RecordsSheet)
	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, float64(5), cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEBUG", (&Config{LogLevel: "debug"}).SlogLevel().String())
	assert.Equal(t, "WARN", (&Config{LogLevel: "warning"}).SlogLevel().String())
	assert.Equal(t, "ERROR", (&Config{LogLevel: "error"}).SlogLevel().String())
	assert.Equal(t, "INFO", (&Config{LogLevel: "anything"}).SlogLevel().String())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nFOO_FROM_FILE=bar\nQUOTED='hello world'\nEXISTING=from-file\n\nnot a kv line\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("EXISTING", "from-env")
	t.Setenv("FOO_FROM_FILE", "")
	t.Setenv("QUOTED", "")

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "bar", os.Getenv("FOO_FROM_FILE"))
	assert.Equal(t, "hello world", os.Getenv("QUOTED"))
	assert.Equal(t, "from-env", os.Getenv("EXISTING"), "env vars take precedence")

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")), "missing file is not an error")
}
