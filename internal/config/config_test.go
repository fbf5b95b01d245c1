package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testpro/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.Server.Port)
	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes())
	assert.Equal(t, 100, cfg.Upload.MinTextChars)
	assert.False(t, cfg.DB.Enabled)
	assert.Equal(t, "noop", cfg.Storage.Provider)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:5173")
	assert.Zero(t, cfg.Generator.MaxQuestions)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TESTPRO_SERVER_PORT", ":9000")
	t.Setenv("TESTPRO_UPLOAD_MAX_FILE_SIZE_MB", "5")
	t.Setenv("TESTPRO_DB_ENABLED", "true")
	t.Setenv("TESTPRO_DB_HOST", "db.internal")
	t.Setenv("TESTPRO_GENERATOR_MAX_QUESTIONS", "12")
	t.Setenv("TESTPRO_LOG_LEVEL", "DEBUG")
	t.Setenv("TESTPRO_CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Port)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes())
	assert.True(t, cfg.DB.Enabled)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 12, cfg.Generator.MaxQuestions)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TESTPRO_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPlatformPort(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TESTPRO_SERVER_PORT", ":4000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Server.Port)
}

func TestLoad_RejectsNonPositiveUploadLimit(t *testing.T) {
	t.Setenv("TESTPRO_UPLOAD_MAX_FILE_SIZE_MB", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	d := config.DBConfig{Host: "h", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@h:5433/n?sslmode=require", d.DSN())
}
