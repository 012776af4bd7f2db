package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, 10, cfg.Upload.MaxSizeMB)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxSizeBytes())
	assert.Equal(t, []string{"image/png", "image/jpeg", "image/webp", "image/gif"}, cfg.Upload.AllowedTypes)

	assert.Equal(t, "gemini-1.5-pro", cfg.LLM.PrimaryModel)
	assert.Equal(t, "gpt-4o", cfg.LLM.FallbackModel)
	assert.Equal(t, 0.2, cfg.LLM.Temperature)
	assert.Equal(t, 60*time.Second, cfg.LLM.TextTimeout)
	assert.Equal(t, 120*time.Second, cfg.LLM.VisionTimeout)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 10*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, cfg.Queue.JobTimeout, cfg.Queue.GracefulShutdownTimeout)

	assert.True(t, cfg.Guardrail.Enabled)
	assert.Equal(t, 0.5, cfg.Guardrail.Threshold)

	assert.Equal(t, "http://localhost:8001", cfg.AnalyzerURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("UPLOAD_DIR", "/var/lib/uploads")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "25")
	t.Setenv("ALLOWED_IMAGE_TYPES", "image/png, image/webp")
	t.Setenv("PRIMARY_MODEL", "gemini-2.0-flash")
	t.Setenv("LLM_TEMPERATURE", "0.7")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("JOB_TIMEOUT", "5m")
	t.Setenv("GUARDRAIL_ENABLED", "false")
	t.Setenv("GUARDRAIL_THRESHOLD", "0.9")
	t.Setenv("ANALYZER_URL", "http://analyzer:8001")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("CORS_ORIGINS", "https://threats.example.com")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/uploads", cfg.Upload.Dir)
	assert.Equal(t, 25, cfg.Upload.MaxSizeMB)
	assert.Equal(t, []string{"image/png", "image/webp"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.PrimaryModel)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 8, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.JobTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Queue.GracefulShutdownTimeout)
	assert.False(t, cfg.Guardrail.Enabled)
	assert.Equal(t, 0.9, cfg.Guardrail.Threshold)
	assert.Equal(t, "http://analyzer:8001", cfg.AnalyzerURL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, []string{"https://threats.example.com"}, cfg.CORSOrigins)
}

func TestLoadFromEnvInvalidValues(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE_MB", "lots")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MAX_UPLOAD_SIZE_MB")
}

func TestLoadFromEnvInvalidDuration(t *testing.T) {
	t.Setenv("JOB_TIMEOUT", "ten minutes")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JOB_TIMEOUT")
}

func TestTypeAllowed(t *testing.T) {
	cfg := &UploadConfig{AllowedTypes: []string{"image/png", "image/jpeg"}}

	assert.True(t, cfg.TypeAllowed("image/png"))
	assert.False(t, cfg.TypeAllowed("image/gif"))
	assert.False(t, cfg.TypeAllowed(""))
}
