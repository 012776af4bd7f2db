// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration for both services.
type Config struct {
	Upload    *UploadConfig
	LLM       *LLMConfig
	Queue     *QueueConfig
	Guardrail *GuardrailConfig

	// AnalyzerURL is the base URL of the analyzer service, called by workers.
	AnalyzerURL string

	// RedisURL enables the Redis-backed LLM fingerprint cache when set.
	RedisURL string

	// CacheTTL bounds how long cached LLM results live. Zero means no expiry.
	CacheTTL time.Duration

	// CORSOrigins is the comma-separated allow-list from CORS_ORIGINS.
	CORSOrigins []string
}

// UploadConfig controls upload validation and image storage.
type UploadConfig struct {
	Dir          string
	MaxSizeMB    int
	AllowedTypes []string
}

// MaxSizeBytes returns the upload size limit in bytes.
func (c *UploadConfig) MaxSizeBytes() int64 {
	return int64(c.MaxSizeMB) * 1024 * 1024
}

// TypeAllowed reports whether the detected MIME type is in the allowed set.
func (c *UploadConfig) TypeAllowed(mime string) bool {
	for _, t := range c.AllowedTypes {
		if t == mime {
			return true
		}
	}
	return false
}

// LLMConfig holds provider credentials, model identifiers, and call limits.
type LLMConfig struct {
	OpenAIAPIKey string
	GoogleAPIKey string

	// PrimaryModel is used by the primary (Gemini) provider,
	// FallbackModel by the fallback (OpenAI) provider.
	PrimaryModel  string
	FallbackModel string

	Temperature float64

	// Per-invocation timeouts. A provider exceeding its budget is treated
	// as failed and the next provider is tried.
	TextTimeout   time.Duration
	VisionTimeout time.Duration
}

// QueueConfig contains queue and worker pool configuration.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	WorkerCount int

	// MaxConcurrentJobs is the global limit of jobs being processed across
	// all replicas. Enforced by a database COUNT(*) check.
	MaxConcurrentJobs int

	// PollInterval is the base interval for checking OPEN analyses.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout is the per-job wall-clock budget. On expiry the job is
	// marked FAILED with a timeout reason.
	JobTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active jobs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             2,
		MaxConcurrentJobs:       4,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
	}
}

// GuardrailConfig controls the architecture-diagram precondition check.
type GuardrailConfig struct {
	Enabled   bool
	Threshold float64
}

// DefaultAllowedImageTypes is the default ALLOWED_IMAGE_TYPES value.
const DefaultAllowedImageTypes = "image/png,image/jpeg,image/webp,image/gif"

// LoadFromEnv builds a Config from environment variables, applying defaults
// for everything that is not set.
func LoadFromEnv() (*Config, error) {
	maxSizeMB, err := envInt("MAX_UPLOAD_SIZE_MB", 10)
	if err != nil {
		return nil, err
	}

	temperature, err := envFloat("LLM_TEMPERATURE", 0.2)
	if err != nil {
		return nil, err
	}

	textTimeout, err := envDuration("LLM_TEXT_TIMEOUT", 60*time.Second)
	if err != nil {
		return nil, err
	}
	visionTimeout, err := envDuration("LLM_VISION_TIMEOUT", 120*time.Second)
	if err != nil {
		return nil, err
	}

	queue := DefaultQueueConfig()
	if queue.WorkerCount, err = envInt("WORKER_COUNT", queue.WorkerCount); err != nil {
		return nil, err
	}
	if queue.JobTimeout, err = envDuration("JOB_TIMEOUT", queue.JobTimeout); err != nil {
		return nil, err
	}
	queue.GracefulShutdownTimeout = queue.JobTimeout

	threshold, err := envFloat("GUARDRAIL_THRESHOLD", 0.5)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := envDuration("CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	return &Config{
		Upload: &UploadConfig{
			Dir:          envString("UPLOAD_DIR", "uploads"),
			MaxSizeMB:    maxSizeMB,
			AllowedTypes: splitAndTrim(envString("ALLOWED_IMAGE_TYPES", DefaultAllowedImageTypes)),
		},
		LLM: &LLMConfig{
			OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
			GoogleAPIKey:  os.Getenv("GOOGLE_API_KEY"),
			PrimaryModel:  envString("PRIMARY_MODEL", "gemini-1.5-pro"),
			FallbackModel: envString("FALLBACK_MODEL", "gpt-4o"),
			Temperature:   temperature,
			TextTimeout:   textTimeout,
			VisionTimeout: visionTimeout,
		},
		Queue: queue,
		Guardrail: &GuardrailConfig{
			Enabled:   envBool("GUARDRAIL_ENABLED", true),
			Threshold: threshold,
		},
		AnalyzerURL: envString("ANALYZER_URL", "http://localhost:8001"),
		RedisURL:    os.Getenv("REDIS_URL"),
		CacheTTL:    cacheTTL,
		CORSOrigins: splitAndTrim(envString("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}, nil
}

func envString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func envDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func envBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
