package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/stridesec/threatmodel/pkg/cache"
)

// Validator decides whether a provider result is acceptable. The default
// accepts anything that is not an error object.
type Validator func(map[string]any) bool

// RunnerOptions tune one fallback run.
type RunnerOptions struct {
	// Cache is consulted before any provider call and updated best-effort
	// after a valid result. Nil disables caching.
	Cache cache.Backend

	// KeyPrefix namespaces the fingerprint (e.g. "diagram", "stride").
	KeyPrefix string

	// CacheTTL bounds cached entries. Zero means no expiry.
	CacheTTL time.Duration

	// Validate overrides the default "not an error object" check.
	Validate Validator
}

func (o RunnerOptions) validator() Validator {
	if o.Validate != nil {
		return o.Validate
	}
	return func(result map[string]any) bool { return !IsErrorResult(result) }
}

// RunVision tries each provider in order with a vision invocation and
// returns the first valid result. On exhaustion it returns
// {"error": "All LLM providers failed", "engine_errors": [...]}.
func RunVision(ctx context.Context, providers []Provider, prompt string, image []byte, opts RunnerOptions) map[string]any {
	fingerprint := VisionFingerprint(opts.KeyPrefix, prompt, image)
	return run(ctx, providers, fingerprint, opts, func(ctx context.Context, p Provider) (map[string]any, error) {
		return p.InvokeVision(ctx, prompt, image)
	})
}

// RunText tries each provider in order with a text invocation.
func RunText(ctx context.Context, providers []Provider, messages []Message, opts RunnerOptions) map[string]any {
	fingerprint := TextFingerprint(opts.KeyPrefix, messages)
	return run(ctx, providers, fingerprint, opts, func(ctx context.Context, p Provider) (map[string]any, error) {
		return p.InvokeText(ctx, messages)
	})
}

func run(ctx context.Context, providers []Provider, fingerprint string, opts RunnerOptions, invoke func(context.Context, Provider) (map[string]any, error)) map[string]any {
	validate := opts.validator()

	if cached, ok := cacheLookup(ctx, opts.Cache, fingerprint); ok && validate(cached) {
		slog.Info("Returning cached LLM result", "fingerprint", fingerprint)
		return cached
	}

	var engineErrors []any
	for _, provider := range providers {
		log := slog.With("engine", provider.Name())

		if !provider.IsConfigured() {
			log.Debug("Skipping unconfigured LLM provider")
			engineErrors = append(engineErrors, map[string]any{
				"engine":     provider.Name(),
				"error":      "provider is not configured",
				"error_type": "not_configured",
			})
			continue
		}

		log.Info("Trying LLM provider")
		start := time.Now()
		result, err := invoke(ctx, provider)
		elapsed := time.Since(start)

		if err != nil {
			log.Warn("LLM provider failed", "elapsed", elapsed, "error", err)
			engineErrors = append(engineErrors, map[string]any{
				"engine":     provider.Name(),
				"error":      err.Error(),
				"error_type": "exception",
			})
			continue
		}

		if validate(result) {
			log.Info("LLM provider succeeded", "elapsed", elapsed)
			cacheStore(ctx, opts.Cache, fingerprint, result, opts.CacheTTL)
			return result
		}

		log.Warn("LLM provider result failed validation", "elapsed", elapsed)
		engineErrors = append(engineErrors, engineError(provider.Name(), result))
	}

	return map[string]any{
		"error":         "All LLM providers failed",
		"engine_errors": engineErrors,
	}
}

// engineError records a validation failure: the result itself when it
// carries an error string, a generic marker otherwise.
func engineError(engine string, result map[string]any) map[string]any {
	entry := map[string]any{"engine": engine}
	if msg, ok := result["error"].(string); ok {
		for k, v := range result {
			entry[k] = v
		}
		entry["error"] = msg
		return entry
	}
	entry["error"] = "validation failed"
	entry["error_type"] = "validation"
	return entry
}

func cacheLookup(ctx context.Context, backend cache.Backend, key string) (map[string]any, bool) {
	if backend == nil {
		return nil, false
	}
	raw, ok := backend.Get(ctx, key)
	if !ok {
		return nil, false
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		slog.Debug("Discarding unreadable cache entry", "key", key, "error", err)
		return nil, false
	}
	return result, true
}

func cacheStore(ctx context.Context, backend cache.Backend, key string, result map[string]any, ttl time.Duration) {
	if backend == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		slog.Debug("Failed to serialize result for cache", "key", key, "error", err)
		return
	}
	backend.Set(ctx, key, string(data), ttl)
}

// VisionFingerprint derives the cache key for a vision request. The hash
// covers the prefix, the prompt, and the raw image bytes.
func VisionFingerprint(prefix, prompt string, image []byte) string {
	h := sha256.New()
	_, _ = io.WriteString(h, prefix)
	h.Write([]byte{0})
	_, _ = io.WriteString(h, prompt)
	h.Write([]byte{0})
	h.Write(image)
	return cacheKey(prefix, h.Sum(nil))
}

// TextFingerprint derives the cache key for a text request. Messages are
// serialized with keys sorted and no extraneous whitespace so equivalent
// requests always hash identically.
func TextFingerprint(prefix string, messages []Message) string {
	canonical := make([]map[string]string, 0, len(messages))
	for _, m := range messages {
		canonical = append(canonical, map[string]string{
			"content": m.Content,
			"role":    m.Role,
		})
	}
	// encoding/json emits map keys in sorted order.
	data, _ := json.Marshal(canonical)

	h := sha256.New()
	_, _ = io.WriteString(h, prefix)
	h.Write([]byte{0})
	h.Write(data)
	return cacheKey(prefix, h.Sum(nil))
}

func cacheKey(prefix string, sum []byte) string {
	return "llm:" + prefix + ":" + hex.EncodeToString(sum)
}
