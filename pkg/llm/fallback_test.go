package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name       string
	configured bool
	result     map[string]any
	err        error

	calls int
}

func (f *fakeProvider) Name() string       { return f.name }
func (f *fakeProvider) IsConfigured() bool { return f.configured }

func (f *fakeProvider) InvokeVision(context.Context, string, []byte) (map[string]any, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeProvider) InvokeText(context.Context, []Message) (map[string]any, error) {
	f.calls++
	return f.result, f.err
}

type mapCache struct {
	mu   sync.Mutex
	data map[string]string
	sets int
}

func newMapCache() *mapCache { return &mapCache{data: map[string]string{}} }

func (c *mapCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *mapCache) Set(_ context.Context, key, value string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
}

func TestRunVisionFirstProviderWins(t *testing.T) {
	primary := &fakeProvider{name: "Gemini", configured: true, result: map[string]any{"components": []any{}}}
	fallback := &fakeProvider{name: "OpenAI", configured: true, result: map[string]any{"components": []any{}}}

	result := RunVision(context.Background(), []Provider{primary, fallback}, "describe", []byte("img"), RunnerOptions{})

	require.False(t, IsErrorResult(result))
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls, "fallback must not be consulted when the primary succeeds")
}

func TestRunVisionFallsBackOnError(t *testing.T) {
	primary := &fakeProvider{name: "Gemini", configured: true, err: errors.New("rate limited")}
	fallback := &fakeProvider{name: "OpenAI", configured: true, result: map[string]any{"threats": []any{}}}

	result := RunVision(context.Background(), []Provider{primary, fallback}, "describe", []byte("img"), RunnerOptions{})

	require.False(t, IsErrorResult(result))
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestRunVisionExhaustion(t *testing.T) {
	primary := &fakeProvider{name: "Gemini", configured: true, err: errors.New("rate limited")}
	fallback := &fakeProvider{name: "OpenAI", configured: true, result: ErrorResult("OpenAI", "Invalid JSON response", "invalid_json")}

	result := RunVision(context.Background(), []Provider{primary, fallback}, "describe", []byte("img"), RunnerOptions{})

	require.True(t, IsErrorResult(result))
	assert.Equal(t, "All LLM providers failed", result["error"])

	engineErrors, ok := result["engine_errors"].([]any)
	require.True(t, ok)
	require.Len(t, engineErrors, 2)

	first := engineErrors[0].(map[string]any)
	assert.Equal(t, "Gemini", first["engine"])
	assert.Equal(t, "rate limited", first["error"])
	assert.Equal(t, "exception", first["error_type"])

	second := engineErrors[1].(map[string]any)
	assert.Equal(t, "OpenAI", second["engine"])
	assert.Equal(t, "Invalid JSON response", second["error"])
}

func TestRunVisionSkipsUnconfigured(t *testing.T) {
	primary := &fakeProvider{name: "Gemini", configured: false}
	fallback := &fakeProvider{name: "OpenAI", configured: true, result: map[string]any{"ok": true}}

	result := RunVision(context.Background(), []Provider{primary, fallback}, "describe", []byte("img"), RunnerOptions{})

	require.False(t, IsErrorResult(result))
	assert.Equal(t, 0, primary.calls, "unconfigured provider must never be invoked")
	assert.Equal(t, 1, fallback.calls)
}

func TestRunVisionUnconfiguredRecordedOnExhaustion(t *testing.T) {
	only := &fakeProvider{name: "Gemini", configured: false}

	result := RunVision(context.Background(), []Provider{only}, "describe", []byte("img"), RunnerOptions{})

	require.True(t, IsErrorResult(result))
	engineErrors := result["engine_errors"].([]any)
	require.Len(t, engineErrors, 1)
	entry := engineErrors[0].(map[string]any)
	assert.Equal(t, "Gemini", entry["engine"])
	assert.Equal(t, "not_configured", entry["error_type"])
}

func TestRunVisionCacheHitSkipsProviders(t *testing.T) {
	backend := newMapCache()
	provider := &fakeProvider{name: "Gemini", configured: true, result: map[string]any{"components": []any{}}}
	opts := RunnerOptions{Cache: backend, KeyPrefix: "diagram"}

	first := RunVision(context.Background(), []Provider{provider}, "describe", []byte("img"), opts)
	require.False(t, IsErrorResult(first))
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 1, backend.sets)

	second := RunVision(context.Background(), []Provider{provider}, "describe", []byte("img"), opts)
	require.False(t, IsErrorResult(second))
	assert.Equal(t, 1, provider.calls, "cache hit must not reach any provider")
}

func TestRunVisionErrorResultsNotCached(t *testing.T) {
	backend := newMapCache()
	provider := &fakeProvider{name: "Gemini", configured: true, err: errors.New("down")}

	result := RunVision(context.Background(), []Provider{provider}, "describe", []byte("img"), RunnerOptions{Cache: backend, KeyPrefix: "diagram"})

	require.True(t, IsErrorResult(result))
	assert.Equal(t, 0, backend.sets)
}

func TestRunVisionRejectsInvalidCachedEntry(t *testing.T) {
	backend := newMapCache()
	key := VisionFingerprint("stride", "analyze", []byte("img"))
	backend.Set(context.Background(), key, `{"error": "Invalid JSON response"}`, 0)
	backend.sets = 0

	provider := &fakeProvider{name: "Gemini", configured: true, result: map[string]any{"threats": []any{}}}

	result := RunVision(context.Background(), []Provider{provider}, "analyze", []byte("img"), RunnerOptions{Cache: backend, KeyPrefix: "stride"})

	require.False(t, IsErrorResult(result))
	assert.Equal(t, 1, provider.calls, "a cached error object must be treated as a miss")
}

func TestRunTextCustomValidator(t *testing.T) {
	incomplete := &fakeProvider{name: "Gemini", configured: true, result: map[string]any{"partial": true}}
	complete := &fakeProvider{name: "OpenAI", configured: true, result: map[string]any{"threats": []any{}}}

	opts := RunnerOptions{
		Validate: func(result map[string]any) bool {
			_, ok := result["threats"]
			return ok
		},
	}
	result := RunText(context.Background(), []Provider{incomplete, complete}, []Message{{Role: "user", Content: "hi"}}, opts)

	require.Contains(t, result, "threats")
	assert.Equal(t, 1, incomplete.calls)
	assert.Equal(t, 1, complete.calls)
}

func TestVisionFingerprintStability(t *testing.T) {
	a := VisionFingerprint("diagram", "describe", []byte{1, 2, 3})
	b := VisionFingerprint("diagram", "describe", []byte{1, 2, 3})
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, VisionFingerprint("diagram", "describe", []byte{1, 2, 4}))
	assert.NotEqual(t, a, VisionFingerprint("diagram", "other prompt", []byte{1, 2, 3}))
	assert.NotEqual(t, a, VisionFingerprint("stride", "describe", []byte{1, 2, 3}))
}

func TestTextFingerprintStability(t *testing.T) {
	msgs := []Message{
		{Role: "system", Content: "you are a threat modeler"},
		{Role: "user", Content: "analyze this"},
	}
	a := TextFingerprint("dread", msgs)
	b := TextFingerprint("dread", []Message{
		{Role: "system", Content: "you are a threat modeler"},
		{Role: "user", Content: "analyze this"},
	})
	assert.Equal(t, a, b)

	swapped := TextFingerprint("dread", []Message{msgs[1], msgs[0]})
	assert.NotEqual(t, a, swapped, "message order is significant")
}
