// Package llm provides the LLM provider abstraction, the ordered-fallback
// runner, and the request fingerprint cache used by the analysis pipeline.
package llm

import (
	"context"
	"fmt"
)

// Message is one chat-style message for text invocations.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider is the capability set every LLM vendor adapter implements.
// Adapters construct their network client lazily: no credential check or
// connection happens before the first invocation.
//
// Invocations return either a parsed JSON object or an error object of the
// shape {"error": ..., "error_type": ..., "service": ...}. A transport-level
// failure is returned as a Go error instead.
type Provider interface {
	Name() string

	// IsConfigured returns true only when all required secrets are present.
	IsConfigured() bool

	InvokeVision(ctx context.Context, prompt string, image []byte) (map[string]any, error)
	InvokeText(ctx context.Context, messages []Message) (map[string]any, error)
}

// IsErrorResult reports whether a provider result is an error object.
func IsErrorResult(result map[string]any) bool {
	_, ok := result["error"]
	return ok
}

// ErrorResult builds a provider error object.
func ErrorResult(service, message, errorType string) map[string]any {
	return map[string]any{
		"error":      message,
		"error_type": errorType,
		"service":    service,
	}
}

// ExhaustedError is returned by agents when every provider in the fallback
// chain failed. EngineErrors carries one entry per attempted provider.
type ExhaustedError struct {
	EngineErrors []any
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all LLM providers failed (%d engines tried)", len(e.EngineErrors))
}
