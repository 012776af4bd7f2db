// Package agents implements the LLM-backed stages of the analysis
// pipeline: diagram extraction, STRIDE enumeration, DREAD scoring, and the
// architecture-diagram guardrail. Each agent runs the ordered provider
// fallback chain and converts exhaustion into a typed error.
package agents

import (
	"context"
	"time"

	"github.com/stridesec/threatmodel/pkg/cache"
	"github.com/stridesec/threatmodel/pkg/llm"
)

// Deps bundles what every agent needs: the ordered provider chain and the
// fingerprint cache configuration.
type Deps struct {
	Providers []llm.Provider
	Cache     cache.Backend
	CacheTTL  time.Duration
}

func (d Deps) options(keyPrefix string, validate llm.Validator) llm.RunnerOptions {
	return llm.RunnerOptions{
		Cache:     d.Cache,
		KeyPrefix: keyPrefix,
		CacheTTL:  d.CacheTTL,
		Validate:  validate,
	}
}

// exhausted converts an all-providers-failed result into the typed error
// agents surface to the pipeline.
func exhausted(result map[string]any) *llm.ExhaustedError {
	engineErrors, _ := result["engine_errors"].([]any)
	return &llm.ExhaustedError{EngineErrors: engineErrors}
}

// DiagramAgent extracts components and connections from an architecture
// diagram image.
type DiagramAgent struct {
	deps Deps
}

// NewDiagramAgent builds the stage-1 agent.
func NewDiagramAgent(deps Deps) *DiagramAgent {
	return &DiagramAgent{deps: deps}
}

// Analyze runs the vision extraction and returns the raw diagram map. A
// result is acceptable only when it carries a components or connections
// key; anything else counts as a failed attempt so the next provider is
// tried.
func (a *DiagramAgent) Analyze(ctx context.Context, image []byte) (map[string]any, error) {
	opts := a.deps.options("diagram", func(result map[string]any) bool {
		if llm.IsErrorResult(result) {
			return false
		}
		_, hasComponents := result["components"]
		_, hasConnections := result["connections"]
		return hasComponents || hasConnections
	})

	result := llm.RunVision(ctx, a.deps.Providers, diagramPrompt, image, opts)
	if llm.IsErrorResult(result) {
		return nil, exhausted(result)
	}
	return result, nil
}
