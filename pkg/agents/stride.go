package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stridesec/threatmodel/pkg/llm"
)

// StrideAgent enumerates threats for an extracted architecture using the
// STRIDE categories.
type StrideAgent struct {
	deps Deps
}

// NewStrideAgent builds the stage-2 agent.
func NewStrideAgent(deps Deps) *StrideAgent {
	return &StrideAgent{deps: deps}
}

// Analyze serializes the diagram data and asks the provider chain for a
// threat list. Returns raw threat maps; normalization happens later.
func (a *StrideAgent) Analyze(ctx context.Context, diagram map[string]any) ([]map[string]any, error) {
	payload, err := json.Marshal(map[string]any{
		"components":  diagram["components"],
		"connections": diagram["connections"],
	})
	if err != nil {
		return nil, fmt.Errorf("serializing diagram data: %w", err)
	}

	messages := []llm.Message{
		{Role: "system", Content: strideSystemPrompt},
		{Role: "user", Content: "Architecture:\n" + string(payload)},
	}

	opts := a.deps.options("stride", func(result map[string]any) bool {
		return !llm.IsErrorResult(result) && len(threatList(result)) > 0
	})

	result := llm.RunText(ctx, a.deps.Providers, messages, opts)
	if llm.IsErrorResult(result) {
		return nil, exhausted(result)
	}

	threats := threatList(result)
	slog.Info("STRIDE enumeration produced threats", "count", len(threats))
	return threats, nil
}

// threatList pulls the threat maps out of a provider result, accepting
// both the documented "threats" key and a bare top-level array (which the
// response parser wraps under "items"). Non-map entries are dropped.
func threatList(result map[string]any) []map[string]any {
	raw, ok := result["threats"].([]any)
	if !ok {
		raw, ok = result["items"].([]any)
	}
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
