package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/stridesec/threatmodel/pkg/llm"
)

// DreadAgent attaches DREAD scores to an enumerated threat list.
type DreadAgent struct {
	deps Deps
}

// NewDreadAgent builds the stage-3 agent.
func NewDreadAgent(deps Deps) *DreadAgent {
	return &DreadAgent{deps: deps}
}

// Analyze sends the threat list for scoring and merges the returned
// dread_score and dread_details back onto the input threats. The merge is
// positional: entry i of the response scores threat i, but only when the
// component_id agrees (or the response omits it). Threats the response
// does not cover keep no score. An empty input skips the LLM entirely.
func (a *DreadAgent) Analyze(ctx context.Context, threats []map[string]any) ([]map[string]any, error) {
	if len(threats) == 0 {
		return threats, nil
	}

	payload, err := json.Marshal(map[string]any{"threats": threats})
	if err != nil {
		return nil, fmt.Errorf("serializing threat list: %w", err)
	}

	messages := []llm.Message{
		{Role: "system", Content: dreadSystemPrompt},
		{Role: "user", Content: "Threats:\n" + string(payload)},
	}

	opts := a.deps.options("dread", func(result map[string]any) bool {
		return !llm.IsErrorResult(result) && len(threatList(result)) > 0
	})

	result := llm.RunText(ctx, a.deps.Providers, messages, opts)
	if llm.IsErrorResult(result) {
		return nil, exhausted(result)
	}

	scored := threatList(result)
	merged := mergeScores(threats, scored)
	slog.Info("DREAD scoring complete", "threats", len(threats), "scored", len(scored))
	return merged, nil
}

func mergeScores(threats []map[string]any, scored []map[string]any) []map[string]any {
	out := make([]map[string]any, len(threats))
	for i, threat := range threats {
		copied := make(map[string]any, len(threat)+2)
		for k, v := range threat {
			copied[k] = v
		}
		out[i] = copied

		if i >= len(scored) {
			continue
		}
		entry := scored[i]
		if id, ok := entry["component_id"].(string); ok && id != "" {
			if want, ok := threat["component_id"].(string); ok && want != "" && want != id {
				slog.Warn("DREAD response out of order, leaving threat unscored",
					"index", i, "expected_component", want, "got_component", id)
				continue
			}
		}
		if score, ok := entry["dread_score"]; ok {
			copied["dread_score"] = score
		}
		if details, ok := entry["dread_details"]; ok {
			copied["dread_details"] = details
		}
	}
	return out
}
