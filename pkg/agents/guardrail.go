package agents

import (
	"context"
	"errors"
	"log/slog"

	"github.com/stridesec/threatmodel/pkg/llm"
)

// ErrNotADiagram rejects an upload that is not an architecture diagram.
var ErrNotADiagram = errors.New("image does not appear to be an architecture diagram")

// Classifier is the guardrail contract: Validate returns nil when the
// image should enter the pipeline and ErrNotADiagram when it should not.
type Classifier interface {
	Validate(ctx context.Context, image []byte) error
}

// NoopClassifier admits everything. Used when the guardrail is disabled.
type NoopClassifier struct{}

// Validate always admits the image.
func (NoopClassifier) Validate(context.Context, []byte) error { return nil }

// LLMClassifier asks the provider chain whether the image is an
// architecture diagram. The classifier fails open: if every provider
// fails or the response is unusable, the image is admitted and the
// pipeline decides.
type LLMClassifier struct {
	deps      Deps
	threshold float64
}

// NewLLMClassifier builds the guardrail. threshold is the minimum
// confidence required for a rejection to stick.
func NewLLMClassifier(deps Deps, threshold float64) *LLMClassifier {
	return &LLMClassifier{deps: deps, threshold: threshold}
}

// Validate classifies the image. Rejection requires an explicit negative
// verdict at or above the confidence threshold.
func (c *LLMClassifier) Validate(ctx context.Context, image []byte) error {
	opts := c.deps.options("guardrail", func(result map[string]any) bool {
		if llm.IsErrorResult(result) {
			return false
		}
		_, ok := result["is_architecture_diagram"].(bool)
		return ok
	})

	result := llm.RunVision(ctx, c.deps.Providers, guardrailPrompt, image, opts)
	if llm.IsErrorResult(result) {
		slog.Warn("Guardrail classification unavailable, admitting image")
		return nil
	}

	isDiagram, _ := result["is_architecture_diagram"].(bool)
	confidence, _ := result["confidence"].(float64)
	reason, _ := result["reason"].(string)

	if !isDiagram && confidence >= c.threshold {
		slog.Info("Guardrail rejected image", "confidence", confidence, "reason", reason)
		return ErrNotADiagram
	}
	return nil
}
