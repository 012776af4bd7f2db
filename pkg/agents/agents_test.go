package agents

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridesec/threatmodel/pkg/llm"
)

type stubProvider struct {
	name    string
	results []map[string]any
	err     error

	calls int
}

func (s *stubProvider) Name() string       { return s.name }
func (s *stubProvider) IsConfigured() bool { return true }

func (s *stubProvider) next() map[string]any {
	i := s.calls
	s.calls++
	if i < len(s.results) {
		return s.results[i]
	}
	return s.results[len(s.results)-1]
}

func (s *stubProvider) InvokeVision(context.Context, string, []byte) (map[string]any, error) {
	if s.err != nil {
		s.calls++
		return nil, s.err
	}
	return s.next(), nil
}

func (s *stubProvider) InvokeText(context.Context, []llm.Message) (map[string]any, error) {
	if s.err != nil {
		s.calls++
		return nil, s.err
	}
	return s.next(), nil
}

func depsFor(providers ...llm.Provider) Deps {
	return Deps{Providers: providers}
}

func TestDiagramAgentAcceptsComponents(t *testing.T) {
	provider := &stubProvider{name: "Gemini", results: []map[string]any{
		{"components": []any{map[string]any{"id": "web"}}, "connections": []any{}},
	}}
	agent := NewDiagramAgent(depsFor(provider))

	diagram, err := agent.Analyze(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Contains(t, diagram, "components")
}

func TestDiagramAgentRejectsShapelessResult(t *testing.T) {
	// A result with neither components nor connections fails validation,
	// so the chain moves to the next provider.
	shapeless := &stubProvider{name: "Gemini", results: []map[string]any{{"summary": "a diagram"}}}
	good := &stubProvider{name: "OpenAI", results: []map[string]any{
		{"connections": []any{}},
	}}
	agent := NewDiagramAgent(depsFor(shapeless, good))

	diagram, err := agent.Analyze(context.Background(), []byte("img"))
	require.NoError(t, err)
	assert.Contains(t, diagram, "connections")
	assert.Equal(t, 1, shapeless.calls)
	assert.Equal(t, 1, good.calls)
}

func TestDiagramAgentExhaustion(t *testing.T) {
	broken := &stubProvider{name: "Gemini", err: errors.New("quota exceeded")}
	agent := NewDiagramAgent(depsFor(broken))

	_, err := agent.Analyze(context.Background(), []byte("img"))
	require.Error(t, err)

	var exhausted *llm.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Len(t, exhausted.EngineErrors, 1)
	entry := exhausted.EngineErrors[0].(map[string]any)
	assert.Equal(t, "Gemini", entry["engine"])
	assert.Equal(t, "quota exceeded", entry["error"])
}

func TestStrideAgentReadsThreatsKey(t *testing.T) {
	provider := &stubProvider{name: "Gemini", results: []map[string]any{
		{"threats": []any{
			map[string]any{"component_id": "web", "threat_type": "Spoofing"},
			"not a map",
		}},
	}}
	agent := NewStrideAgent(depsFor(provider))

	threats, err := agent.Analyze(context.Background(), map[string]any{"components": []any{}})
	require.NoError(t, err)
	require.Len(t, threats, 1)
	assert.Equal(t, "web", threats[0]["component_id"])
}

func TestStrideAgentReadsItemsFallback(t *testing.T) {
	// A bare top-level array comes back wrapped under "items".
	provider := &stubProvider{name: "Gemini", results: []map[string]any{
		{"items": []any{map[string]any{"threat_type": "Tampering"}}},
	}}
	agent := NewStrideAgent(depsFor(provider))

	threats, err := agent.Analyze(context.Background(), map[string]any{"components": []any{}})
	require.NoError(t, err)
	require.Len(t, threats, 1)
}

func TestDreadAgentEmptyInputSkipsProviders(t *testing.T) {
	provider := &stubProvider{name: "Gemini", results: []map[string]any{{"threats": []any{}}}}
	agent := NewDreadAgent(depsFor(provider))

	scored, err := agent.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, scored)
	assert.Equal(t, 0, provider.calls)
}

func TestDreadAgentMergesPositionally(t *testing.T) {
	input := []map[string]any{
		{"component_id": "web", "threat_type": "Spoofing", "description": "a"},
		{"component_id": "db", "threat_type": "Tampering", "description": "b"},
	}
	provider := &stubProvider{name: "Gemini", results: []map[string]any{
		{"threats": []any{
			map[string]any{"component_id": "web", "dread_score": 7.0, "dread_details": map[string]any{"damage": 8.0}},
			map[string]any{"component_id": "db", "dread_score": 4.0},
		}},
	}}
	agent := NewDreadAgent(depsFor(provider))

	scored, err := agent.Analyze(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, scored, 2)
	assert.Equal(t, 7.0, scored[0]["dread_score"])
	assert.Equal(t, 4.0, scored[1]["dread_score"])
	assert.Equal(t, "a", scored[0]["description"], "original fields survive the merge")

	// Input must not be mutated.
	_, mutated := input[0]["dread_score"]
	assert.False(t, mutated)
}

func TestDreadAgentComponentMismatchLeavesUnscored(t *testing.T) {
	input := []map[string]any{
		{"component_id": "web", "threat_type": "Spoofing"},
		{"component_id": "db", "threat_type": "Tampering"},
	}
	provider := &stubProvider{name: "Gemini", results: []map[string]any{
		{"threats": []any{
			map[string]any{"component_id": "db", "dread_score": 9.0},
			map[string]any{"component_id": "db", "dread_score": 4.0},
		}},
	}}
	agent := NewDreadAgent(depsFor(provider))

	scored, err := agent.Analyze(context.Background(), input)
	require.NoError(t, err)
	_, has := scored[0]["dread_score"]
	assert.False(t, has, "mismatched component must not receive a score")
	assert.Equal(t, 4.0, scored[1]["dread_score"])
}

func TestDreadAgentShortResponseLeavesTailUnscored(t *testing.T) {
	input := []map[string]any{
		{"component_id": "web"},
		{"component_id": "db"},
		{"component_id": "queue"},
	}
	provider := &stubProvider{name: "Gemini", results: []map[string]any{
		{"threats": []any{map[string]any{"component_id": "web", "dread_score": 5.0}}},
	}}
	agent := NewDreadAgent(depsFor(provider))

	scored, err := agent.Analyze(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, scored, 3)
	assert.Equal(t, 5.0, scored[0]["dread_score"])
	_, has := scored[1]["dread_score"]
	assert.False(t, has)
	_, has = scored[2]["dread_score"]
	assert.False(t, has)
}

func TestGuardrailRejectsConfidentNegative(t *testing.T) {
	provider := &stubProvider{name: "Gemini", results: []map[string]any{
		{"is_architecture_diagram": false, "confidence": 0.95, "reason": "photo of a cat"},
	}}
	guard := NewLLMClassifier(depsFor(provider), 0.5)

	err := guard.Validate(context.Background(), []byte("img"))
	assert.ErrorIs(t, err, ErrNotADiagram)
}

func TestGuardrailAdmitsPositive(t *testing.T) {
	provider := &stubProvider{name: "Gemini", results: []map[string]any{
		{"is_architecture_diagram": true, "confidence": 0.9},
	}}
	guard := NewLLMClassifier(depsFor(provider), 0.5)

	assert.NoError(t, guard.Validate(context.Background(), []byte("img")))
}

func TestGuardrailAdmitsLowConfidenceNegative(t *testing.T) {
	provider := &stubProvider{name: "Gemini", results: []map[string]any{
		{"is_architecture_diagram": false, "confidence": 0.3},
	}}
	guard := NewLLMClassifier(depsFor(provider), 0.5)

	assert.NoError(t, guard.Validate(context.Background(), []byte("img")))
}

func TestGuardrailFailsOpenOnExhaustion(t *testing.T) {
	broken := &stubProvider{name: "Gemini", err: errors.New("down")}
	guard := NewLLMClassifier(depsFor(broken), 0.5)

	assert.NoError(t, guard.Validate(context.Background(), []byte("img")))
}

func TestNoopClassifierAdmitsEverything(t *testing.T) {
	assert.NoError(t, NoopClassifier{}.Validate(context.Background(), []byte("anything")))
}
