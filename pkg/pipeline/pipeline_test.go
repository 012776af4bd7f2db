package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridesec/threatmodel/pkg/agents"
	"github.com/stridesec/threatmodel/pkg/llm"
	"github.com/stridesec/threatmodel/pkg/threatmodel"
)

// scriptedProvider answers vision calls from visionResults and text calls
// from textResults, in order.
type scriptedProvider struct {
	visionResults []map[string]any
	textResults   []map[string]any
	visionErr     error
	textErr       error

	visionCalls int
	textCalls   int
}

func (p *scriptedProvider) Name() string       { return "Scripted" }
func (p *scriptedProvider) IsConfigured() bool { return true }

func (p *scriptedProvider) InvokeVision(context.Context, string, []byte) (map[string]any, error) {
	i := p.visionCalls
	p.visionCalls++
	if p.visionErr != nil {
		return nil, p.visionErr
	}
	return p.visionResults[i], nil
}

func (p *scriptedProvider) InvokeText(context.Context, []llm.Message) (map[string]any, error) {
	i := p.textCalls
	p.textCalls++
	if p.textErr != nil {
		return nil, p.textErr
	}
	return p.textResults[i], nil
}

func serviceOver(p llm.Provider) *Service {
	return NewFromDeps(agents.Deps{Providers: []llm.Provider{p}}, false, 0)
}

func TestRunFullPipeline(t *testing.T) {
	provider := &scriptedProvider{
		visionResults: []map[string]any{{
			"model": "gemini-1.5-pro",
			"components": []any{
				map[string]any{"id": "web", "type": "Web Application", "name": "Storefront"},
				map[string]any{"id": "db", "type": "Database", "name": "Orders DB"},
			},
			"connections": []any{
				map[string]any{"from": "web", "to": "db", "protocol": "SQL"},
			},
		}},
		textResults: []map[string]any{
			{"threats": []any{
				map[string]any{"component_id": "db", "threat_type": "information disclosure", "description": "Unencrypted SQL traffic", "mitigation": "Use TLS"},
				map[string]any{"component_id": "web", "threat_type": "Spoofing", "description": "Session fixation", "mitigation": "Rotate session ids"},
			}},
			{"threats": []any{
				map[string]any{"component_id": "db", "dread_score": 4.0, "dread_details": map[string]any{"damage": 6.0, "reproducibility": 4.0, "exploitability": 3.0, "affected_users": 5.0, "discoverability": 2.0}},
				map[string]any{"component_id": "web", "dread_score": 8.0},
			}},
		},
	}

	var stages []string
	result, err := serviceOver(provider).Run(context.Background(), []byte("img"), func(stage string, elapsed time.Duration) {
		stages = append(stages, stage)
	})
	require.NoError(t, err)

	assert.Equal(t, []string{StageDiagram, StageStride, StageDread}, stages)
	assert.Equal(t, "gemini-1.5-pro", result.ModelUsed)
	assert.Len(t, result.Components, 2)
	require.Len(t, result.Connections, 1)
	assert.Equal(t, "web", result.Connections[0].FromID)
	require.Len(t, result.Threats, 2)

	// Sorted by dread score, highest first.
	assert.Equal(t, "web", result.Threats[0].ComponentID)
	require.NotNil(t, result.Threats[0].DreadScore)
	assert.Equal(t, 8.0, *result.Threats[0].DreadScore)

	assert.Equal(t, 6.0, result.RiskScore)
	assert.Equal(t, threatmodel.RiskHigh, result.RiskLevel)
	assert.GreaterOrEqual(t, result.ProcessingTime, 0.0)
}

func TestRunDiagramStageFailure(t *testing.T) {
	provider := &scriptedProvider{visionErr: errors.New("connection refused")}

	_, err := serviceOver(provider).Run(context.Background(), []byte("img"), nil)
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageDiagram, stageErr.Stage)
	require.Len(t, stageErr.EngineErrors, 1)
}

func TestRunStrideStageFailure(t *testing.T) {
	provider := &scriptedProvider{
		visionResults: []map[string]any{{"components": []any{map[string]any{"id": "web"}}}},
		textErr:       errors.New("timeout"),
	}

	_, err := serviceOver(provider).Run(context.Background(), []byte("img"), nil)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageStride, stageErr.Stage)
}

func TestRunGuardrailRejection(t *testing.T) {
	// Guardrail vision call comes first; a confident negative stops the
	// pipeline before stage 1.
	provider := &scriptedProvider{
		visionResults: []map[string]any{
			{"is_architecture_diagram": false, "confidence": 0.99, "reason": "screenshot of a spreadsheet"},
		},
	}
	svc := NewFromDeps(agents.Deps{Providers: []llm.Provider{provider}}, true, 0.5)

	_, err := svc.Run(context.Background(), []byte("img"), nil)
	assert.ErrorIs(t, err, agents.ErrNotADiagram)
	assert.Equal(t, 1, provider.visionCalls)
	assert.Equal(t, 0, provider.textCalls)
}

func TestRunEmptyDiagramStillCompletes(t *testing.T) {
	provider := &scriptedProvider{
		visionResults: []map[string]any{{"components": []any{}, "connections": []any{}}},
		textResults: []map[string]any{
			{"threats": []any{map[string]any{"component_id": "unknown", "threat_type": "Tampering", "description": "x", "mitigation": "y"}}},
			{"threats": []any{map[string]any{"component_id": "unknown"}}},
		},
	}

	result, err := serviceOver(provider).Run(context.Background(), []byte("img"), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Components)
	require.Len(t, result.Threats, 1)
	assert.Nil(t, result.Threats[0].DreadScore)
	assert.Equal(t, 0.0, result.RiskScore)
	assert.Equal(t, threatmodel.RiskLow, result.RiskLevel)
	assert.Equal(t, "Unknown", result.ModelUsed)
}
