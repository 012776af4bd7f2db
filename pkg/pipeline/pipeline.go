// Package pipeline orchestrates the three-stage threat analysis: diagram
// extraction, STRIDE enumeration, DREAD scoring. A run either produces a
// complete normalized result or fails with a StageError; there is no
// partial success.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stridesec/threatmodel/pkg/agents"
	"github.com/stridesec/threatmodel/pkg/llm"
	"github.com/stridesec/threatmodel/pkg/threatmodel"
)

// Stage names as they appear in StageError and observer callbacks.
const (
	StageDiagram = "diagram_analysis"
	StageStride  = "stride_analysis"
	StageDread   = "dread_scoring"
)

// StageError reports which stage failed and, when providers were
// exhausted, their individual errors.
type StageError struct {
	Stage        string
	EngineErrors []any
	Cause        error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Cause)
}

func (e *StageError) Unwrap() error { return e.Cause }

// StageObserver receives a callback after each completed stage. The job
// worker uses it to append per-stage lines to the processing log. Nil is
// allowed.
type StageObserver func(stage string, elapsed time.Duration)

// Service runs the full analysis pipeline.
type Service struct {
	guard   agents.Classifier
	diagram *agents.DiagramAgent
	stride  *agents.StrideAgent
	dread   *agents.DreadAgent
}

// New assembles the pipeline from its stage agents and the guardrail.
func New(guard agents.Classifier, diagram *agents.DiagramAgent, stride *agents.StrideAgent, dread *agents.DreadAgent) *Service {
	return &Service{guard: guard, diagram: diagram, stride: stride, dread: dread}
}

// NewFromDeps wires the default agents over a shared dependency set. When
// guardrailEnabled is false the classifier admits everything.
func NewFromDeps(deps agents.Deps, guardrailEnabled bool, guardrailThreshold float64) *Service {
	var guard agents.Classifier = agents.NoopClassifier{}
	if guardrailEnabled {
		guard = agents.NewLLMClassifier(deps, guardrailThreshold)
	}
	return New(guard,
		agents.NewDiagramAgent(deps),
		agents.NewStrideAgent(deps),
		agents.NewDreadAgent(deps),
	)
}

// Run executes guardrail plus the three stages and returns the normalized
// result. Guardrail rejection surfaces as agents.ErrNotADiagram; any stage
// failure surfaces as a *StageError.
func (s *Service) Run(ctx context.Context, image []byte, observe StageObserver) (*threatmodel.AnalysisResult, error) {
	if err := s.guard.Validate(ctx, image); err != nil {
		return nil, err
	}

	start := time.Now()

	stage1 := time.Now()
	slog.Info("Stage 1: diagram analysis started")
	diagram, err := s.diagram.Analyze(ctx, image)
	if err != nil {
		return nil, stageError(StageDiagram, err)
	}
	elapsed1 := time.Since(stage1)
	components := threatmodel.ParseComponents(listField(diagram, "components"))
	connections := threatmodel.ParseConnections(listField(diagram, "connections"))
	slog.Info("Stage 1: diagram analysis complete",
		"elapsed", elapsed1, "components", len(components), "connections", len(connections))
	notify(observe, StageDiagram, elapsed1)

	stage2 := time.Now()
	slog.Info("Stage 2: STRIDE analysis started")
	rawThreats, err := s.stride.Analyze(ctx, diagram)
	if err != nil {
		return nil, stageError(StageStride, err)
	}
	elapsed2 := time.Since(stage2)
	slog.Info("Stage 2: STRIDE analysis complete", "elapsed", elapsed2, "threats", len(rawThreats))
	notify(observe, StageStride, elapsed2)

	stage3 := time.Now()
	slog.Info("Stage 3: DREAD scoring started")
	scoredThreats, err := s.dread.Analyze(ctx, rawThreats)
	if err != nil {
		return nil, stageError(StageDread, err)
	}
	elapsed3 := time.Since(stage3)
	slog.Info("Stage 3: DREAD scoring complete", "elapsed", elapsed3)
	notify(observe, StageDread, elapsed3)

	threats := threatmodel.ParseThreats(scoredThreats)
	threatmodel.SortThreats(threats)
	riskScore := threatmodel.Round2(threatmodel.RiskScore(threats))
	riskLevel := threatmodel.RiskLevelFromScore(riskScore)
	processingTime := threatmodel.Round2(time.Since(start).Seconds())

	modelUsed := "Unknown"
	if m, ok := diagram["model"].(string); ok && m != "" {
		modelUsed = m
	}

	slog.Info("Analysis complete",
		"components", len(components),
		"threats", len(threats),
		"risk_level", riskLevel,
		"risk_score", riskScore,
		"processing_time", processingTime)

	return &threatmodel.AnalysisResult{
		ModelUsed:      modelUsed,
		Components:     components,
		Connections:    connections,
		Threats:        threats,
		RiskScore:      riskScore,
		RiskLevel:      riskLevel,
		ProcessingTime: processingTime,
	}, nil
}

func notify(observe StageObserver, stage string, elapsed time.Duration) {
	if observe != nil {
		observe(stage, elapsed)
	}
}

func stageError(stage string, err error) *StageError {
	se := &StageError{Stage: stage, Cause: err}
	var exhausted *llm.ExhaustedError
	if errors.As(err, &exhausted) {
		se.EngineErrors = exhausted.EngineErrors
	}
	return se
}

func listField(m map[string]any, key string) []any {
	v, _ := m[key].([]any)
	return v
}
