package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/stridesec/threatmodel/ent"
	"github.com/stridesec/threatmodel/pkg/analyzer"
	"github.com/stridesec/threatmodel/pkg/imagestore"
	"github.com/stridesec/threatmodel/pkg/services"
)

// AnalyzerClient is the analyzer-service surface the executor needs.
type AnalyzerClient interface {
	Analyze(ctx context.Context, image []byte, filename string) (*analyzer.Response, error)
}

// AnalysisExecutor runs one analysis by loading the stored image and
// delegating to the analyzer service. Stage log lines from the analyzer
// are appended to the processing log as they arrive.
type AnalysisExecutor struct {
	store  *imagestore.Store
	jobs   JobStore
	client AnalyzerClient
}

// NewAnalysisExecutor creates the production executor.
func NewAnalysisExecutor(store *imagestore.Store, jobs JobStore, client AnalyzerClient) *AnalysisExecutor {
	return &AnalysisExecutor{store: store, jobs: jobs, client: client}
}

// Execute implements Executor.
func (e *AnalysisExecutor) Execute(ctx context.Context, a *ent.Analysis) *ExecutionResult {
	e.appendLog(ctx, a.ID, "processing started")

	image, err := e.store.Read(a.ImagePath)
	if err != nil {
		return &ExecutionResult{Err: fmt.Errorf("loading stored image: %w", err)}
	}

	resp, err := e.client.Analyze(ctx, image, a.ImagePath)
	if err != nil {
		return &ExecutionResult{Err: err}
	}

	for _, line := range resp.StageLogs {
		e.appendLog(ctx, a.ID, line)
	}

	result, err := resp.Result.AsMap()
	if err != nil {
		return &ExecutionResult{Err: fmt.Errorf("serializing analysis result: %w", err)}
	}
	return &ExecutionResult{Result: result}
}

// appendLog writes one processing log line. Logging is best-effort: a
// vanished row means the user deleted the analysis and the run will be
// abandoned at finalize.
func (e *AnalysisExecutor) appendLog(ctx context.Context, analysisID, line string) {
	if err := e.jobs.AppendLog(ctx, analysisID, line); err != nil && !errors.Is(err, services.ErrNotFound) {
		slog.Warn("Failed to append processing log", "analysis_id", analysisID, "error", err)
	}
}
