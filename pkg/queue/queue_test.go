package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridesec/threatmodel/ent"
	"github.com/stridesec/threatmodel/ent/analysis"
	"github.com/stridesec/threatmodel/pkg/analyzer"
	"github.com/stridesec/threatmodel/pkg/config"
	"github.com/stridesec/threatmodel/pkg/imagestore"
	"github.com/stridesec/threatmodel/pkg/services"
	"github.com/stridesec/threatmodel/pkg/threatmodel"
	"github.com/stridesec/threatmodel/test/util"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n" + "fake image data")

type harness struct {
	client  *ent.Client
	service *services.AnalysisService
	store   *imagestore.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	store, err := imagestore.New(t.TempDir(), []string{"image/png"})
	require.NoError(t, err)
	return &harness{
		client:  client,
		service: services.NewAnalysisService(client, store, 10*1024*1024),
		store:   store,
	}
}

func fastQueueConfig() *config.QueueConfig {
	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 5 * time.Millisecond
	cfg.JobTimeout = 5 * time.Second
	return cfg
}

// stubExecutor returns a fixed result or error, optionally blocking until
// the job context is cancelled.
type stubExecutor struct {
	result       map[string]any
	err          error
	blockOnCtx   bool
	executedJobs atomic.Int32
}

func (s *stubExecutor) Execute(ctx context.Context, a *ent.Analysis) *ExecutionResult {
	s.executedJobs.Add(1)
	if s.blockOnCtx {
		<-ctx.Done()
		return &ExecutionResult{Err: ctx.Err()}
	}
	if s.err != nil {
		return &ExecutionResult{Err: s.err}
	}
	return &ExecutionResult{Result: s.result}
}

func waitForStatus(t *testing.T, h *harness, id string, want analysis.Status) *ent.Analysis {
	t.Helper()
	var row *ent.Analysis
	require.Eventually(t, func() bool {
		var err error
		row, err = h.client.Analysis.Get(context.Background(), id)
		return err == nil && row.Status == want
	}, 10*time.Second, 25*time.Millisecond, "analysis never reached %s", want)
	return row
}

func TestPoolProcessesJobToDone(t *testing.T) {
	h := newHarness(t)
	created, err := h.service.Create(context.Background(), pngBytes, "d.png")
	require.NoError(t, err)

	exec := &stubExecutor{result: map[string]any{"risk_level": "LOW", "risk_score": 1.5}}
	pool := NewWorkerPool(h.client, fastQueueConfig(), h.service, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	row := waitForStatus(t, h, created.ID, analysis.StatusDONE)
	require.NotNil(t, row.StartedAt)
	require.NotNil(t, row.FinishedAt)
	assert.Equal(t, "LOW", row.Result["risk_level"])
}

func TestPoolMarksFailedJobs(t *testing.T) {
	h := newHarness(t)
	created, err := h.service.Create(context.Background(), pngBytes, "d.png")
	require.NoError(t, err)

	exec := &stubExecutor{err: errors.New("All LLM providers failed")}
	pool := NewWorkerPool(h.client, fastQueueConfig(), h.service, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	row := waitForStatus(t, h, created.ID, analysis.StatusFAILED)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "All LLM providers failed", *row.ErrorMessage)
}

func TestCancelJobAbortsRunningAnalysis(t *testing.T) {
	h := newHarness(t)
	created, err := h.service.Create(context.Background(), pngBytes, "d.png")
	require.NoError(t, err)

	exec := &stubExecutor{blockOnCtx: true}
	pool := NewWorkerPool(h.client, fastQueueConfig(), h.service, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	waitForStatus(t, h, created.ID, analysis.StatusRUNNING)

	require.Eventually(t, func() bool {
		return pool.CancelJob(created.ID)
	}, 5*time.Second, 25*time.Millisecond)

	row := waitForStatus(t, h, created.ID, analysis.StatusFAILED)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "context canceled")
}

func TestJobTimeoutRecordsTimeoutReason(t *testing.T) {
	h := newHarness(t)
	created, err := h.service.Create(context.Background(), pngBytes, "d.png")
	require.NoError(t, err)

	cfg := fastQueueConfig()
	cfg.JobTimeout = 100 * time.Millisecond

	exec := &stubExecutor{blockOnCtx: true}
	pool := NewWorkerPool(h.client, cfg, h.service, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	row := waitForStatus(t, h, created.ID, analysis.StatusFAILED)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "Timeout:")
}

func TestCancelJobUnknownID(t *testing.T) {
	h := newHarness(t)
	pool := NewWorkerPool(h.client, fastQueueConfig(), h.service, &stubExecutor{})
	assert.False(t, pool.CancelJob("not-running-anywhere"))
}

func TestPoolHealth(t *testing.T) {
	h := newHarness(t)
	_, err := h.service.Create(context.Background(), pngBytes, "d.png")
	require.NoError(t, err)

	cfg := fastQueueConfig()
	exec := &stubExecutor{blockOnCtx: true}
	pool := NewWorkerPool(h.client, cfg, h.service, exec)
	require.NoError(t, pool.Start(context.Background()))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		health := pool.Health()
		return health.ActiveJobs == 1 && health.ActiveWorkers == 1
	}, 5*time.Second, 25*time.Millisecond)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Equal(t, cfg.MaxConcurrentJobs, health.MaxConcurrent)
	assert.Equal(t, 0, health.QueueDepth)

	// Unblock the worker so Stop does not wait for the job timeout.
	require.True(t, pool.CancelJob(health.WorkerStats[0].CurrentJobID))
}

type stubAnalyzer struct {
	resp *analyzer.Response
	err  error
}

func (s *stubAnalyzer) Analyze(context.Context, []byte, string) (*analyzer.Response, error) {
	return s.resp, s.err
}

func TestAnalysisExecutor(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	created, err := h.service.Create(ctx, pngBytes, "d.png")
	require.NoError(t, err)
	claimed, err := h.service.ClaimNextOpen(ctx)
	require.NoError(t, err)

	score := 4.5
	stub := &stubAnalyzer{resp: &analyzer.Response{
		Result: &threatmodel.AnalysisResult{
			ModelUsed: "gpt-4o",
			Threats: []threatmodel.Threat{
				{ComponentID: "web", ThreatType: "Spoofing", Description: "x", Mitigation: "y", DreadScore: &score},
			},
			RiskScore: 4.5,
			RiskLevel: threatmodel.RiskMedium,
		},
		StageLogs: []string{"diagram_analysis completed in 1.00s"},
	}}

	exec := NewAnalysisExecutor(h.store, h.service, stub)
	result := exec.Execute(ctx, claimed)
	require.NoError(t, result.Err)
	assert.Equal(t, "gpt-4o", result.Result["model_used"])
	assert.Equal(t, "MEDIUM", result.Result["risk_level"])
	assert.Equal(t, float64(1), result.Result["threat_count"])

	logs, err := h.service.GetLogs(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, logs, "processing started\n")
	assert.Contains(t, logs, "diagram_analysis completed in 1.00s\n")
}

func TestAnalysisExecutorAnalyzerFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.service.Create(ctx, pngBytes, "d.png")
	require.NoError(t, err)
	claimed, err := h.service.ClaimNextOpen(ctx)
	require.NoError(t, err)

	stub := &stubAnalyzer{err: analyzer.ErrNotADiagram}
	exec := NewAnalysisExecutor(h.store, h.service, stub)

	result := exec.Execute(ctx, claimed)
	require.Error(t, result.Err)
	assert.ErrorIs(t, result.Err, analyzer.ErrNotADiagram)
}
