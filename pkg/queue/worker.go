package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/stridesec/threatmodel/ent"
	"github.com/stridesec/threatmodel/ent/analysis"
	"github.com/stridesec/threatmodel/pkg/config"
	"github.com/stridesec/threatmodel/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// JobRegistry is the subset of WorkerPool used by Worker for cancel
// registration.
type JobRegistry interface {
	RegisterJob(analysisID string, cancel context.CancelFunc)
	UnregisterJob(analysisID string)
}

// Worker is a single queue worker that polls for and processes analyses.
type Worker struct {
	id       string
	client   *ent.Client
	config   *config.QueueConfig
	store    JobStore
	executor Executor
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id string, client *ent.Client, cfg *config.QueueConfig, store JobStore, executor Executor, pool JobRegistry) *Worker {
	return &Worker{
		id:       id,
		client:   client,
		config:   cfg,
		store:    store,
		executor: executor,
		pool:     pool,
		stopCh:   make(chan struct{}),
		status:   WorkerStatusIdle,

		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims an analysis, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Global capacity check (best-effort; racy with concurrent workers but
	// bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Analysis.Query().
		Where(analysis.StatusEQ(analysis.StatusRUNNING)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	claimed, err := w.store.ClaimNextOpen(ctx)
	if err != nil {
		return err
	}
	if claimed == nil {
		return ErrNoJobsAvailable
	}

	log := slog.With("analysis_id", claimed.ID, "code", claimed.Code, "worker_id", w.id)
	log.Info("Job claimed")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// Register cancel function for API-triggered cancellation (deletion of
	// a RUNNING analysis).
	w.pool.RegisterJob(claimed.ID, cancelJob)
	defer w.pool.UnregisterJob(claimed.ID)

	result := w.executor.Execute(jobCtx, claimed)

	if result == nil {
		switch {
		case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{Err: fmt.Errorf("Timeout: analysis exceeded %v", w.config.JobTimeout)}
		case errors.Is(jobCtx.Err(), context.Canceled):
			result = &ExecutionResult{Err: context.Canceled}
		default:
			result = &ExecutionResult{Err: fmt.Errorf("executor returned nil result")}
		}
	}
	if result.Err == nil && result.Result == nil {
		result.Err = fmt.Errorf("executor returned neither result nor error")
	}
	// A failure caused by the job deadline is always recorded under the
	// Timeout reason, however the executor surfaced it.
	if result.Err != nil && errors.Is(jobCtx.Err(), context.DeadlineExceeded) {
		result.Err = fmt.Errorf("Timeout: analysis exceeded %v", w.config.JobTimeout)
	}

	// Finalize with a background context: the job context may already be
	// cancelled or expired.
	if err := w.finalize(context.Background(), claimed.ID, result); err != nil {
		log.Error("Failed to finalize job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "failed", result.Err != nil)
	return nil
}

// finalize writes the terminal status. A row deleted mid-run surfaces
// ErrNotFound from the store and is abandoned silently; a row no longer in
// RUNNING (recovered by another replica) is skipped the same way.
func (w *Worker) finalize(ctx context.Context, analysisID string, result *ExecutionResult) error {
	var err error
	if result.Err != nil {
		err = w.store.MarkFailed(ctx, analysisID, result.Err.Error())
	} else {
		err = w.store.MarkDone(ctx, analysisID, result.Result)
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, services.ErrNotFound):
		slog.Info("Analysis deleted mid-run, abandoning result", "analysis_id", analysisID)
		return nil
	case errors.Is(err, services.ErrIllegalTransition):
		slog.Warn("Analysis no longer RUNNING, skipping terminal update", "analysis_id", analysisID)
		return nil
	default:
		return err
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, analysisID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = analysisID
	w.lastActivity = time.Now()
}
