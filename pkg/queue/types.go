// Package queue provides the DB-backed analysis job queue: worker pool,
// polling workers, and the executor that drives one analysis run.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/stridesec/threatmodel/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no OPEN analyses are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobStore is the persistence surface workers need: claiming, finalizing,
// and progressive logging. Implemented by services.AnalysisService.
type JobStore interface {
	ClaimNextOpen(ctx context.Context) (*ent.Analysis, error)
	MarkDone(ctx context.Context, id string, result map[string]any) error
	MarkFailed(ctx context.Context, id string, message string) error
	AppendLog(ctx context.Context, id string, line string) error
}

// Executor runs one claimed analysis to completion. Intermediate progress
// (stage log lines) is written to the store during execution; the returned
// result carries only the terminal state.
type Executor interface {
	Execute(ctx context.Context, a *ent.Analysis) *ExecutionResult
}

// ExecutionResult is the terminal state of one job.
type ExecutionResult struct {
	// Result is the analysis result map, set on success.
	Result map[string]any

	// Err is the failure, set when the run did not produce a result.
	Err error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveJobs    int            `json:"active_jobs"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
