package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/stridesec/threatmodel/ent"
	"github.com/stridesec/threatmodel/ent/analysis"
	"github.com/stridesec/threatmodel/pkg/imagestore"
	"github.com/stridesec/threatmodel/pkg/models"
)

const (
	codePrefix      = "TMA"
	codeDigits      = 8
	codeMaxAttempts = 10
	listFetchCap    = 2000
	defaultPageSize = 20
	maxPageSize     = 100
	writeTimeout    = 10 * time.Second
)

// AnalysisService manages the analysis lifecycle: upload intake, listing,
// image/log access, deletion, and the status state machine used by the
// job workers.
type AnalysisService struct {
	client   *ent.Client
	store    *imagestore.Store
	maxBytes int64
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(client *ent.Client, store *imagestore.Store, maxUploadBytes int64) *AnalysisService {
	return &AnalysisService{client: client, store: store, maxBytes: maxUploadBytes}
}

func generateCode() string {
	n := rand.N(int64(100000000))
	return fmt.Sprintf("%s-%0*d", codePrefix, codeDigits, n)
}

// nextCode draws random codes until one is unused, up to the attempt
// budget.
func (s *AnalysisService) nextCode(ctx context.Context) (string, error) {
	for i := 0; i < codeMaxAttempts; i++ {
		code := generateCode()
		exists, err := s.client.Analysis.Query().
			Where(analysis.CodeEQ(code)).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

// Create validates the upload, persists the image blob and an OPEN
// analysis record. Inserting the OPEN record is what enqueues the job:
// workers poll for the oldest OPEN analysis.
func (s *AnalysisService) Create(httpCtx context.Context, image []byte, filename string) (*ent.Analysis, error) {
	if len(image) == 0 {
		return nil, ErrEmptyUpload
	}
	if int64(len(image)) > s.maxBytes {
		return nil, ErrTooLarge
	}

	// Use background context with timeout so a dropped connection cannot
	// leave a half-created analysis.
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	code, err := s.nextCode(ctx)
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	storedName, mime, err := s.store.Save(id, image)
	if err != nil {
		return nil, err
	}

	created, err := s.client.Analysis.Create().
		SetID(id).
		SetCode(code).
		SetImagePath(storedName).
		SetMimeType(mime).
		SetStatus(analysis.StatusOPEN).
		Save(ctx)
	if err != nil {
		// Keep the filesystem consistent with the database.
		if cleanupErr := s.store.Delete(storedName); cleanupErr != nil {
			slog.Warn("Failed to clean up orphaned image blob", "filename", storedName, "error", cleanupErr)
		}
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	slog.Info("Analysis created", "analysis_id", created.ID, "code", created.Code,
		"mime_type", mime, "size_bytes", len(image), "filename", filename)
	return created, nil
}

// List returns a page of analyses, newest first. Filters: case-insensitive
// code substring, exact status, inclusive whole-day UTC created_at range.
// At most listFetchCap matching rows are considered.
func (s *AnalysisService) List(ctx context.Context, params models.ListParams) (*models.AnalysisListResponse, error) {
	query := s.client.Analysis.Query()

	if params.Code != "" {
		query = query.Where(analysis.CodeContainsFold(params.Code))
	}
	if params.Status != "" {
		status := analysis.Status(params.Status)
		if err := analysis.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "must be one of OPEN, RUNNING, DONE, FAILED")
		}
		query = query.Where(analysis.StatusEQ(status))
	}
	if params.CreatedFrom != nil {
		from := params.CreatedFrom.UTC()
		dayStart := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		query = query.Where(analysis.CreatedAtGTE(dayStart))
	}
	if params.CreatedTo != nil {
		to := params.CreatedTo.UTC()
		dayEnd := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, time.UTC)
		query = query.Where(analysis.CreatedAtLTE(dayEnd))
	}

	rows, err := query.
		Order(ent.Desc(analysis.FieldCreatedAt)).
		Limit(listFetchCap).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	size := params.Size
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	total := len(rows)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	items := make([]models.AnalysisSummary, 0, end-start)
	for _, row := range rows[start:end] {
		items = append(items, models.SummaryFromEnt(row))
	}

	return &models.AnalysisListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}, nil
}

// Get retrieves an analysis by ID.
func (s *AnalysisService) Get(ctx context.Context, id string) (*ent.Analysis, error) {
	row, err := s.client.Analysis.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return row, nil
}

// GetImage returns the stored image bytes and their MIME type.
func (s *AnalysisService) GetImage(ctx context.Context, id string) ([]byte, string, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	data, err := s.store.Read(row.ImagePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to read image blob: %w", err)
	}
	return data, row.MimeType, nil
}

// GetLogs returns the accumulated processing log.
func (s *AnalysisService) GetLogs(ctx context.Context, id string) (string, error) {
	row, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return row.ProcessingLogs, nil
}

// Delete removes the analysis record and its image blob. Deleting a
// RUNNING analysis is allowed; the worker detects the missing row when it
// finalizes and abandons the result.
func (s *AnalysisService) Delete(httpCtx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	row, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.client.Analysis.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete analysis: %w", err)
	}

	if err := s.store.Delete(row.ImagePath); err != nil {
		slog.Warn("Failed to delete image blob", "analysis_id", id, "error", err)
	}

	slog.Info("Analysis deleted", "analysis_id", id, "code", row.Code)
	return nil
}

// ClaimNextOpen atomically claims the oldest OPEN analysis and flips it to
// RUNNING. Returns (nil, nil) when nothing is queued. Concurrent workers
// skip rows locked by each other.
func (s *AnalysisService) ClaimNextOpen(ctx context.Context) (*ent.Analysis, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Analysis.Query().
		Where(analysis.StatusEQ(analysis.StatusOPEN)).
		Order(ent.Asc(analysis.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query open analyses: %w", err)
	}

	claimed, err := row.Update().
		SetStatus(analysis.StatusRUNNING).
		SetStartedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim analysis: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// MarkDone records a successful result. Legal only from RUNNING.
func (s *AnalysisService) MarkDone(ctx context.Context, id string, result map[string]any) error {
	return s.transition(ctx, id, analysis.StatusRUNNING, func(u *ent.AnalysisUpdateOne) {
		u.SetStatus(analysis.StatusDONE).
			SetFinishedAt(time.Now().UTC()).
			SetResult(result)
	})
}

// MarkFailed records a failure message. Legal only from RUNNING: upload
// validation happens synchronously in Create before a row exists, so an
// OPEN analysis has nothing that can fail it short of being claimed.
func (s *AnalysisService) MarkFailed(ctx context.Context, id string, message string) error {
	return s.transition(ctx, id, analysis.StatusRUNNING, func(u *ent.AnalysisUpdateOne) {
		u.SetStatus(analysis.StatusFAILED).
			SetFinishedAt(time.Now().UTC()).
			SetErrorMessage(message)
	})
}

// transition re-reads the row inside a transaction, verifies the current
// status, and applies the update. A vanished row surfaces ErrNotFound so
// the worker can abandon the job silently.
func (s *AnalysisService) transition(ctx context.Context, id string, from analysis.Status, apply func(*ent.AnalysisUpdateOne)) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Analysis.Query().
		Where(analysis.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load analysis: %w", err)
	}
	if row.Status != from {
		return fmt.Errorf("%w: %s -> requested from %s", ErrIllegalTransition, row.Status, from)
	}

	update := tx.Analysis.UpdateOneID(id)
	apply(update)
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update analysis status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status update: %w", err)
	}
	return nil
}

// AppendLog appends one line to the processing log.
func (s *AnalysisService) AppendLog(ctx context.Context, id string, line string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.Analysis.Query().
		Where(analysis.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load analysis: %w", err)
	}

	err = tx.Analysis.UpdateOneID(id).
		SetProcessingLogs(row.ProcessingLogs + line + "\n").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append processing log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit log append: %w", err)
	}
	return nil
}
