package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridesec/threatmodel/ent"
	"github.com/stridesec/threatmodel/ent/analysis"
	"github.com/stridesec/threatmodel/pkg/imagestore"
	"github.com/stridesec/threatmodel/pkg/models"
)

var codePattern = regexp.MustCompile(`^TMA-\d{8}$`)

func TestGenerateCodeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.Regexp(t, codePattern, generateCode())
	}
}

func TestCreateAnalysis(t *testing.T) {
	svc, _ := setupTestAnalysisService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, pngBytes, "diagram.png")
	require.NoError(t, err)

	assert.Regexp(t, codePattern, created.Code)
	assert.Equal(t, analysis.StatusOPEN, created.Status)
	assert.Equal(t, "image/png", created.MimeType)
	assert.Equal(t, created.ID+".png", created.ImagePath)
	assert.Nil(t, created.StartedAt)
	assert.Nil(t, created.FinishedAt)

	// The blob is readable back through the service.
	data, mime, err := svc.GetImage(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
	assert.Equal(t, "image/png", mime)
}

func TestCreateAnalysisValidation(t *testing.T) {
	svc, _ := setupTestAnalysisService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, nil, "empty.png")
	assert.ErrorIs(t, err, ErrEmptyUpload)

	_, err = svc.Create(ctx, []byte("%PDF-1.4 not an image"), "doc.pdf")
	assert.ErrorIs(t, err, imagestore.ErrUnsupportedImage)

	tiny, _ := setupTestAnalysisService(t)
	tiny.maxBytes = 4
	_, err = tiny.Create(ctx, pngBytes, "big.png")
	assert.ErrorIs(t, err, ErrTooLarge)

	// Exactly at the limit is accepted; the limit is inclusive.
	exact, _ := setupTestAnalysisService(t)
	exact.maxBytes = int64(len(pngBytes))
	_, err = exact.Create(ctx, pngBytes, "exact.png")
	assert.NoError(t, err)
}

func TestGetNotFound(t *testing.T) {
	svc, _ := setupTestAnalysisService(t)

	_, err := svc.Get(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersAndPagination(t *testing.T) {
	svc, client := setupTestAnalysisService(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		created, err := svc.Create(ctx, pngBytes, "diagram.png")
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	// Flip one to DONE with a result so risk fields populate.
	_, err := client.Analysis.UpdateOneID(ids[0]).
		SetStatus(analysis.StatusDONE).
		SetResult(map[string]any{
			"risk_level": "HIGH",
			"risk_score": 6.5,
			"threats":    []any{map[string]any{}, map[string]any{}},
		}).
		Save(ctx)
	require.NoError(t, err)

	all, err := svc.List(ctx, models.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 5, all.Total)
	assert.Equal(t, 1, all.Page)
	assert.Len(t, all.Items, 5)

	// Status filter.
	done, err := svc.List(ctx, models.ListParams{Status: "DONE"})
	require.NoError(t, err)
	require.Equal(t, 1, done.Total)
	require.NotNil(t, done.Items[0].RiskLevel)
	assert.Equal(t, "HIGH", *done.Items[0].RiskLevel)
	require.NotNil(t, done.Items[0].ThreatCount)
	assert.Equal(t, 2, *done.Items[0].ThreatCount)

	// Unknown status is rejected.
	_, err = svc.List(ctx, models.ListParams{Status: "BOGUS"})
	assert.True(t, IsValidationError(err))

	// Case-insensitive code substring.
	detail, err := svc.Get(ctx, ids[1])
	require.NoError(t, err)
	sub := detail.Code[4:8] // digits only, lowercase irrelevant but exercise the path
	byCode, err := svc.List(ctx, models.ListParams{Code: "tma-" + sub})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, byCode.Total, 1)

	// Pagination: page 2 of size 2 over 5 rows.
	page2, err := svc.List(ctx, models.ListParams{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page2.Total)
	assert.Equal(t, 3, page2.Pages)
	assert.Len(t, page2.Items, 2)

	// Whole-day date range covering today matches everything.
	today := time.Now().UTC()
	ranged, err := svc.List(ctx, models.ListParams{CreatedFrom: &today, CreatedTo: &today})
	require.NoError(t, err)
	assert.Equal(t, 5, ranged.Total)
}

func TestListOrderedNewestFirst(t *testing.T) {
	svc, client := setupTestAnalysisService(t)
	ctx := context.Background()

	older, err := svc.Create(ctx, pngBytes, "a.png")
	require.NoError(t, err)
	newer, err := svc.Create(ctx, pngBytes, "b.png")
	require.NoError(t, err)

	// Force distinct timestamps.
	_, err = client.Analysis.UpdateOneID(older.ID).
		SetCreatedAt(time.Now().UTC().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	resp, err := svc.List(ctx, models.ListParams{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, newer.ID, resp.Items[0].ID)
	assert.Equal(t, older.ID, resp.Items[1].ID)
}

func TestClaimNextOpen(t *testing.T) {
	svc, _ := setupTestAnalysisService(t)
	ctx := context.Background()

	// Nothing queued.
	claimed, err := svc.ClaimNextOpen(ctx)
	require.NoError(t, err)
	assert.Nil(t, claimed)

	created, err := svc.Create(ctx, pngBytes, "diagram.png")
	require.NoError(t, err)

	claimed, err = svc.ClaimNextOpen(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, created.ID, claimed.ID)
	assert.Equal(t, analysis.StatusRUNNING, claimed.Status)
	require.NotNil(t, claimed.StartedAt)

	// The queue is now empty; a second claim finds nothing.
	again, err := svc.ClaimNextOpen(ctx)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestClaimOrderIsFIFO(t *testing.T) {
	svc, client := setupTestAnalysisService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, pngBytes, "a.png")
	require.NoError(t, err)
	_, err = svc.Create(ctx, pngBytes, "b.png")
	require.NoError(t, err)

	_, err = client.Analysis.UpdateOneID(first.ID).
		SetCreatedAt(time.Now().UTC().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	claimed, err := svc.ClaimNextOpen(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID)
}

func TestStatusStateMachine(t *testing.T) {
	svc, _ := setupTestAnalysisService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, pngBytes, "diagram.png")
	require.NoError(t, err)

	// DONE straight from OPEN is illegal.
	err = svc.MarkDone(ctx, created.ID, map[string]any{})
	assert.ErrorIs(t, err, ErrIllegalTransition)

	claimed, err := svc.ClaimNextOpen(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)

	result := map[string]any{"risk_level": "LOW", "risk_score": 1.0}
	require.NoError(t, svc.MarkDone(ctx, created.ID, result))

	final, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, analysis.StatusDONE, final.Status)
	require.NotNil(t, final.FinishedAt)
	assert.Equal(t, "LOW", final.Result["risk_level"])

	// Terminal states do not transition again.
	err = svc.MarkFailed(ctx, created.ID, "late failure")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestMarkFailed(t *testing.T) {
	svc, _ := setupTestAnalysisService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, pngBytes, "diagram.png")
	require.NoError(t, err)
	_, err = svc.ClaimNextOpen(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.MarkFailed(ctx, created.ID, "All LLM providers failed"))

	final, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, analysis.StatusFAILED, final.Status)
	require.NotNil(t, final.ErrorMessage)
	assert.Equal(t, "All LLM providers failed", *final.ErrorMessage)
}

func TestDeleteMidRunAbandonsResult(t *testing.T) {
	svc, _ := setupTestAnalysisService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, pngBytes, "diagram.png")
	require.NoError(t, err)
	_, err = svc.ClaimNextOpen(ctx)
	require.NoError(t, err)

	// User deletes while the worker is mid-run.
	require.NoError(t, svc.Delete(ctx, created.ID))

	// The worker's finalize sees the row gone and abandons.
	err = svc.MarkDone(ctx, created.ID, map[string]any{})
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.AppendLog(ctx, created.ID, "stale line")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesRecordAndBlob(t *testing.T) {
	svc, _ := setupTestAnalysisService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, pngBytes, "diagram.png")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, _, err = svc.GetImage(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestAppendLog(t *testing.T) {
	svc, _ := setupTestAnalysisService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, pngBytes, "diagram.png")
	require.NoError(t, err)

	require.NoError(t, svc.AppendLog(ctx, created.ID, "diagram_analysis completed in 3.20s"))
	require.NoError(t, svc.AppendLog(ctx, created.ID, "stride_analysis completed in 8.71s"))

	logs, err := svc.GetLogs(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "diagram_analysis completed in 3.20s\nstride_analysis completed in 8.71s\n", logs)
}

func TestCodeUniquenessConstraint(t *testing.T) {
	_, client := setupTestAnalysisService(t)
	ctx := context.Background()

	_, err := client.Analysis.Create().
		SetID("11111111-1111-1111-1111-111111111111").
		SetCode("TMA-00000001").
		SetImagePath("x.png").
		SetMimeType("image/png").
		SetStatus(analysis.StatusOPEN).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Analysis.Create().
		SetID("22222222-2222-2222-2222-222222222222").
		SetCode("TMA-00000001").
		SetImagePath("y.png").
		SetMimeType("image/png").
		SetStatus(analysis.StatusOPEN).
		Save(ctx)
	assert.True(t, ent.IsConstraintError(err))
}
