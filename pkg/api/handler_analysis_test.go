package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridesec/threatmodel/ent"
	"github.com/stridesec/threatmodel/pkg/config"
	"github.com/stridesec/threatmodel/pkg/imagestore"
	"github.com/stridesec/threatmodel/pkg/models"
	"github.com/stridesec/threatmodel/pkg/queue"
	"github.com/stridesec/threatmodel/pkg/services"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n" + "fake image data")

type fakeService struct {
	createFn func(ctx context.Context, image []byte, filename string) (*ent.Analysis, error)
	listFn   func(ctx context.Context, params models.ListParams) (*models.AnalysisListResponse, error)
	getFn    func(ctx context.Context, id string) (*ent.Analysis, error)
	imageFn  func(ctx context.Context, id string) ([]byte, string, error)
	logsFn   func(ctx context.Context, id string) (string, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeService) Create(ctx context.Context, image []byte, filename string) (*ent.Analysis, error) {
	return f.createFn(ctx, image, filename)
}

func (f *fakeService) List(ctx context.Context, params models.ListParams) (*models.AnalysisListResponse, error) {
	return f.listFn(ctx, params)
}

func (f *fakeService) Get(ctx context.Context, id string) (*ent.Analysis, error) {
	return f.getFn(ctx, id)
}

func (f *fakeService) GetImage(ctx context.Context, id string) ([]byte, string, error) {
	return f.imageFn(ctx, id)
}

func (f *fakeService) GetLogs(ctx context.Context, id string) (string, error) {
	return f.logsFn(ctx, id)
}

func (f *fakeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakePool struct {
	cancelled []string
	found     bool
}

func (f *fakePool) CancelJob(analysisID string) bool {
	f.cancelled = append(f.cancelled, analysisID)
	return f.found
}

func (f *fakePool) Health() *queue.PoolHealth {
	return &queue.PoolHealth{IsHealthy: true, DBReachable: true, TotalWorkers: 1}
}

func testConfig() *config.Config {
	return &config.Config{
		Upload: &config.UploadConfig{
			Dir:          "uploads",
			MaxSizeMB:    1,
			AllowedTypes: []string{"image/png"},
		},
		CORSOrigins: []string{"http://localhost:3000"},
	}
}

func newTestServer(svc AnalysisService, pool Pool) *Server {
	return NewServer(testConfig(), nil, svc, pool)
}

func multipartBody(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func sampleAnalysis() *ent.Analysis {
	return &ent.Analysis{
		ID:        "4d1b5a1a-0000-0000-0000-000000000001",
		Code:      "TMA-12345678",
		ImagePath: "4d1b5a1a-0000-0000-0000-000000000001.png",
		MimeType:  "image/png",
		Status:    "OPEN",
		CreatedAt: time.Now().UTC(),
	}
}

func TestCreateAnalysisHandler(t *testing.T) {
	var gotImage []byte
	svc := &fakeService{
		createFn: func(_ context.Context, image []byte, filename string) (*ent.Analysis, error) {
			gotImage = image
			assert.Equal(t, "diagram.png", filename)
			return sampleAnalysis(), nil
		},
	}
	s := newTestServer(svc, nil)

	body, contentType := multipartBody(t, "file", "diagram.png", pngBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, pngBytes, gotImage)

	var resp models.AnalysisCreateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Regexp(t, `^TMA-\d{8}$`, resp.Code)
	assert.Equal(t, "OPEN", resp.Status)
	assert.Equal(t, "/api/v1/analyses/"+resp.ID+"/image", resp.ImageURL)
}

func TestCreateAnalysisMissingFile(t *testing.T) {
	s := newTestServer(&fakeService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file")
}

func TestCreateAnalysisEmptyUpload(t *testing.T) {
	svc := &fakeService{
		createFn: func(context.Context, []byte, string) (*ent.Analysis, error) {
			return nil, services.ErrEmptyUpload
		},
	}
	s := newTestServer(svc, nil)

	body, contentType := multipartBody(t, "file", "empty.png", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty")
}

func TestCreateAnalysisUnsupportedType(t *testing.T) {
	svc := &fakeService{
		createFn: func(context.Context, []byte, string) (*ent.Analysis, error) {
			return nil, imagestore.ErrUnsupportedImage
		},
	}
	s := newTestServer(svc, nil)

	body, contentType := multipartBody(t, "file", "doc.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "content type")
}

func TestCreateAnalysisTooLarge(t *testing.T) {
	s := newTestServer(&fakeService{}, nil)

	oversize := make([]byte, 1<<20+1) // one byte over the 1 MB test limit
	body, contentType := multipartBody(t, "file", "big.png", oversize)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestGetAnalysisHandler(t *testing.T) {
	row := sampleAnalysis()
	svc := &fakeService{
		getFn: func(_ context.Context, id string) (*ent.Analysis, error) {
			assert.Equal(t, row.ID, id)
			return row, nil
		},
	}
	s := newTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+row.ID, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalysisDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, row.Code, resp.Code)
	assert.Nil(t, resp.StartedAt)
}

func TestGetAnalysisNotFound(t *testing.T) {
	svc := &fakeService{
		getFn: func(context.Context, string) (*ent.Analysis, error) {
			return nil, services.ErrNotFound
		},
	}
	s := newTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/missing", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAnalysisImageHandler(t *testing.T) {
	svc := &fakeService{
		imageFn: func(context.Context, string) ([]byte, string, error) {
			return pngBytes, "image/png", nil
		},
	}
	s := newTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/abc/image", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}

func TestGetAnalysisLogsHandler(t *testing.T) {
	svc := &fakeService{
		logsFn: func(context.Context, string) (string, error) {
			return "processing started\n", nil
		},
	}
	s := newTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/abc/logs", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "processing started\n", resp["logs"])
}

func TestDeleteAnalysisHandler(t *testing.T) {
	deleted := ""
	svc := &fakeService{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	pool := &fakePool{found: true}
	s := newTestServer(svc, pool)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/analyses/abc", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "abc", deleted)
	assert.Equal(t, []string{"abc"}, pool.cancelled)
}

func TestDeleteAnalysisNotFound(t *testing.T) {
	svc := &fakeService{
		deleteFn: func(context.Context, string) error {
			return services.ErrNotFound
		},
	}
	pool := &fakePool{}
	s := newTestServer(svc, pool)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/analyses/missing", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, pool.cancelled, "nothing to cancel when the row never existed")
}

func TestListAnalysesHandler(t *testing.T) {
	var got models.ListParams
	svc := &fakeService{
		listFn: func(_ context.Context, params models.ListParams) (*models.AnalysisListResponse, error) {
			got = params
			return &models.AnalysisListResponse{
				Items: []models.AnalysisSummary{},
				Total: 0,
				Page:  params.Page,
				Size:  params.Size,
				Pages: 1,
			}, nil
		},
	}
	s := newTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/analyses?code=tma-123&status=DONE&created_at_from=2026-08-01&created_at_to=2026-08-26&page=2&size=10", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tma-123", got.Code)
	assert.Equal(t, "DONE", got.Status)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 10, got.Size)
	require.NotNil(t, got.CreatedFrom)
	assert.Equal(t, "2026-08-01", got.CreatedFrom.Format("2006-01-02"))

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	for _, key := range []string{"items", "total", "page", "size", "pages"} {
		assert.Contains(t, envelope, key)
	}
}

func TestListAnalysesBadDate(t *testing.T) {
	s := newTestServer(&fakeService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses?created_at_from=01-08-2026", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSecurityHeadersApplied(t *testing.T) {
	svc := &fakeService{
		listFn: func(context.Context, models.ListParams) (*models.AnalysisListResponse, error) {
			return &models.AnalysisListResponse{Items: []models.AnalysisSummary{}, Pages: 1}, nil
		},
	}
	s := newTestServer(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCORSAllowedOrigin(t *testing.T) {
	s := newTestServer(&fakeService{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyses", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	s := newTestServer(&fakeService{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/analyses", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSystemHealthHandler(t *testing.T) {
	s := newTestServer(&fakeService{}, &fakePool{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var health queue.PoolHealth
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.True(t, health.IsHealthy)
}
