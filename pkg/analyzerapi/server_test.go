package analyzerapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stridesec/threatmodel/pkg/agents"
	"github.com/stridesec/threatmodel/pkg/config"
	"github.com/stridesec/threatmodel/pkg/pipeline"
	"github.com/stridesec/threatmodel/pkg/threatmodel"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n" + "fake image data")

type fakeRunner struct {
	result *threatmodel.AnalysisResult
	err    error

	gotImage []byte
	stages   []string
}

func (f *fakeRunner) Run(_ context.Context, image []byte, observe pipeline.StageObserver) (*threatmodel.AnalysisResult, error) {
	f.gotImage = image
	if f.err != nil {
		return nil, f.err
	}
	for _, stage := range []string{pipeline.StageDiagram, pipeline.StageStride, pipeline.StageDread} {
		f.stages = append(f.stages, stage)
		observe(stage, 1500*time.Millisecond)
	}
	return f.result, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Upload: &config.UploadConfig{
			MaxSizeMB:    1,
			AllowedTypes: []string{"image/png", "image/jpeg"},
		},
	}
}

func newTestServer(runner Runner) *Server {
	return NewServer(testConfig(), runner)
}

func multipartBody(t *testing.T, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "diagram.png")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func postAnalyze(t *testing.T, s *Server, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, data)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/threat-model/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeHandler(t *testing.T) {
	score := 7.5
	runner := &fakeRunner{
		result: &threatmodel.AnalysisResult{
			ModelUsed:  "gemini-1.5-pro",
			Components: []threatmodel.Component{{ID: "web", Type: "Service", Name: "Web"}},
			Threats: []threatmodel.Threat{{
				ComponentID: "web",
				ThreatType:  "Spoofing",
				Description: "stolen session tokens",
				Mitigation:  "bind sessions to client fingerprints",
				DreadScore:  &score,
			}},
			RiskScore: 7.5,
			RiskLevel: threatmodel.RiskHigh,
		},
	}
	s := newTestServer(runner)

	rec := postAnalyze(t, s, pngBytes)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pngBytes, runner.gotImage)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "gemini-1.5-pro", body["model_used"])
	assert.Equal(t, "HIGH", body["risk_level"])
	assert.Equal(t, float64(1), body["threat_count"])
	assert.Equal(t, float64(1), body["component_count"])

	logs, ok := body["stage_logs"].([]any)
	require.True(t, ok)
	require.Len(t, logs, 3)
	assert.Equal(t, "diagram_analysis completed in 1.50s", logs[0])
	assert.Equal(t, "stride_analysis completed in 1.50s", logs[1])
	assert.Equal(t, "dread_scoring completed in 1.50s", logs[2])
}

func TestAnalyzeMissingFile(t *testing.T) {
	s := newTestServer(&fakeRunner{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/threat-model/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeEmptyFile(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestServer(runner)

	rec := postAnalyze(t, s, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty")
	assert.Nil(t, runner.gotImage, "pipeline must not run on an empty upload")
}

func TestAnalyzeUnsupportedType(t *testing.T) {
	runner := &fakeRunner{}
	s := newTestServer(runner)

	rec := postAnalyze(t, s, []byte("%PDF-1.4 not an image"))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Nil(t, runner.gotImage)
}

func TestAnalyzeDisallowedType(t *testing.T) {
	// GIF sniffs fine but is not in this server's allow-list.
	runner := &fakeRunner{}
	s := newTestServer(runner)

	rec := postAnalyze(t, s, []byte("GIF89a...."))

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Nil(t, runner.gotImage)
}

func TestAnalyzeTooLarge(t *testing.T) {
	s := newTestServer(&fakeRunner{})

	oversize := append(append([]byte{}, pngBytes...), make([]byte, 1<<20)...)
	rec := postAnalyze(t, s, oversize)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestAnalyzeGuardrailRejection(t *testing.T) {
	s := newTestServer(&fakeRunner{err: agents.ErrNotADiagram})

	rec := postAnalyze(t, s, pngBytes)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "architecture diagram")
}

func TestAnalyzeStageFailure(t *testing.T) {
	stageErr := &pipeline.StageError{
		Stage: pipeline.StageStride,
		Cause: errors.New("all providers failed"),
	}
	s := newTestServer(&fakeRunner{err: stageErr})

	rec := postAnalyze(t, s, pngBytes)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "stride_analysis")
}

func TestAnalyzeUnexpectedFailure(t *testing.T) {
	s := newTestServer(&fakeRunner{err: errors.New("boom")})

	rec := postAnalyze(t, s, pngBytes)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer(&fakeRunner{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
