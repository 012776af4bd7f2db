// Package analyzer is the HTTP client for the threat analyzer service,
// used by queue workers to run the pipeline on a claimed analysis.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/stridesec/threatmodel/pkg/threatmodel"
)

// Typed failures mapped from analyzer response codes.
var (
	// ErrInvalidInput covers 400/413/415: the image itself was rejected.
	ErrInvalidInput = errors.New("analyzer rejected input")

	// ErrNotADiagram covers 422: the guardrail judged the image not to be
	// an architecture diagram.
	ErrNotADiagram = errors.New("image is not an architecture diagram")

	// ErrPipelineFailed covers 5xx: the analysis pipeline itself failed.
	ErrPipelineFailed = errors.New("analysis pipeline failed")
)

// Response is a successful analyzer reply: the result plus the per-stage
// log lines recorded during the run.
type Response struct {
	Result    *threatmodel.AnalysisResult
	StageLogs []string
}

// Client calls the analyzer service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client. timeout bounds the whole analyze call; it should
// exceed the sum of the per-stage LLM timeouts.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type analyzeWire struct {
	threatmodel.AnalysisResult
	StageLogs []string `json:"stage_logs"`
}

// Analyze uploads the image and returns the decoded analysis result.
func (c *Client) Analyze(ctx context.Context, image []byte, filename string) (*Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building multipart request: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("building multipart request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("building multipart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/threat-model/analyze", &body)
	if err != nil {
		return nil, fmt.Errorf("building analyze request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPipelineFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.mapError(resp)
	}

	var wire analyzeWire
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrPipelineFailed, err)
	}
	return &Response{
		Result:    &wire.AnalysisResult,
		StageLogs: wire.StageLogs,
	}, nil
}

func (c *Client) mapError(resp *http.Response) error {
	message := readErrorMessage(resp.Body)

	var base error
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		base = ErrInvalidInput
	case http.StatusUnprocessableEntity:
		base = ErrNotADiagram
	default:
		base = ErrPipelineFailed
	}

	if message == "" {
		return fmt.Errorf("%w (status %d)", base, resp.StatusCode)
	}
	return fmt.Errorf("%w: %s", base, message)
}

// readErrorMessage extracts the "message" field of an error body, falling
// back to the raw text.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(data))
}
