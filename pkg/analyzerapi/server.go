// Package analyzerapi is the HTTP surface of the threat analyzer service.
// It accepts a diagram image and runs the analysis pipeline synchronously.
package analyzerapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/stridesec/threatmodel/pkg/agents"
	"github.com/stridesec/threatmodel/pkg/config"
	"github.com/stridesec/threatmodel/pkg/imagestore"
	"github.com/stridesec/threatmodel/pkg/pipeline"
	"github.com/stridesec/threatmodel/pkg/threatmodel"
)

// Runner is the pipeline surface the analyze handler depends on.
type Runner interface {
	Run(ctx context.Context, image []byte, observe pipeline.StageObserver) (*threatmodel.AnalysisResult, error)
}

// Server is the analyzer API server.
type Server struct {
	cfg    *config.Config
	runner Runner

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the server and registers all routes.
func NewServer(cfg *config.Config, runner Runner) *Server {
	s := &Server{
		cfg:    cfg,
		runner: runner,
		echo:   echo.New(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.healthHandler)
	s.echo.POST("/api/v1/threat-model/analyze", s.analyzeHandler)
}

// Handler exposes the routing tree, used by handler tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving on addr and blocks until the listener closes.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) healthHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
}

// analyzeHandler handles POST /api/v1/threat-model/analyze. The response is
// the full analysis result plus the stage log lines collected during the run.
func (s *Server) analyzeHandler(c *echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field 'file' is required")
	}

	maxBytes := s.cfg.Upload.MaxSizeBytes()
	if fileHeader.Size > maxBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}
	if len(image) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "uploaded file is empty")
	}
	if int64(len(image)) > maxBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
	}

	mime, ok := imagestore.SniffMIME(image)
	if !ok || !s.cfg.Upload.TypeAllowed(mime) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported content type: expected png, jpeg, webp or gif")
	}

	var stageLogs []string
	observe := func(stage string, elapsed time.Duration) {
		stageLogs = append(stageLogs, fmt.Sprintf("%s completed in %.2fs", stage, elapsed.Seconds()))
	}

	result, err := s.runner.Run(c.Request().Context(), image, observe)
	if err != nil {
		return mapPipelineError(err)
	}

	body, err := result.AsMap()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	body["stage_logs"] = stageLogs

	return c.JSON(http.StatusOK, body)
}

// mapPipelineError maps pipeline failures to HTTP error responses.
func mapPipelineError(err error) *echo.HTTPError {
	if errors.Is(err, agents.ErrNotADiagram) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "image does not appear to be an architecture diagram")
	}

	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		return echo.NewHTTPError(http.StatusBadGateway, stageErr.Error())
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
