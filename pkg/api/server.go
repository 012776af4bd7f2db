// Package api is the intake HTTP surface: upload, listing, detail, image
// and log access, deletion, and health endpoints.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/stridesec/threatmodel/ent"
	"github.com/stridesec/threatmodel/pkg/config"
	"github.com/stridesec/threatmodel/pkg/database"
	"github.com/stridesec/threatmodel/pkg/models"
	"github.com/stridesec/threatmodel/pkg/queue"
)

// AnalysisService is the service surface the handlers depend on.
type AnalysisService interface {
	Create(ctx context.Context, image []byte, filename string) (*ent.Analysis, error)
	List(ctx context.Context, params models.ListParams) (*models.AnalysisListResponse, error)
	Get(ctx context.Context, id string) (*ent.Analysis, error)
	GetImage(ctx context.Context, id string) ([]byte, string, error)
	GetLogs(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

// Pool is the worker pool surface used for job cancellation and health.
type Pool interface {
	CancelJob(analysisID string) bool
	Health() *queue.PoolHealth
}

// Server is the intake API server.
type Server struct {
	cfg     *config.Config
	db      *database.Client
	service AnalysisService
	pool    Pool

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the server and registers all routes. db and pool may
// be nil in tests.
func NewServer(cfg *config.Config, db *database.Client, service AnalysisService, pool Pool) *Server {
	s := &Server{
		cfg:     cfg,
		db:      db,
		service: service,
		pool:    pool,
		echo:    echo.New(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.Use(securityHeaders())
	s.echo.Use(corsMiddleware(s.cfg.CORSOrigins))

	s.echo.GET("/health", s.healthHandler)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/analyses", s.createAnalysisHandler)
	v1.GET("/analyses", s.listAnalysesHandler)
	v1.GET("/analyses/:id", s.getAnalysisHandler)
	v1.GET("/analyses/:id/image", s.getAnalysisImageHandler)
	v1.GET("/analyses/:id/logs", s.getAnalysisLogsHandler)
	v1.DELETE("/analyses/:id", s.deleteAnalysisHandler)
	v1.GET("/system/health", s.systemHealthHandler)
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
