package api

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/stridesec/threatmodel/pkg/models"
)

// createAnalysisHandler handles POST /api/v1/analyses.
func (s *Server) createAnalysisHandler(c *echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart field 'file' is required")
	}

	// Reject oversize uploads before buffering the whole body.
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
	if int64(len(image)) > maxBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
	}

	created, err := s.service.Create(c.Request().Context(), image, fileHeader.Filename)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, models.CreateResponseFromEnt(created))
}

// listAnalysesHandler handles GET /api/v1/analyses.
func (s *Server) listAnalysesHandler(c *echo.Context) error {
	params := models.ListParams{
		Code:   c.QueryParam("code"),
		Status: c.QueryParam("status"),
	}

	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			params.Page = p
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if sz, err := strconv.Atoi(v); err == nil && sz > 0 && sz <= 100 {
			params.Size = sz
		}
	}

	if v := c.QueryParam("created_at_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_at_from: must be YYYY-MM-DD")
		}
		params.CreatedFrom = &t
	}
	if v := c.QueryParam("created_at_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid created_at_to: must be YYYY-MM-DD")
		}
		params.CreatedTo = &t
	}

	result, err := s.service.List(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// getAnalysisHandler handles GET /api/v1/analyses/:id.
func (s *Server) getAnalysisHandler(c *echo.Context) error {
	analysisID := c.Param("id")
	if analysisID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "analysis id is required")
	}

	row, err := s.service.Get(c.Request().Context(), analysisID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, models.DetailFromEnt(row))
}

// getAnalysisImageHandler handles GET /api/v1/analyses/:id/image. The
// response content type is the sniffed MIME type recorded at upload.
func (s *Server) getAnalysisImageHandler(c *echo.Context) error {
	data, mime, err := s.service.GetImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	return c.Blob(http.StatusOK, mime, data)
}

// getAnalysisLogsHandler handles GET /api/v1/analyses/:id/logs.
func (s *Server) getAnalysisLogsHandler(c *echo.Context) error {
	logs, err := s.service.GetLogs(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"logs": logs})
}

// deleteAnalysisHandler handles DELETE /api/v1/analyses/:id. A RUNNING
// analysis has its job context cancelled; the worker abandons the result
// when it finds the row gone.
func (s *Server) deleteAnalysisHandler(c *echo.Context) error {
	analysisID := c.Param("id")

	if err := s.service.Delete(c.Request().Context(), analysisID); err != nil {
		return mapServiceError(err)
	}

	if s.pool != nil && s.pool.CancelJob(analysisID) {
		slog.Info("Cancelled running job for deleted analysis", "analysis_id", analysisID)
	}

	return c.NoContent(http.StatusNoContent)
}
