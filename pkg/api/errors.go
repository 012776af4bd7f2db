package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/stridesec/threatmodel/pkg/imagestore"
	"github.com/stridesec/threatmodel/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrEmptyUpload) {
		return echo.NewHTTPError(http.StatusBadRequest, "uploaded file is empty")
	}
	if errors.Is(err, imagestore.ErrUnsupportedImage) {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported content type: expected png, jpeg, webp or gif")
	}
	if errors.Is(err, services.ErrTooLarge) {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "analysis not found")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
