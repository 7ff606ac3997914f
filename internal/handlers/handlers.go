package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sharespace/backend/internal/middleware"
	"github.com/sharespace/backend/internal/models"
)

// callerID returns the authenticated caller's user id placed into the
// context by the JWT middleware.
func callerID(c echo.Context) string {
	id, _ := c.Get(middleware.UserIDContextKey).(string)
	return id
}

// aggregateError maps service errors onto HTTP status codes. Unknown
// errors become opaque 500s so storage details never leak to clients.
func aggregateError(err error, notFoundMessage string) error {
	switch {
	case models.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMessage)
	case errors.Is(err, models.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	case errors.Is(err, models.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
