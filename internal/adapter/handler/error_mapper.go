package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"studio-hub/internal/domain"

	"github.com/labstack/echo/v4"
)

// mapDomainError converts a domain error into an appropriate echo.HTTPError.
// The switch is total over the domain taxonomy; an error outside it is a
// defect and is logged before falling back to 500, never silently coerced.
func mapDomainError(c echo.Context, err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrNoAuthorization):
		return echo.NewHTTPError(http.StatusUnauthorized, "no authorization given")

	case errors.Is(err, domain.ErrUserNameMissing):
		return echo.NewHTTPError(http.StatusBadRequest, "no user name in token given")

	case errors.Is(err, domain.ErrDomainNameMissing):
		return echo.NewHTTPError(http.StatusBadRequest, "no domain name provided")

	case errors.Is(err, domain.ErrUserNotInGroup):
		return echo.NewHTTPError(http.StatusForbidden, "user not in group for requested domain")

	case errors.Is(err, domain.ErrDomainNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "could not find domain")

	case errors.Is(err, domain.ErrUnrecoverableProvisioning):
		return echo.NewHTTPError(http.StatusInternalServerError, "unrecoverable error from SageMaker API")

	default:
		slog.ErrorContext(c.Request().Context(), "unhandled domain error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
