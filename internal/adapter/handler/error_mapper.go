package handler

import (
	"errors"
	"net/http"

	"certgate/internal/domain"

	"github.com/labstack/echo/v4"
)

// mapDomainError converts a domain error into an appropriate
// echo.HTTPError. Authentication failures carry their message verbatim;
// retry is always user-initiated, never automatic.
func mapDomainError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return echo.NewHTTPError(http.StatusBadRequest, domain.ErrMissingField.Error())

	case errors.Is(err, domain.ErrUnknownAccount),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrInvalidAdminCode):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())

	case errors.Is(err, domain.ErrNoSession):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")

	case errors.Is(err, domain.ErrProviderTimeout):
		return echo.NewHTTPError(http.StatusGatewayTimeout, domain.ErrProviderTimeout.Error())

	case errors.Is(err, domain.ErrProviderUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, domain.ErrProviderUnavailable.Error())

	case errors.Is(err, domain.ErrTokenGeneration):
		return echo.NewHTTPError(http.StatusInternalServerError, "token generation error")

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
