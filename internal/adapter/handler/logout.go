package handler

import (
	"net/http"

	"certgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LogoutHandler handles POST /auth/logout.
type LogoutHandler struct {
	uc *usecase.SignOut
}

// NewLogoutHandler creates a new logout handler.
func NewLogoutHandler(uc *usecase.SignOut) *LogoutHandler {
	return &LogoutHandler{uc: uc}
}

// Handle signs the current session out. Signing out of an empty session
// succeeds the same way.
func (h *LogoutHandler) Handle(c echo.Context) error {
	if err := h.uc.Execute(c.Request().Context()); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
