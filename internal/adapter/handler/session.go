package handler

import (
	"net/http"

	"certgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler handles GET /session returning the live identity.
type SessionHandler struct {
	uc *usecase.CurrentSession
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(uc *usecase.CurrentSession) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Handle returns the current identity, or 401 when nobody is signed in.
func (h *SessionHandler) Handle(c echo.Context) error {
	identity, err := h.uc.Execute()
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":   true,
		"user": toIdentityResponse(identity),
	})
}
