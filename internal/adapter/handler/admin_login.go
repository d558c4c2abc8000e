package handler

import (
	"net/http"

	"certgate/internal/domain"
	"certgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminLoginHandler handles POST /auth/admin/login.
type AdminLoginHandler struct {
	uc *usecase.AdminLogin
}

// NewAdminLoginHandler creates a new admin login handler.
func NewAdminLoginHandler(uc *usecase.AdminLogin) *AdminLoginHandler {
	return &AdminLoginHandler{uc: uc}
}

// identityResponse is the user object returned on successful logins and
// session lookups.
type identityResponse struct {
	ID          string      `json:"id"`
	FullName    string      `json:"full_name"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	Institution string      `json:"institution,omitempty"`
	AdminCode   string      `json:"admin_code,omitempty"`
}

func toIdentityResponse(identity *domain.Identity) identityResponse {
	return identityResponse{
		ID:          identity.ID,
		FullName:    identity.FullName,
		Email:       identity.Email,
		Role:        identity.Role,
		Institution: identity.Institution,
		AdminCode:   identity.AdminCode,
	}
}

// Handle processes an administrative login.
func (h *AdminLoginHandler) Handle(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	identity, err := h.uc.Execute(c.Request().Context(), creds)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"ok":   true,
		"user": toIdentityResponse(identity),
	})
}
