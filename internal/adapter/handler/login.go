package handler

import (
	"net/http"

	"certgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LoginHandler handles POST /auth/login for students and employers.
type LoginHandler struct {
	uc *usecase.UserLogin
}

// NewLoginHandler creates a new login handler.
func NewLoginHandler(uc *usecase.UserLogin) *LoginHandler {
	return &LoginHandler{uc: uc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	OK           bool             `json:"ok"`
	User         identityResponse `json:"user"`
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	ExpiresIn    int              `json:"expires_in"`
}

// Handle processes a non-administrative login.
func (h *LoginHandler) Handle(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := h.uc.Execute(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapDomainError(err)
	}

	return c.JSON(http.StatusOK, loginResponse{
		OK:           true,
		User:         toIdentityResponse(result.Identity),
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
		ExpiresIn:    result.Tokens.ExpiresIn,
	})
}
