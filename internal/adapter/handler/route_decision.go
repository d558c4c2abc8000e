package handler

import (
	"net/http"

	"certgate/internal/domain"
	"certgate/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RouteDecisionHandler handles GET /route-decision, the surface the
// presentation layer consults before rendering a route.
type RouteDecisionHandler struct {
	uc *usecase.Authorize
}

// NewRouteDecisionHandler creates a new route decision handler.
func NewRouteDecisionHandler(uc *usecase.Authorize) *RouteDecisionHandler {
	return &RouteDecisionHandler{uc: uc}
}

type routeDecisionResponse struct {
	Route    domain.RouteID  `json:"route"`
	Decision domain.Decision `json:"decision"`
	Target   domain.RouteID  `json:"target"`
}

// Handle authorizes the requested route. An empty route parameter asks
// for the default landing route, which mirrors how the root route
// resolves in the portal.
func (h *RouteDecisionHandler) Handle(c echo.Context) error {
	route := domain.RouteID(c.QueryParam("route"))

	if route == "" {
		target := h.uc.DefaultRoute()
		return c.JSON(http.StatusOK, routeDecisionResponse{
			Route:    route,
			Decision: domain.DecisionRedirectToDefault,
			Target:   target,
		})
	}

	decision := h.uc.Execute(route)
	return c.JSON(http.StatusOK, routeDecisionResponse{
		Route:    route,
		Decision: decision.Decision,
		Target:   decision.Target,
	})
}
