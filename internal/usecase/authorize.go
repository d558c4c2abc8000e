package usecase

import (
	"log/slog"

	"certgate/internal/domain"
)

// RouteDecision is the outcome of authorizing one navigation request.
// Target carries the route the caller should land on: the requested
// route itself on Allow, otherwise the redirect destination.
type RouteDecision struct {
	Decision domain.Decision
	Target   domain.RouteID
}

// Authorize gates every navigation request by role. Stateless per call:
// the only inputs are the static route table and whatever the session
// store holds right now, so a sign-out is reflected on the very next
// navigation with no separate invalidation step.
type Authorize struct {
	sessions domain.SessionStore
	rules    map[domain.RouteID]domain.RouteRule
	logger   *slog.Logger
}

// NewAuthorize creates an Authorize usecase over the portal route table.
func NewAuthorize(s domain.SessionStore, l *slog.Logger) *Authorize {
	return &Authorize{sessions: s, rules: domain.PortalRoutes(), logger: l}
}

// Execute decides whether the requested route may be shown.
func (uc *Authorize) Execute(route domain.RouteID) RouteDecision {
	rule, known := uc.rules[route]
	if known && rule.Public {
		return RouteDecision{Decision: domain.DecisionAllow, Target: route}
	}

	identity := uc.sessions.Current()
	if identity == nil {
		return RouteDecision{Decision: domain.DecisionRedirectToLogin, Target: domain.RouteLogin}
	}

	if known && rule.Permits(identity.Role) {
		return RouteDecision{Decision: domain.DecisionAllow, Target: route}
	}

	// Unknown routes and role mismatches both land on the role's
	// default surface.
	return RouteDecision{
		Decision: domain.DecisionRedirectToDefault,
		Target:   domain.DefaultRouteFor(identity.Role),
	}
}

// DefaultRoute returns the landing route for the current identity, or
// the login route when no session is live.
func (uc *Authorize) DefaultRoute() domain.RouteID {
	identity := uc.sessions.Current()
	if identity == nil {
		return domain.RouteLogin
	}
	return domain.DefaultRouteFor(identity.Role)
}
