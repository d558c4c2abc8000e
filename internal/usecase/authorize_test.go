package usecase

import (
	"log/slog"
	"testing"

	"certgate/internal/domain"

	"github.com/stretchr/testify/assert"
)

func student() *domain.Identity {
	return &domain.Identity{ID: "user-1", Role: domain.RoleStudent}
}

func superAdmin() *domain.Identity {
	return &domain.Identity{ID: "admin_1", Role: domain.RoleSuperAdmin, AdminCode: "ADMIN2024"}
}

func TestAuthorize_PublicRoutes(t *testing.T) {
	uc := NewAuthorize(&mockSessionStore{}, slog.Default())

	// Public routes allow anonymous visitors.
	for _, route := range []domain.RouteID{
		domain.RouteAttestationLookup,
		domain.RouteLogin,
		domain.RouteAdminLogin,
	} {
		decision := uc.Execute(route)
		assert.Equal(t, domain.DecisionAllow, decision.Decision, "route %s", route)
		assert.Equal(t, route, decision.Target)
	}
}

func TestAuthorize_PublicRouteWithSession(t *testing.T) {
	uc := NewAuthorize(&mockSessionStore{identity: student()}, slog.Default())

	decision := uc.Execute(domain.RouteAttestationLookup)
	assert.Equal(t, domain.DecisionAllow, decision.Decision)
}

func TestAuthorize_AnonymousRedirectsToLogin(t *testing.T) {
	uc := NewAuthorize(&mockSessionStore{}, slog.Default())

	for _, route := range []domain.RouteID{
		domain.RouteAdminDashboard,
		domain.RouteStudentDashboard,
		domain.RouteVerificationUpload,
		domain.RouteID("no-such-route"),
	} {
		decision := uc.Execute(route)
		assert.Equal(t, domain.DecisionRedirectToLogin, decision.Decision, "route %s", route)
		assert.Equal(t, domain.RouteLogin, decision.Target)
	}
}

func TestAuthorize_StudentOnAdminRoute(t *testing.T) {
	uc := NewAuthorize(&mockSessionStore{identity: student()}, slog.Default())

	decision := uc.Execute(domain.RouteAdminDashboard)

	assert.Equal(t, domain.DecisionRedirectToDefault, decision.Decision)
	assert.Equal(t, domain.RouteStudentDashboard, decision.Target)
}

func TestAuthorize_AdminRoles(t *testing.T) {
	adminRoutes := []domain.RouteID{
		domain.RouteAdminDashboard,
		domain.RouteIssueCertificate,
		domain.RouteLegacyReview,
	}

	// super_admin holds every privilege university_admin holds.
	for _, identity := range []*domain.Identity{
		superAdmin(),
		{ID: "admin_9", Role: domain.RoleUniversityAdmin, AdminCode: "CODE1"},
	} {
		uc := NewAuthorize(&mockSessionStore{identity: identity}, slog.Default())
		for _, route := range adminRoutes {
			decision := uc.Execute(route)
			assert.Equal(t, domain.DecisionAllow, decision.Decision,
				"role %s on route %s", identity.Role, route)
		}
	}
}

func TestAuthorize_AdminOnStudentRoute(t *testing.T) {
	uc := NewAuthorize(&mockSessionStore{identity: superAdmin()}, slog.Default())

	decision := uc.Execute(domain.RouteStudentDashboard)

	assert.Equal(t, domain.DecisionRedirectToDefault, decision.Decision)
	assert.Equal(t, domain.RouteAdminDashboard, decision.Target)
}

func TestAuthorize_EmployerRoutes(t *testing.T) {
	employer := &domain.Identity{ID: "user-2", Role: domain.RoleEmployer}
	uc := NewAuthorize(&mockSessionStore{identity: employer}, slog.Default())

	decision := uc.Execute(domain.RouteVerificationUpload)
	assert.Equal(t, domain.DecisionAllow, decision.Decision)

	decision = uc.Execute(domain.RouteStudentDashboard)
	assert.Equal(t, domain.DecisionRedirectToDefault, decision.Decision)
	assert.Equal(t, domain.RouteVerificationUpload, decision.Target)
}

func TestAuthorize_UnknownRouteWithSession(t *testing.T) {
	uc := NewAuthorize(&mockSessionStore{identity: student()}, slog.Default())

	decision := uc.Execute(domain.RouteID("no-such-route"))

	assert.Equal(t, domain.DecisionRedirectToDefault, decision.Decision)
	assert.Equal(t, domain.RouteStudentDashboard, decision.Target)
}

func TestAuthorize_SignOutReflectedImmediately(t *testing.T) {
	sessions := &mockSessionStore{identity: superAdmin()}
	uc := NewAuthorize(sessions, slog.Default())

	decision := uc.Execute(domain.RouteAdminDashboard)
	assert.Equal(t, domain.DecisionAllow, decision.Decision)

	// No invalidation step: the very next call re-derives from the store.
	_ = sessions.Clear()
	decision = uc.Execute(domain.RouteAdminDashboard)
	assert.Equal(t, domain.DecisionRedirectToLogin, decision.Decision)
}

func TestAuthorize_DefaultRoute(t *testing.T) {
	uc := NewAuthorize(&mockSessionStore{}, slog.Default())
	assert.Equal(t, domain.RouteLogin, uc.DefaultRoute())

	uc = NewAuthorize(&mockSessionStore{identity: student()}, slog.Default())
	assert.Equal(t, domain.RouteStudentDashboard, uc.DefaultRoute())

	uc = NewAuthorize(&mockSessionStore{identity: superAdmin()}, slog.Default())
	assert.Equal(t, domain.RouteAdminDashboard, uc.DefaultRoute())
}
