package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRouteFor(t *testing.T) {
	// Both admin roles share a landing route distinct from every other role's.
	assert.Equal(t, DefaultRouteFor(RoleUniversityAdmin), DefaultRouteFor(RoleSuperAdmin))
	assert.NotEqual(t, DefaultRouteFor(RoleUniversityAdmin), DefaultRouteFor(RoleStudent))
	assert.NotEqual(t, DefaultRouteFor(RoleUniversityAdmin), DefaultRouteFor(RoleEmployer))
	assert.NotEqual(t, DefaultRouteFor(RoleStudent), DefaultRouteFor(RoleEmployer))

	assert.Equal(t, RouteAdminDashboard, DefaultRouteFor(RoleSuperAdmin))
	assert.Equal(t, RouteStudentDashboard, DefaultRouteFor(RoleStudent))
	assert.Equal(t, RouteVerificationUpload, DefaultRouteFor(RoleEmployer))
}

func TestDefaultRouteFor_UnknownRole(t *testing.T) {
	assert.Equal(t, RouteLogin, DefaultRouteFor(Role("")))
	assert.Equal(t, RouteLogin, DefaultRouteFor(Role("auditor")))
}

func TestPortalRoutes_FlatPermissionModel(t *testing.T) {
	rules := PortalRoutes()

	// Every rule listing university_admin lists super_admin explicitly.
	for route, rule := range rules {
		if rule.Permits(RoleUniversityAdmin) && !rule.Public {
			assert.True(t, rule.Permits(RoleSuperAdmin),
				"route %s permits university_admin but not super_admin", route)
		}
	}
}

func TestRouteRule_Permits(t *testing.T) {
	rules := PortalRoutes()

	assert.True(t, rules[RouteAttestationLookup].Public)
	assert.True(t, rules[RouteLogin].Public)
	assert.True(t, rules[RouteAdminLogin].Public)

	assert.True(t, rules[RouteAdminDashboard].Permits(RoleSuperAdmin))
	assert.False(t, rules[RouteAdminDashboard].Permits(RoleStudent))
	assert.False(t, rules[RouteAdminDashboard].Permits(RoleEmployer))

	assert.True(t, rules[RouteStudentDashboard].Permits(RoleStudent))
	assert.False(t, rules[RouteStudentDashboard].Permits(RoleSuperAdmin))

	assert.True(t, rules[RouteVerificationUpload].Permits(RoleEmployer))
	assert.False(t, rules[RouteVerificationUpload].Permits(RoleStudent))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleSuperAdmin.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}
