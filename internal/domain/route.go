package domain

// RouteID identifies a navigable surface of the portal.
type RouteID string

const (
	RouteLogin                RouteID = "login"
	RouteAdminLogin           RouteID = "admin-login"
	RouteAttestationLookup    RouteID = "attestation-lookup"
	RouteAdminDashboard       RouteID = "admin-dashboard"
	RouteIssueCertificate     RouteID = "issue-certificate"
	RouteLegacyReview         RouteID = "legacy-verification-review"
	RouteStudentDashboard     RouteID = "student-dashboard"
	RouteStudentLegacyRequest RouteID = "student-legacy-verification-request"
	RouteVerificationUpload   RouteID = "verification-upload"
)

// Decision is the outcome of authorizing a navigation request.
type Decision string

const (
	DecisionAllow             Decision = "allow"
	DecisionRedirectToDefault Decision = "redirect_to_default"
	DecisionRedirectToLogin   Decision = "redirect_to_login"
)

// RouteRule declares which roles may view a route. A public rule admits
// anyone, authenticated or not.
type RouteRule struct {
	Public bool
	Roles  []Role
}

// Permits reports whether the rule admits the given role.
func (r RouteRule) Permits(role Role) bool {
	if r.Public {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// PortalRoutes returns the static route table. The permission model is
// flat: super_admin is listed explicitly in every rule that lists
// university_admin, there is no wildcard or inheritance.
func PortalRoutes() map[RouteID]RouteRule {
	adminPair := []Role{RoleUniversityAdmin, RoleSuperAdmin}
	return map[RouteID]RouteRule{
		RouteAttestationLookup:    {Public: true},
		RouteLogin:                {Public: true},
		RouteAdminLogin:           {Public: true},
		RouteAdminDashboard:       {Roles: adminPair},
		RouteIssueCertificate:     {Roles: adminPair},
		RouteLegacyReview:         {Roles: adminPair},
		RouteStudentDashboard:     {Roles: []Role{RoleStudent}},
		RouteStudentLegacyRequest: {Roles: []Role{RoleStudent}},
		RouteVerificationUpload:   {Roles: []Role{RoleEmployer}},
	}
}

// DefaultRouteFor maps a role to its landing route. Unknown roles and the
// logged-out state land on the login route.
func DefaultRouteFor(role Role) RouteID {
	switch role {
	case RoleUniversityAdmin, RoleSuperAdmin:
		return RouteAdminDashboard
	case RoleStudent:
		return RouteStudentDashboard
	case RoleEmployer:
		return RouteVerificationUpload
	default:
		return RouteLogin
	}
}
