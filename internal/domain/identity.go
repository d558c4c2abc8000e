package domain

// Role classifies the four user classes of the portal.
type Role string

const (
	RoleStudent         Role = "student"
	RoleEmployer        Role = "employer"
	RoleUniversityAdmin Role = "university_admin"
	RoleSuperAdmin      Role = "super_admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployer, RoleUniversityAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// Admin reports whether r is an administrative role.
func (r Role) Admin() bool {
	return r == RoleUniversityAdmin || r == RoleSuperAdmin
}

// Identity represents the authenticated actor bound to the current session.
// Role is fixed at construction; an administrative Identity carries the
// admin code of the registry entry that minted it.
type Identity struct {
	ID          string `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Institution string `json:"institution,omitempty"`
	AdminCode   string `json:"admin_code,omitempty"`
}

// Credentials is the submitted login form. AdminCode is only set on the
// administrative path.
type Credentials struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminCode string `json:"admin_code,omitempty"`
}

// RegistryEntry is one administrative account known at deployment time,
// keyed by email in the credential registry. Read-only at runtime.
type RegistryEntry struct {
	ID          string
	FullName    string
	Password    string
	AdminCode   string
	Role        Role
	Institution string
}

// TokenPair holds the bearer tokens issued by the token issuer for
// non-administrative logins.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}
