package registry

import (
	"strings"

	"certgate/internal/domain"
)

// Registry is the fixed in-memory table of administrative accounts.
// Implements domain.CredentialRegistry.
//
// Secrets are stored and compared in plain form, matching the deployment
// table this portal ships with. Production use would require hashed
// storage and constant-time comparison.
type Registry struct {
	entries map[string]domain.RegistryEntry
}

// New creates a registry from the given entries, keyed by email.
func New(entries map[string]domain.RegistryEntry) *Registry {
	r := &Registry{entries: make(map[string]domain.RegistryEntry, len(entries))}
	for email, entry := range entries {
		r.entries[strings.ToLower(email)] = entry
	}
	return r
}

// Seeded returns the registry with the administrative accounts known at
// deployment time.
func Seeded() *Registry {
	return New(map[string]domain.RegistryEntry{
		"admin@certverifier.com": {
			ID:          "admin_1",
			FullName:    "System Administrator",
			Password:    "admin123",
			AdminCode:   "ADMIN2024",
			Role:        domain.RoleSuperAdmin,
			Institution: "Certificate Verification System",
		},
		"superadmin@certverifier.com": {
			ID:          "admin_2",
			FullName:    "Super Administrator",
			Password:    "superadmin123",
			AdminCode:   "SUPER2024",
			Role:        domain.RoleSuperAdmin,
			Institution: "Certificate Verification System",
		},
	})
}

// Lookup returns the entry for the given email, if any. Pure and
// deterministic; the table is never mutated after construction.
func (r *Registry) Lookup(email string) (*domain.RegistryEntry, bool) {
	entry, found := r.entries[strings.ToLower(email)]
	if !found {
		return nil, false
	}
	return &entry, true
}
