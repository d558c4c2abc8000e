package usecase

import (
	"context"
	"log/slog"

	"certgate/internal/domain"
)

// AdminLogin authenticates the administrative path: credentials plus
// access code, validated against the credential registry.
type AdminLogin struct {
	registry domain.CredentialRegistry
	sessions domain.SessionStore
	logger   *slog.Logger
}

// NewAdminLogin creates a new AdminLogin usecase.
func NewAdminLogin(r domain.CredentialRegistry, s domain.SessionStore, l *slog.Logger) *AdminLogin {
	return &AdminLogin{registry: r, sessions: s, logger: l}
}

// Execute runs the checks in strict order: field presence before any
// lookup, then account, then password, then admin code. The first failed
// check short-circuits, so a caller learns exactly one failure kind per
// attempt. On success the minted identity is adopted into the session
// store before it is returned.
func (uc *AdminLogin) Execute(ctx context.Context, creds domain.Credentials) (*domain.Identity, error) {
	if creds.Email == "" || creds.Password == "" || creds.AdminCode == "" {
		return nil, domain.ErrMissingField
	}

	entry, found := uc.registry.Lookup(creds.Email)
	if !found {
		uc.logger.WarnContext(ctx, "admin login for unknown account", "email", creds.Email)
		return nil, domain.ErrUnknownAccount
	}

	if entry.Password != creds.Password {
		uc.logger.WarnContext(ctx, "admin login with wrong password", "email", creds.Email)
		return nil, domain.ErrInvalidPassword
	}

	if entry.AdminCode != creds.AdminCode {
		uc.logger.WarnContext(ctx, "admin login with wrong access code", "email", creds.Email)
		return nil, domain.ErrInvalidAdminCode
	}

	identity := &domain.Identity{
		ID:          entry.ID,
		FullName:    entry.FullName,
		Email:       creds.Email,
		Role:        entry.Role,
		Institution: entry.Institution,
		AdminCode:   entry.AdminCode,
	}

	if err := uc.sessions.Adopt(identity, nil); err != nil {
		uc.logger.ErrorContext(ctx, "failed to adopt admin session", "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "admin login succeeded", "email", creds.Email, "role", identity.Role)
	return identity, nil
}
