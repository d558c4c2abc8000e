package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"certgate/internal/domain"

	"github.com/google/uuid"
)

// LoginResult holds the data returned by UserLogin.
type LoginResult struct {
	Identity *domain.Identity
	Tokens   domain.TokenPair
}

// UserLogin authenticates the non-administrative path (students and
// employers) by delegating to the external identity provider, then mints
// bearer tokens and adopts the session.
type UserLogin struct {
	provider domain.IdentityProvider
	sessions domain.SessionStore
	tokens   domain.TokenIssuer
	logger   *slog.Logger
}

// NewUserLogin creates a new UserLogin usecase.
func NewUserLogin(p domain.IdentityProvider, s domain.SessionStore, t domain.TokenIssuer, l *slog.Logger) *UserLogin {
	return &UserLogin{provider: p, sessions: s, tokens: t, logger: l}
}

// Execute delegates {email, password} to the identity provider. The
// provider call is the single suspension point of the login: no session
// mutation happens until it resolves, and adoption of the identity plus
// tokens is one atomic store operation.
func (uc *UserLogin) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingField
	}

	identity, err := uc.provider.Authenticate(ctx, email, password)
	if err != nil {
		uc.logger.WarnContext(ctx, "user login rejected", "email", email, "error", err)
		return nil, err
	}

	sessionID := uuid.NewString()
	pair, err := uc.tokens.Issue(identity, sessionID)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to issue tokens", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrTokenGeneration, err)
	}

	if err := uc.sessions.Adopt(identity, &pair); err != nil {
		uc.logger.ErrorContext(ctx, "failed to adopt user session", "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "user login succeeded", "email", identity.Email, "role", identity.Role)
	return &LoginResult{Identity: identity, Tokens: pair}, nil
}
