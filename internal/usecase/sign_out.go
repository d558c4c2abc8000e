package usecase

import (
	"context"
	"log/slog"

	"certgate/internal/domain"
)

// SignOut clears the live session and its durable record, including any
// bearer tokens stored beside it. Idempotent: signing out of an empty
// session is a no-op.
type SignOut struct {
	sessions domain.SessionStore
	logger   *slog.Logger
}

// NewSignOut creates a new SignOut usecase.
func NewSignOut(s domain.SessionStore, l *slog.Logger) *SignOut {
	return &SignOut{sessions: s, logger: l}
}

// Execute clears the session.
func (uc *SignOut) Execute(ctx context.Context) error {
	if err := uc.sessions.Clear(); err != nil {
		uc.logger.ErrorContext(ctx, "failed to clear session", "error", err)
		return err
	}
	uc.logger.InfoContext(ctx, "signed out")
	return nil
}
