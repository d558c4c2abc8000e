package usecase

import (
	"log/slog"

	"certgate/internal/domain"
)

// CurrentSession exposes the live identity, if any, to the presentation
// layer.
type CurrentSession struct {
	sessions domain.SessionStore
	logger   *slog.Logger
}

// NewCurrentSession creates a new CurrentSession usecase.
func NewCurrentSession(s domain.SessionStore, l *slog.Logger) *CurrentSession {
	return &CurrentSession{sessions: s, logger: l}
}

// Execute returns the current identity or domain.ErrNoSession.
func (uc *CurrentSession) Execute() (*domain.Identity, error) {
	identity := uc.sessions.Current()
	if identity == nil {
		return nil, domain.ErrNoSession
	}
	return identity, nil
}
