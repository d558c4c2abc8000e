package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"certgate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignOut_ClearsSession(t *testing.T) {
	sessions := &mockSessionStore{identity: student()}
	uc := NewSignOut(sessions, slog.Default())

	require.NoError(t, uc.Execute(context.Background()))

	assert.Nil(t, sessions.Current())
	assert.Equal(t, 1, sessions.clears)
}

func TestSignOut_Idempotent(t *testing.T) {
	sessions := &mockSessionStore{identity: student()}
	uc := NewSignOut(sessions, slog.Default())

	require.NoError(t, uc.Execute(context.Background()))
	require.NoError(t, uc.Execute(context.Background()))

	assert.Nil(t, sessions.Current())
}

func TestSignOut_StoreFailure(t *testing.T) {
	sessions := &mockSessionStore{identity: student(), clearErr: errors.New("disk error")}
	uc := NewSignOut(sessions, slog.Default())

	assert.Error(t, uc.Execute(context.Background()))
}

func TestCurrentSession_WithIdentity(t *testing.T) {
	sessions := &mockSessionStore{identity: superAdmin()}
	uc := NewCurrentSession(sessions, slog.Default())

	identity, err := uc.Execute()

	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, identity.Role)
}

func TestCurrentSession_Empty(t *testing.T) {
	uc := NewCurrentSession(&mockSessionStore{}, slog.Default())

	identity, err := uc.Execute()

	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domain.ErrNoSession))
}
