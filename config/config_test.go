package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8888", cfg.Port)
	assert.Equal(t, "certgate-session.db", cfg.SessionDBPath)
	assert.Equal(t, "http://kratos:4433", cfg.IdentityProviderURL)
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("SESSION_DB_PATH", "/tmp/sessions.db")
	t.Setenv("PROVIDER_TIMEOUT", "2s")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "/tmp/sessions.db", cfg.SessionDBPath)
	assert.Equal(t, 2*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "not-a-duration")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PROVIDER_TIMEOUT")
}

func TestLoad_NegativeTimeoutRejected(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT", "-1s")

	_, err := Load()

	assert.Error(t, err)
}

func TestGetEnv_FileIndirection(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "token_secret")
	require.NoError(t, os.WriteFile(secretFile, []byte("s3cret\n"), 0o600))
	t.Setenv("TOKEN_SECRET_FILE", secretFile)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.TokenSecret)
}

func TestGetEnv_PlainValueWins(t *testing.T) {
	t.Setenv("TOKEN_ISSUER", "custom-issuer")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "custom-issuer", cfg.TokenIssuer)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Port:                "8888",
		SessionDBPath:       "x.db",
		IdentityProviderURL: "http://kratos:4433",
		ProviderTimeout:     time.Second,
	}
	assert.NoError(t, valid.Validate())

	noPort := valid
	noPort.Port = ""
	assert.Error(t, noPort.Validate())

	noDB := valid
	noDB.SessionDBPath = ""
	assert.Error(t, noDB.Validate())

	noProvider := valid
	noProvider.IdentityProviderURL = ""
	assert.Error(t, noProvider.Validate())
}
