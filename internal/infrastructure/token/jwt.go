package token

import (
	"time"

	"certgate/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig holds token generation configuration.
type JWTConfig struct {
	Secret     string
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// accessClaims represents the JWT claims of an access token.
type accessClaims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	Sid   string      `json:"sid"`
	jwt.RegisteredClaims
}

// refreshClaims represents the JWT claims of a refresh token.
type refreshClaims struct {
	Sid string `json:"sid"`
	jwt.RegisteredClaims
}

// JWTIssuer mints the bearer token pair handed out on non-administrative
// logins. Implements domain.TokenIssuer.
type JWTIssuer struct {
	cfg JWTConfig
}

// NewJWTIssuer creates a new JWT issuer.
func NewJWTIssuer(cfg JWTConfig) *JWTIssuer {
	return &JWTIssuer{cfg: cfg}
}

// Issue generates a signed access/refresh token pair bound to the session id.
func (j *JWTIssuer) Issue(identity *domain.Identity, sessionID string) (domain.TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		Email: identity.Email,
		Role:  identity.Role,
		Sid:   sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.cfg.Issuer,
			Audience:  jwt.ClaimStrings{j.cfg.Audience},
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.cfg.AccessTTL)),
		},
	})
	accessToken, err := access.SignedString([]byte(j.cfg.Secret))
	if err != nil {
		return domain.TokenPair{}, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims{
		Sid: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.cfg.Issuer,
			Audience:  jwt.ClaimStrings{j.cfg.Audience},
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.cfg.RefreshTTL)),
		},
	})
	refreshToken, err := refresh.SignedString([]byte(j.cfg.Secret))
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(j.cfg.AccessTTL.Seconds()),
	}, nil
}
