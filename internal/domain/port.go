package domain

import "context"

// CredentialRegistry looks up administrative accounts by email.
type CredentialRegistry interface {
	Lookup(email string) (*RegistryEntry, bool)
}

// IdentityProvider authenticates non-administrative users against the
// external identity service.
type IdentityProvider interface {
	Authenticate(ctx context.Context, email, password string) (*Identity, error)
}

// SessionStore owns the single live identity of the process and its
// durable record. Adopt replaces any prior identity unconditionally;
// passing tokens persists them beside the identity, passing nil drops any
// previously stored tokens. Current restores from durable storage at most
// once per process. Clear is idempotent.
type SessionStore interface {
	Adopt(identity *Identity, tokens *TokenPair) error
	Current() *Identity
	Clear() error
}

// TokenIssuer mints the bearer tokens handed to non-administrative users.
type TokenIssuer interface {
	Issue(identity *Identity, sessionID string) (TokenPair, error)
}
