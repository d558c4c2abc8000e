package domain

import "errors"

// Authentication errors. Messages are shown to the user verbatim, so they
// match the portal's wording.
var (
	ErrMissingField     = errors.New("all fields are required")
	ErrUnknownAccount   = errors.New("invalid admin credentials")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidAdminCode = errors.New("invalid admin code")
)

// External identity-provider errors.
var (
	ErrProviderTimeout     = errors.New("identity provider timed out")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)

// Token errors.
var (
	ErrTokenGeneration = errors.New("token generation failed")
)

// Session errors. ErrCorruptSession never reaches a caller; the store
// downgrades a corrupt durable record to the logged-out state.
var (
	ErrNoSession      = errors.New("no active session")
	ErrCorruptSession = errors.New("corrupt session record")
)
