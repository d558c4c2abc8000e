package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"certgate/internal/domain"

	_ "modernc.org/sqlite"
)

// Durable record keys. These mirror the browser-storage keys the portal
// frontend historically used, so one row exists per key.
const (
	keyUser         = "user"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
)

// SessionStore holds the single live identity of the process and mirrors
// it into a local sqlite database so the session survives restarts.
// Implements domain.SessionStore.
//
// All state transitions happen under one mutex and the durable write or
// delete runs inside the same critical section as the in-memory update,
// so callers never observe a half-written record.
type SessionStore struct {
	mu       sync.Mutex
	db       *sql.DB
	identity *domain.Identity
	restored bool
	logger   *slog.Logger
}

// NewSessionStore opens (creating if needed) the durable store at path.
func NewSessionStore(path string, logger *slog.Logger) (*SessionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS session_records (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init session store: %w", err)
	}

	return &SessionStore{db: db, logger: logger}, nil
}

// Adopt sets identity as the current identity and persists it, replacing
// any prior identity in full. Tokens, when present, are persisted beside
// the identity; when absent, previously stored tokens are dropped.
func (s *SessionStore) Adopt(identity *domain.Identity, tokens *domain.TokenPair) error {
	if identity == nil {
		return domain.ErrNoSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO session_records (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		keyUser, string(record),
	); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	if tokens != nil {
		for key, value := range map[string]string{
			keyAccessToken:  tokens.AccessToken,
			keyRefreshToken: tokens.RefreshToken,
		} {
			if _, err := tx.Exec(
				`INSERT INTO session_records (key, value) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
				key, value,
			); err != nil {
				return fmt.Errorf("persist tokens: %w", err)
			}
		}
	} else {
		if _, err := tx.Exec(
			`DELETE FROM session_records WHERE key IN (?, ?)`,
			keyAccessToken, keyRefreshToken,
		); err != nil {
			return fmt.Errorf("drop stale tokens: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.identity = identity
	s.restored = true
	return nil
}

// Current returns the live identity, restoring it from durable storage
// the first time it is called in this process. A missing or corrupt
// record yields nil; corruption is recovered silently.
func (s *SessionStore) Current() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.restored {
		s.identity = s.restore()
		s.restored = true
	}
	return s.identity
}

// Clear removes the in-memory identity and deletes the durable record
// together with both token keys in one transaction. Calling it on an
// already-empty session is a no-op.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(
		`DELETE FROM session_records WHERE key IN (?, ?, ?)`,
		keyUser, keyAccessToken, keyRefreshToken,
	); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.identity = nil
	s.restored = true
	return nil
}

// Close releases the underlying database handle.
func (s *SessionStore) Close() error {
	return s.db.Close()
}

// restore loads the persisted identity. Callers must hold s.mu.
func (s *SessionStore) restore() *domain.Identity {
	var raw string
	err := s.db.QueryRow(
		`SELECT value FROM session_records WHERE key = ?`, keyUser,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		s.logger.Warn("session restore failed, treating as logged out", "error", err)
		return nil
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		s.discardCorrupt(fmt.Errorf("%w: %w", domain.ErrCorruptSession, err))
		return nil
	}

	// A record violating the identity invariants is as unusable as one
	// that fails to parse.
	if !identity.Role.Valid() || (identity.Role.Admin() && identity.AdminCode == "") {
		s.discardCorrupt(domain.ErrCorruptSession)
		return nil
	}

	return &identity
}

// discardCorrupt deletes an unusable durable record so the next restart
// starts from a clean logged-out state. Callers must hold s.mu.
func (s *SessionStore) discardCorrupt(cause error) {
	s.logger.Warn("discarding corrupt session record", "error", cause)
	if _, err := s.db.Exec(
		`DELETE FROM session_records WHERE key IN (?, ?, ?)`,
		keyUser, keyAccessToken, keyRefreshToken,
	); err != nil {
		s.logger.Warn("failed to discard corrupt session record", "error", err)
	}
}
