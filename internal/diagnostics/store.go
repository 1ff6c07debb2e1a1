package diagnostics

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SessionStore appends every diagnostic emitted by a Sink to a local sqlite
// database, tagged with a per-compilation session UUID. This is a pure
// side observation of one compile run — an append-only log tooling can
// query for "what did the last few compiles complain about" — and never
// changes what gets re-checked; incremental recompilation stays a Non-goal
// (spec.md §1, SPEC_FULL.md §4.2).
type SessionStore struct {
	db        *sql.DB
	sessionID uuid.UUID
}

// OpenSessionStore opens (creating if absent) a sqlite database at path and
// starts a new session. Call Close when the compilation finishes.
func OpenSessionStore(path string) (*SessionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: open session store: %w", err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS diagnostics (
	session_id TEXT NOT NULL,
	seq        INTEGER NOT NULL,
	code       TEXT NOT NULL,
	kind       TEXT NOT NULL,
	file       TEXT NOT NULL,
	line       INTEGER NOT NULL,
	message    TEXT NOT NULL,
	suggestion TEXT NOT NULL DEFAULT ''
);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("diagnostics: init schema: %w", err)
	}
	return &SessionStore{db: db, sessionID: uuid.New()}, nil
}

// SessionID returns this run's session UUID.
func (s *SessionStore) SessionID() uuid.UUID { return s.sessionID }

// Append records one diagnostic under the current session. Errors are
// swallowed on purpose: the session store is an observability aid, never
// allowed to fail a compilation that would otherwise succeed.
func (s *SessionStore) Append(d Diagnostic) {
	if s == nil || s.db == nil {
		return
	}
	var seq int
	row := s.db.QueryRow(`SELECT COUNT(*) FROM diagnostics WHERE session_id = ?`, s.sessionID.String())
	_ = row.Scan(&seq)
	_, _ = s.db.Exec(
		`INSERT INTO diagnostics(session_id, seq, code, kind, file, line, message, suggestion) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.sessionID.String(), seq, string(d.Code), d.Kind.String(), d.File, d.Line, d.Message, d.Suggestion,
	)
}

// Close releases the underlying database handle.
func (s *SessionStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
