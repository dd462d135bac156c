package store

import (
	"context"
	"time"
)

// AttemptRecord is one answered question as stored in the attempt log.
type AttemptRecord struct {
	ID           int
	SessionID    string
	Timestamp    time.Time
	Difficulty   string
	Correct      bool
	ResponseTime float64 // seconds
	Streak       int     // streak entering the attempt
	Confidence   float64
}

// SessionInfo summarizes one session's attempts.
type SessionInfo struct {
	SessionID string
	Attempts  int
	Correct   int
	LastSeen  time.Time
}

// ProgressRepo is the append-only attempt log. Session ids are always
// bound as query parameters.
type ProgressRepo interface {
	// LogProgress appends one attempt. A zero Timestamp is set to now.
	LogProgress(ctx context.Context, rec AttemptRecord) error

	// GetProgress returns a session's attempts in the order they were logged.
	GetProgress(ctx context.Context, sessionID string) ([]AttemptRecord, error)

	// Sessions lists every session, most recently active first.
	Sessions(ctx context.Context) ([]SessionInfo, error)

	// DeleteSession removes a session's attempts and returns how many were
	// deleted.
	DeleteSession(ctx context.Context, sessionID string) (int, error)
}
