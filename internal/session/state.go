package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mathadv/mathadv/internal/confidence"
	"github.com/mathadv/mathadv/internal/level"
)

// State is the per-learner session state. It is passed into every Engine
// call and replaced by the value the call returns; the engine keeps no
// session state of its own.
type State struct {
	// SessionID identifies the session in the attempt log.
	SessionID string

	// Level is the difficulty of the next puzzle.
	Level level.Level

	// Streak is the number of consecutive correct answers so far.
	Streak int

	// Confidence is the most recent confidence score.
	Confidence float64
}

// NewState starts a session at Easy with no streak and baseline confidence.
func NewState() State {
	return State{
		SessionID:  NewSessionID(),
		Level:      level.Easy,
		Streak:     0,
		Confidence: confidence.Baseline,
	}
}

// NewSessionID returns "session_" followed by 8 hex characters.
func NewSessionID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "session_" + id[:8]
}

// Attempt is one answered question. Streak is the streak entering the
// attempt and Confidence the score computed for it.
type Attempt struct {
	SessionID    string
	Level        level.Level
	Correct      bool
	ResponseTime float64 // seconds
	Streak       int
	Confidence   float64
	Timestamp    time.Time
}
