package play

import (
	"github.com/mathadv/mathadv/internal/puzzle"
	sess "github.com/mathadv/mathadv/internal/session"
)

// puzzleReadyMsg is sent when the next puzzle has been generated.
type puzzleReadyMsg struct {
	Puzzle *puzzle.Puzzle
	Err    error
}

// historyLoadedMsg carries the attempts already logged for the session.
type historyLoadedMsg struct {
	Attempts []sess.Attempt
	Err      error
}

// feedbackDoneMsg is sent when the learner dismisses the feedback view.
type feedbackDoneMsg struct{}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
