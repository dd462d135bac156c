package play

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathadv/mathadv/internal/puzzle"
	"github.com/mathadv/mathadv/internal/router"
	"github.com/mathadv/mathadv/internal/screens/summary"
	sess "github.com/mathadv/mathadv/internal/session"
	"github.com/mathadv/mathadv/internal/ui/components"
	"github.com/mathadv/mathadv/internal/ui/layout"
)

// PlayScreen runs the answer-and-adapt loop for one session.
type PlayScreen struct {
	engine *sess.Engine
	state  sess.State

	puzzle     *puzzle.Puzzle
	input      components.AnswerInput
	result     *sess.Result
	attempts   []sess.Attempt
	startedAt  time.Time
	askedAt    time.Time
	generating bool

	showingFeedback    bool
	showingQuitConfirm bool

	errMsg  string
	warnMsg string

	now func() time.Time
}

var _ router.Screen = (*PlayScreen)(nil)
var _ router.KeyHintProvider = (*PlayScreen)(nil)
var _ router.StatusProvider = (*PlayScreen)(nil)

// New creates a PlayScreen that continues from state.
func New(engine *sess.Engine, state sess.State) *PlayScreen {
	return &PlayScreen{
		engine: engine,
		state:  state,
		input:  newInput(),
		now:    time.Now,
	}
}

func newInput() components.AnswerInput {
	return components.NewAnswerInput("Type your answer...", 12)
}

func (s *PlayScreen) Init() tea.Cmd {
	s.startedAt = s.now()
	return tea.Batch(
		s.loadHistory(),
		s.generateNextPuzzle(),
		s.input.Init(),
	)
}

func (s *PlayScreen) Title() string {
	return "Practice"
}

func (s *PlayScreen) Status() layout.Status {
	return layout.Status{
		Level:      string(s.state.Level),
		Streak:     s.state.Streak,
		Confidence: s.state.Confidence,
	}
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Next puzzle"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Finish"},
	}
}

// State returns the current session state.
func (s *PlayScreen) State() sess.State {
	return s.state
}

func (s *PlayScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		return s.handleHistory(msg)

	case puzzleReadyMsg:
		return s.handlePuzzleReady(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.puzzle != nil && !s.showingFeedback && !s.showingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// loadHistory restores the live tracker for a resumed session.
func (s *PlayScreen) loadHistory() tea.Cmd {
	engine, id := s.engine, s.state.SessionID
	return func() tea.Msg {
		attempts, err := engine.History(context.Background(), id)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *PlayScreen) handleHistory(msg historyLoadedMsg) (router.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.warnMsg = sess.FriendlyError(msg.Err)
		return s, nil
	}
	// Keep the live tracker if the learner answered before the load finished.
	if len(s.attempts) == 0 {
		s.attempts = msg.Attempts
	}
	return s, nil
}

// generateNextPuzzle builds a puzzle for the current state asynchronously.
func (s *PlayScreen) generateNextPuzzle() tea.Cmd {
	engine, state := s.engine, s.state
	s.generating = true
	return func() tea.Msg {
		p, err := engine.NextPuzzle(state)
		return puzzleReadyMsg{Puzzle: p, Err: err}
	}
}

func (s *PlayScreen) handlePuzzleReady(msg puzzleReadyMsg) (router.Screen, tea.Cmd) {
	s.generating = false
	if msg.Err != nil {
		s.errMsg = sess.FriendlyError(msg.Err)
		return s, nil
	}

	s.puzzle = msg.Puzzle
	s.result = nil
	s.askedAt = s.now()
	s.input = newInput()
	return s, s.input.Init()
}

func (s *PlayScreen) handleFeedbackDone() (router.Screen, tea.Cmd) {
	s.showingFeedback = false
	s.puzzle = nil
	return s, s.generateNextPuzzle()
}

func (s *PlayScreen) handleSessionEnd() (router.Screen, tea.Cmd) {
	sum := sess.Summarize(s.attempts)
	elapsed := s.now().Sub(s.startedAt)
	next := summary.New(s.state, sum, elapsed)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key ends the session.
	if s.errMsg != "" {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	if s.puzzle == nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer scores the current answer and advances the session state.
func (s *PlayScreen) submitAnswer() (router.Screen, tea.Cmd) {
	if s.puzzle == nil {
		return s, nil
	}
	answer := s.input.Value()
	if answer == "" {
		return s, nil
	}

	elapsed := s.now().Sub(s.askedAt)
	entering := s.state

	res, next, err := s.engine.Submit(context.Background(), s.state, s.puzzle, answer, elapsed)
	switch {
	case errors.Is(err, sess.ErrNotRecorded):
		s.warnMsg = sess.FriendlyError(err)
	case err != nil:
		s.errMsg = sess.FriendlyError(err)
		return s, nil
	}

	s.state = next
	s.result = &res
	s.attempts = append(s.attempts, sess.Attempt{
		SessionID:    entering.SessionID,
		Level:        entering.Level,
		Correct:      res.Correct,
		ResponseTime: res.ResponseTime,
		Streak:       entering.Streak,
		Confidence:   res.Confidence,
		Timestamp:    s.now(),
	})
	s.input.Submit(res.Correct)
	s.showingFeedback = true
	return s, nil
}
