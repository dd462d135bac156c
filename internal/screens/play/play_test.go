package play

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mathadv/mathadv/internal/level"
	"github.com/mathadv/mathadv/internal/puzzle"
	"github.com/mathadv/mathadv/internal/recommend"
	"github.com/mathadv/mathadv/internal/router"
	sess "github.com/mathadv/mathadv/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// fakeClock advances by step on every call.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func testPlayScreen(t *testing.T, responses ...recommend.MockResponse) *PlayScreen {
	t.Helper()
	rec, err := recommend.New(recommend.NewMockClassifier(responses...), nil)
	if err != nil {
		t.Fatalf("new recommender: %v", err)
	}
	cfg := puzzle.DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(3, 5))

	engine := &sess.Engine{Generator: puzzle.New(cfg), Recommender: rec}
	s := New(engine, sess.State{SessionID: "session_test0001", Level: level.Easy, Confidence: 50})
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), step: 2 * time.Second}
	s.now = clock.now
	return s
}

// withPuzzle installs a fixed puzzle as if generation had just finished.
func withPuzzle(s *PlayScreen) {
	s.Update(puzzleReadyMsg{Puzzle: &puzzle.Puzzle{
		Question:     "6 + 3",
		Answer:       9,
		ExpectedTime: 5,
		Operator:     puzzle.Add,
		Operand1:     6,
		Operand2:     3,
		Level:        level.Easy,
		Band:         puzzle.BandMid,
	}})
}

func TestPlayScreen_Title(t *testing.T) {
	s := testPlayScreen(t)
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestPlayScreen_View_Loading(t *testing.T) {
	s := testPlayScreen(t)
	if !strings.Contains(s.View(80, 24), "Preparing") {
		t.Error("expected loading message before the first puzzle")
	}
}

func TestPlayScreen_GeneratesPuzzleForState(t *testing.T) {
	s := testPlayScreen(t)

	msg := s.generateNextPuzzle()()
	ready, ok := msg.(puzzleReadyMsg)
	if !ok {
		t.Fatalf("expected puzzleReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("generate: %v", ready.Err)
	}
	if ready.Puzzle.Level != level.Easy {
		t.Errorf("puzzle level = %s, want Easy", ready.Puzzle.Level)
	}

	s.Update(ready)
	if !strings.Contains(s.View(80, 24), ready.Puzzle.Question) {
		t.Error("expected the question in the view")
	}
}

func TestPlayScreen_AnswerSubmit(t *testing.T) {
	s := testPlayScreen(t, recommend.MockResponse{Rank: 2})
	withPuzzle(s)

	var scr router.Screen = s
	scr, _ = scr.Update(keyPress('9'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PlayScreen)

	if !ps.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	if ps.result == nil || !ps.result.Correct {
		t.Fatalf("expected a correct result, got %+v", ps.result)
	}
	// 50 + 20 + 0 + 2*(5-2) + 3
	if ps.result.Confidence != 79 {
		t.Errorf("confidence = %v, want 79", ps.result.Confidence)
	}

	st := ps.State()
	if st.Level != level.Medium || st.Streak != 1 || st.Confidence != 79 {
		t.Errorf("state = %+v", st)
	}
	if len(ps.attempts) != 1 || ps.attempts[0].Streak != 0 || ps.attempts[0].Level != level.Easy {
		t.Errorf("tracker = %+v", ps.attempts)
	}
	if !strings.Contains(ps.View(120, 30), "Next recommended level: Medium") {
		t.Error("expected the recommendation in the feedback view")
	}
}

func TestPlayScreen_WrongAnswerShowsCorrectOne(t *testing.T) {
	s := testPlayScreen(t, recommend.MockResponse{Rank: 1})
	withPuzzle(s)

	s.input.Model.SetValue("8")
	s.Update(specialKey(tea.KeyEnter))

	if s.result == nil || s.result.Correct {
		t.Fatalf("expected an incorrect result, got %+v", s.result)
	}
	if !strings.Contains(s.View(80, 24), "Correct answer: 9") {
		t.Error("expected the correct answer in the feedback view")
	}
	if s.State().Streak != 0 {
		t.Errorf("streak = %d, want 0", s.State().Streak)
	}
}

func TestPlayScreen_EmptyAnswerIgnored(t *testing.T) {
	s := testPlayScreen(t)
	withPuzzle(s)

	s.Update(specialKey(tea.KeyEnter))
	if s.showingFeedback {
		t.Error("expected empty answer to be ignored")
	}
}

func TestPlayScreen_FeedbackDismiss(t *testing.T) {
	s := testPlayScreen(t, recommend.MockResponse{Rank: 1})
	withPuzzle(s)
	s.input.Model.SetValue("9")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command after feedback dismiss")
	}
	if _, ok := cmd().(feedbackDoneMsg); !ok {
		t.Fatal("expected feedbackDoneMsg")
	}

	_, cmd = s.Update(feedbackDoneMsg{})
	if s.showingFeedback || s.puzzle != nil {
		t.Error("expected feedback cleared while the next puzzle generates")
	}
	if _, ok := cmd().(puzzleReadyMsg); !ok {
		t.Error("expected next puzzle generation")
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	s := testPlayScreen(t)
	withPuzzle(s)

	s.Update(specialKey(tea.KeyEscape))
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}

	s.Update(keyPress('n'))
	if s.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestPlayScreen_QuitConfirm_YesShowsSummary(t *testing.T) {
	s := testPlayScreen(t)
	withPuzzle(s)

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Fatal("expected sessionEndMsg")
	}

	_, cmd = s.Update(sessionEndMsg{})
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if replace.Screen.Title() != "Session Summary" {
		t.Errorf("expected summary screen, got %q", replace.Screen.Title())
	}
}

func TestPlayScreen_GenerationErrorIsFriendly(t *testing.T) {
	s := testPlayScreen(t)
	s.Update(puzzleReadyMsg{Err: &puzzle.InvalidConfidenceError{Confidence: 140}})

	view := s.View(80, 24)
	if !strings.Contains(view, "math/logic error") {
		t.Errorf("expected friendly error in view, got %q", view)
	}
	_, cmd := s.Update(keyPress('x'))
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected any key to end the session after an error")
	}
}

func TestPlayScreen_HistoryLoaded(t *testing.T) {
	s := testPlayScreen(t)
	s.Update(historyLoadedMsg{Attempts: []sess.Attempt{
		{Correct: true, ResponseTime: 3},
		{Correct: false, ResponseTime: 5},
	}})
	if !strings.Contains(s.View(120, 30), "50.0%") {
		t.Error("expected accuracy from loaded history in the tracker")
	}

	s.Update(historyLoadedMsg{Err: errors.New("db locked")})
	if !strings.Contains(s.warnMsg, "unexpected error") {
		t.Errorf("warnMsg = %q", s.warnMsg)
	}
}

func TestPlayScreen_KeyHints(t *testing.T) {
	s := testPlayScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
	s.showingQuitConfirm = true
	if s.KeyHints()[0].Key != "Y" {
		t.Error("expected quit hints while confirming")
	}
}
