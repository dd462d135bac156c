package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mathadv/mathadv/internal/confidence"
	"github.com/mathadv/mathadv/internal/level"
	"github.com/mathadv/mathadv/internal/puzzle"
	"github.com/mathadv/mathadv/internal/recommend"
	"github.com/mathadv/mathadv/internal/store"
)

// ErrNoPuzzle is returned by Submit when no puzzle is being answered.
var ErrNoPuzzle = errors.New("no active puzzle")

// Engine drives one answer-and-adapt cycle. Generator and Recommender are
// required; Repo and Logger may be nil.
type Engine struct {
	Generator   *puzzle.Generator
	Recommender *recommend.Recommender
	Repo        store.ProgressRepo
	Logger      *zap.Logger

	// Now is used to timestamp attempts. Defaults to time.Now.
	Now func() time.Time
}

// Result describes the outcome of a submitted answer.
type Result struct {
	Correct       bool
	CorrectAnswer string
	ResponseTime  float64 // seconds
	Confidence    float64
	NextLevel     level.Level
	Streak        int
}

// NextPuzzle generates a puzzle for the state's level, streak and confidence.
func (e *Engine) NextPuzzle(state State) (*puzzle.Puzzle, error) {
	return e.Generator.Generate(string(state.Level), state.Streak, state.Confidence)
}

// Submit checks answer against p, scores the attempt, recommends the next
// level and appends the attempt to the repo.
//
// The returned State replaces the caller's. A repo failure is returned
// wrapped alongside a fully advanced State and Result so the session can
// continue without persistence.
func (e *Engine) Submit(ctx context.Context, state State, p *puzzle.Puzzle, answer string, elapsed time.Duration) (Result, State, error) {
	if p == nil {
		return Result{}, state, ErrNoPuzzle
	}
	logger := e.logger()

	correct := puzzle.CheckAnswer(answer, p)
	responseTime := elapsed.Seconds()

	score, err := confidence.Calculate(correct, state.Level, responseTime, state.Streak, p.ExpectedTime)
	if err != nil {
		return Result{}, state, fmt.Errorf("score attempt: %w", err)
	}
	logger.Info("confidence scored",
		zap.String("session_id", state.SessionID),
		zap.Bool("correct", correct),
		zap.String("difficulty", string(state.Level)),
		zap.Float64("response_time", responseTime),
		zap.Int("streak", state.Streak),
		zap.Float64("expected_time", p.ExpectedTime),
		zap.Float64("confidence", float64(score)),
	)

	next, newStreak := e.Recommender.Recommend(state.Level, correct, responseTime, state.Streak, float64(score))

	res := Result{
		Correct:       correct,
		CorrectAnswer: p.AnswerString(),
		ResponseTime:  responseTime,
		Confidence:    float64(score),
		NextLevel:     next,
		Streak:        newStreak,
	}
	nextState := State{
		SessionID:  state.SessionID,
		Level:      next,
		Streak:     newStreak,
		Confidence: float64(score),
	}

	if e.Repo == nil {
		return res, nextState, nil
	}
	rec := store.AttemptRecord{
		SessionID:    state.SessionID,
		Timestamp:    e.now(),
		Difficulty:   string(state.Level),
		Correct:      correct,
		ResponseTime: responseTime,
		Streak:       state.Streak,
		Confidence:   float64(score),
	}
	if err := e.Repo.LogProgress(ctx, rec); err != nil {
		logger.Warn("attempt not recorded",
			zap.String("session_id", state.SessionID),
			zap.Error(err),
		)
		return res, nextState, fmt.Errorf("%w: %w", ErrNotRecorded, err)
	}
	return res, nextState, nil
}

// History returns the attempts logged for sessionID, oldest first.
func (e *Engine) History(ctx context.Context, sessionID string) ([]Attempt, error) {
	if e.Repo == nil {
		return nil, nil
	}
	recs, err := e.Repo.GetProgress(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return AttemptsFromRecords(recs), nil
}

// Resume rebuilds the State that followed the last logged attempt of
// sessionID by replaying the recommendation for it. A session with no
// attempts resumes at the starting level, streak and confidence.
func (e *Engine) Resume(ctx context.Context, sessionID string) (State, error) {
	state := NewState()
	state.SessionID = sessionID

	history, err := e.History(ctx, sessionID)
	if err != nil {
		return state, err
	}
	if len(history) == 0 {
		return state, nil
	}

	last := history[len(history)-1]
	next, streak := e.Recommender.Recommend(last.Level, last.Correct, last.ResponseTime, last.Streak, last.Confidence)
	state.Level = next
	state.Streak = streak
	state.Confidence = last.Confidence
	return state, nil
}

// AttemptsFromRecords converts stored rows to Attempts. Difficulty labels
// that no longer parse are kept verbatim.
func AttemptsFromRecords(recs []store.AttemptRecord) []Attempt {
	out := make([]Attempt, 0, len(recs))
	for _, r := range recs {
		lvl, err := level.Parse(r.Difficulty)
		if err != nil {
			lvl = level.Level(r.Difficulty)
		}
		out = append(out, Attempt{
			SessionID:    r.SessionID,
			Level:        lvl,
			Correct:      r.Correct,
			ResponseTime: r.ResponseTime,
			Streak:       r.Streak,
			Confidence:   r.Confidence,
			Timestamp:    r.Timestamp,
		})
	}
	return out
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
