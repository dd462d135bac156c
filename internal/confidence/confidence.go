package confidence

import (
	"fmt"
	"math"

	"github.com/mathadv/mathadv/internal/level"
)

const (
	// Baseline is the starting point before any term is applied.
	Baseline = 50.0

	// CorrectnessWeight is added for a correct answer and subtracted otherwise.
	CorrectnessWeight = 20.0

	// StreakCap bounds the streak contribution at 2*StreakCap points.
	StreakCap = 20

	// TimingLimit bounds the timing term in both directions.
	TimingLimit = 15.0

	// DifficultyBonus is multiplied by the level rank on correct answers.
	DifficultyBonus = 3.0

	Min = 0.0
	Max = 100.0
)

// Score is a confidence value in [0, 100], rounded to 2 decimal places.
type Score float64

// Terms is the per-term breakdown of a confidence computation.
type Terms struct {
	Baseline    float64
	Correctness float64
	Streak      float64
	Timing      float64
	Difficulty  float64
}

// Sum returns the unclamped total of all terms.
func (t Terms) Sum() float64 {
	return t.Baseline + t.Correctness + t.Streak + t.Timing + t.Difficulty
}

// ComputationError reports inputs that cannot be scored, such as NaN or
// infinite times.
type ComputationError struct {
	Field string
	Value float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("confidence: %s must be a finite number, got %v", e.Field, e.Value)
}

// Calculate turns the signals from one answered question into a bounded
// confidence score. Unknown difficulty labels count as rank 1 and negative
// streaks as 0.
func Calculate(correct bool, difficulty level.Level, responseTime float64, streak int, expectedTime float64) (Score, error) {
	terms, err := Breakdown(correct, difficulty, responseTime, streak, expectedTime)
	if err != nil {
		return 0, err
	}
	return Score(round2(clamp(terms.Sum(), Min, Max))), nil
}

// Breakdown computes the individual terms without clamping the total.
func Breakdown(correct bool, difficulty level.Level, responseTime float64, streak int, expectedTime float64) (Terms, error) {
	if !finite(responseTime) {
		return Terms{}, &ComputationError{Field: "response_time", Value: responseTime}
	}
	if !finite(expectedTime) {
		return Terms{}, &ComputationError{Field: "expected_time", Value: expectedTime}
	}

	c := 0.0
	if correct {
		c = 1
	}
	if streak < 0 {
		streak = 0
	}

	return Terms{
		Baseline:    Baseline,
		Correctness: CorrectnessWeight * (2*c - 1),
		Streak:      2 * float64(min(streak, StreakCap)),
		Timing:      clamp(2*(expectedTime-responseTime), -TimingLimit, TimingLimit),
		Difficulty:  DifficultyBonus * float64(level.RankOr(difficulty, 1)) * c,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
