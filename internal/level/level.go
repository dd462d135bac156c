package level

import (
	"fmt"
	"strings"
)

// Level is a difficulty label. Only Easy, Medium and Hard are supported.
type Level string

const (
	Easy   Level = "Easy"
	Medium Level = "Medium"
	Hard   Level = "Hard"
)

// All returns the supported levels in ascending rank order.
func All() []Level {
	return []Level{Easy, Medium, Hard}
}

// UnknownLevelError is returned by Parse for labels outside the supported set.
type UnknownLevelError struct {
	Label string
}

func (e *UnknownLevelError) Error() string {
	return fmt.Sprintf("unknown difficulty level %q (want Easy, Medium or Hard)", e.Label)
}

// Parse normalizes a label case-insensitively. "Very Hard" and any other
// label outside the supported set are rejected.
func Parse(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return "", &UnknownLevelError{Label: s}
	}
}

// Rank returns 1, 2 or 3 for a supported level and 0 otherwise.
// The label is normalized first, so "hard" ranks the same as "Hard".
func Rank(l Level) int {
	parsed, err := Parse(string(l))
	if err != nil {
		return 0
	}
	switch parsed {
	case Easy:
		return 1
	case Medium:
		return 2
	default:
		return 3
	}
}

// RankOr returns the rank of l, or def when l is not a supported level.
func RankOr(l Level, def int) int {
	if r := Rank(l); r != 0 {
		return r
	}
	return def
}

// FromRank maps a numeric rank back to its level.
func FromRank(r int) (Level, bool) {
	switch r {
	case 1:
		return Easy, true
	case 2:
		return Medium, true
	case 3:
		return Hard, true
	default:
		return "", false
	}
}

// Valid reports whether l is one of the supported levels.
func (l Level) Valid() bool {
	return Rank(l) != 0
}

func (l Level) String() string {
	return string(l)
}
