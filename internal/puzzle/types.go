package puzzle

import (
	"strconv"

	"github.com/mathadv/mathadv/internal/level"
)

// Operator is one of the four arithmetic operators a puzzle can use.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// Operators lists every supported operator.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

// Band classifies a confidence score for operand policy lookup.
type Band string

const (
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

// Puzzle is a generated arithmetic question. It is consumed once when the
// learner answers and is never persisted itself.
type Puzzle struct {
	// Question is "operand1 operator operand2", e.g. "12 + 7".
	Question string

	// Answer is the exact result. Division results are rounded to 2
	// decimals; every other operator yields an integer value.
	Answer float64

	// ExpectedTime is the baseline solve time in seconds for this level
	// and operator.
	ExpectedTime float64

	Operator Operator
	Operand1 int
	Operand2 int
	Level    level.Level
	Band     Band
}

// AnswerString formats the answer without trailing zeros ("42", "3.5").
func (p *Puzzle) AnswerString() string {
	return strconv.FormatFloat(p.Answer, 'f', -1, 64)
}
