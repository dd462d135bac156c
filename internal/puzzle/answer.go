package puzzle

import (
	"math"
	"strconv"
	"strings"
)

// answerTolerance absorbs rounding in 2-decimal answers.
const answerTolerance = 0.005

// CheckAnswer compares the learner's input against the puzzle answer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Integers and decimals are both accepted ("7", "7.0", "007")
// - Anything that does not parse as a number is incorrect
func CheckAnswer(learnerAnswer string, p *Puzzle) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" || p == nil {
		return false
	}
	v, err := strconv.ParseFloat(learnerAnswer, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return math.Abs(v-p.Answer) < answerTolerance
}
