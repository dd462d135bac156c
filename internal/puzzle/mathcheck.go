package puzzle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// questionRe matches "a op b" with integer operands.
var questionRe = regexp.MustCompile(`^\s*(-?\d+)\s*([+\-*/×÷])\s*(-?\d+)\s*$`)

// Evaluate computes the answer of a question in "a op b" form. Division
// results are rounded to 2 decimals.
func Evaluate(question string) (float64, error) {
	m := questionRe.FindStringSubmatch(question)
	if m == nil {
		return 0, fmt.Errorf("not an arithmetic question: %q", question)
	}
	a, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid first operand: %w", err)
	}
	b, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid second operand: %w", err)
	}
	return apply(a, normalizeOp(m[2]), b)
}

func apply(a int64, op Operator, b int64) (float64, error) {
	switch op {
	case Add:
		return float64(a + b), nil
	case Subtract:
		return float64(a - b), nil
	case Multiply:
		return float64(a * b), nil
	case Divide:
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return round2(float64(a) / float64(b)), nil
	default:
		return 0, fmt.Errorf("unsupported operator: %s", op)
	}
}

// normalizeOp maps display symbols onto the canonical operators.
func normalizeOp(op string) Operator {
	switch op {
	case "×":
		return Multiply
	case "÷":
		return Divide
	default:
		return Operator(op)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
