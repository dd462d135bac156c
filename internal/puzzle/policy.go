package puzzle

import "github.com/mathadv/mathadv/internal/level"

const (
	// HighConfidence is the inclusive lower bound of the high band.
	HighConfidence = 80.0

	// LowConfidence is the exclusive upper bound of the low band. A score of
	// exactly 50 is mid.
	LowConfidence = 50.0
)

// Range is an inclusive integer interval.
type Range struct {
	Min, Max int
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Policy selects the operators and operand ranges for one
// (level, band, streak bracket) combination.
type Policy struct {
	Operators []Operator
	First     Range
	Second    Range
}

// bracket is a mid-band policy that applies while streak <= MaxStreak.
// The last bracket of a level has MaxStreak < 0 and catches everything.
type bracket struct {
	MaxStreak int
	Policy    Policy
}

type levelPolicy struct {
	Low  Policy
	Mid  []bracket
	High Policy
}

var (
	addSub    = []Operator{Add, Subtract}
	addSubMul = []Operator{Add, Subtract, Multiply}
	allOps    = []Operator{Add, Subtract, Multiply, Divide}
)

var policyTable = map[level.Level]levelPolicy{
	level.Easy: {
		Low: Policy{[]Operator{Add}, Range{1, 9}, Range{1, 9}},
		Mid: []bracket{
			{5, Policy{addSub, Range{1, 15}, Range{1, 15}}},
			{8, Policy{addSub, Range{5, 20}, Range{1, 15}}},
			{-1, Policy{addSub, Range{10, 30}, Range{1, 20}}},
		},
		High: Policy{addSubMul, Range{10, 30}, Range{1, 10}},
	},
	level.Medium: {
		Low: Policy{addSub, Range{10, 40}, Range{1, 20}},
		Mid: []bracket{
			{5, Policy{addSubMul, Range{10, 50}, Range{1, 20}}},
			{10, Policy{addSubMul, Range{20, 75}, Range{5, 25}}},
			{-1, Policy{allOps, Range{25, 99}, Range{5, 30}}},
		},
		High: Policy{allOps, Range{30, 99}, Range{5, 30}},
	},
	level.Hard: {
		Low: Policy{addSubMul, Range{10, 99}, Range{1, 30}},
		Mid: []bracket{
			{5, Policy{allOps, Range{10, 99}, Range{1, 50}}},
			{8, Policy{allOps, Range{50, 150}, Range{10, 50}}},
			{-1, Policy{allOps, Range{100, 250}, Range{10, 75}}},
		},
		High: Policy{allOps, Range{100, 999}, Range{10, 99}},
	},
}

// BandFor classifies confidence: high >= 80, low < 50, mid otherwise.
func BandFor(confidence float64) Band {
	switch {
	case confidence >= HighConfidence:
		return BandHigh
	case confidence < LowConfidence:
		return BandLow
	default:
		return BandMid
	}
}

// PolicyFor returns the operand policy for a level, band and streak. The
// second return value is false only for unsupported levels or bands.
func PolicyFor(l level.Level, band Band, streak int) (Policy, bool) {
	lp, ok := policyTable[l]
	if !ok {
		return Policy{}, false
	}
	switch band {
	case BandLow:
		return lp.Low, true
	case BandHigh:
		return lp.High, true
	case BandMid:
		for _, b := range lp.Mid {
			if b.MaxStreak < 0 || streak <= b.MaxStreak {
				return b.Policy, true
			}
		}
	}
	return Policy{}, false
}
