package puzzle

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/mathadv/mathadv/internal/level"
)

// Generator builds arithmetic puzzles from the policy table.
// It is safe for concurrent use.
type Generator struct {
	config Config
	mu     sync.Mutex
}

// New creates a Generator.
func New(cfg Config) *Generator {
	return &Generator{config: cfg}
}

// Generate returns a puzzle for the given level, streak and confidence.
// Unsupported levels and out-of-range confidence are rejected rather than
// coerced; every other failure is reported as a *GenerationError.
func (g *Generator) Generate(levelLabel string, streak int, confidence float64) (p *Puzzle, err error) {
	l, perr := level.Parse(levelLabel)
	if perr != nil {
		return nil, &InvalidLevelError{Level: levelLabel, Err: perr}
	}
	if math.IsNaN(confidence) || confidence < 0 || confidence > 100 {
		return nil, &InvalidConfidenceError{Confidence: confidence}
	}

	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = &GenerationError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	band := BandFor(confidence)
	policy, ok := PolicyFor(l, band, streak)
	if !ok || len(policy.Operators) == 0 {
		return nil, &GenerationError{Err: fmt.Errorf("no policy for %s/%s/streak %d", l, band, streak)}
	}

	p = g.build(l, band, policy)

	for _, v := range g.config.Validators {
		if verr := v.Validate(p, policy); verr != nil {
			return nil, &GenerationError{Err: verr}
		}
	}
	return p, nil
}

// build draws operands and an operator from the policy and computes the
// answer and expected time.
func (g *Generator) build(l level.Level, band Band, policy Policy) *Puzzle {
	a := g.between(policy.First)
	b := g.between(policy.Second)
	op := policy.Operators[g.intN(len(policy.Operators))]

	if op == Divide {
		a = b * g.between(Range{1, 9})
	}

	answer, err := apply(int64(a), op, int64(b))
	if err != nil {
		panic(err)
	}

	return &Puzzle{
		Question:     fmt.Sprintf("%d %s %d", a, op, b),
		Answer:       answer,
		ExpectedTime: ExpectedTime(level.Rank(l), op),
		Operator:     op,
		Operand1:     a,
		Operand2:     b,
		Level:        l,
		Band:         band,
	}
}

// between returns a uniform integer in the inclusive range.
func (g *Generator) between(r Range) int {
	return r.Min + g.intN(r.Max-r.Min+1)
}

func (g *Generator) intN(n int) int {
	if g.config.Rand == nil {
		return rand.IntN(n)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.config.Rand.IntN(n)
}
