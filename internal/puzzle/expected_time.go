package puzzle

// baseTimes holds the per-operator solve time in seconds at rank 1.
var baseTimes = map[Operator]float64{
	Add:      5,
	Subtract: 6,
	Multiply: 8,
	Divide:   10,
}

// rankStep is the extra time granted per difficulty rank above 1.
const rankStep = 1.5

// ExpectedTime returns the baseline solve time for an operator at a
// difficulty rank. Ranks are clamped to [1, 3]; unknown operators use the
// addition base time.
func ExpectedTime(rank int, op Operator) float64 {
	base, ok := baseTimes[op]
	if !ok {
		base = baseTimes[Add]
	}
	rank = min(max(rank, 1), 3)
	return base + float64(rank-1)*rankStep
}
