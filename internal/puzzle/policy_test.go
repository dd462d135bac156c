package puzzle

import (
	"testing"

	"github.com/mathadv/mathadv/internal/level"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		confidence float64
		want       Band
	}{
		{0, BandLow},
		{49.99, BandLow},
		{50, BandMid},
		{50.01, BandMid},
		{79.99, BandMid},
		{80, BandHigh},
		{100, BandHigh},
	}
	for _, tt := range tests {
		if got := BandFor(tt.confidence); got != tt.want {
			t.Errorf("BandFor(%v) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestPolicyFor_Total(t *testing.T) {
	for _, l := range level.All() {
		for _, band := range []Band{BandLow, BandMid, BandHigh} {
			for streak := -1; streak <= 50; streak++ {
				p, ok := PolicyFor(l, band, streak)
				if !ok {
					t.Fatalf("no policy for %s/%s/streak %d", l, band, streak)
				}
				if len(p.Operators) == 0 {
					t.Fatalf("empty operator set for %s/%s/streak %d", l, band, streak)
				}
				if p.First.Min > p.First.Max || p.Second.Min > p.Second.Max {
					t.Fatalf("inverted range for %s/%s/streak %d", l, band, streak)
				}
				if p.Second.Min < 1 {
					t.Fatalf("second operand range must start at 1 or above for %s/%s", l, band)
				}
			}
		}
	}
}

func TestPolicyFor_StreakBrackets(t *testing.T) {
	tests := []struct {
		level  level.Level
		streak int
		want   Range
	}{
		{level.Easy, 5, Range{1, 15}},
		{level.Easy, 6, Range{5, 20}},
		{level.Easy, 8, Range{5, 20}},
		{level.Easy, 9, Range{10, 30}},
		{level.Medium, 5, Range{10, 50}},
		{level.Medium, 10, Range{20, 75}},
		{level.Medium, 11, Range{25, 99}},
		{level.Hard, 5, Range{10, 99}},
		{level.Hard, 8, Range{50, 150}},
		{level.Hard, 9, Range{100, 250}},
	}
	for _, tt := range tests {
		p, ok := PolicyFor(tt.level, BandMid, tt.streak)
		if !ok {
			t.Fatalf("no policy for %s streak %d", tt.level, tt.streak)
		}
		if p.First != tt.want {
			t.Errorf("%s streak %d: first range = %v, want %v", tt.level, tt.streak, p.First, tt.want)
		}
	}
}

func TestPolicyFor_UnknownLevel(t *testing.T) {
	if _, ok := PolicyFor("Very Hard", BandMid, 0); ok {
		t.Error("expected no policy for an unsupported level")
	}
}

func TestExpectedTime(t *testing.T) {
	tests := []struct {
		rank int
		op   Operator
		want float64
	}{
		{1, Add, 5},
		{1, Subtract, 6},
		{1, Multiply, 8},
		{1, Divide, 10},
		{2, Add, 6.5},
		{3, Divide, 13},
		{3, Multiply, 11},
		{0, Add, 5},
		{9, Add, 8},
		{1, "%", 5},
	}
	for _, tt := range tests {
		if got := ExpectedTime(tt.rank, tt.op); got != tt.want {
			t.Errorf("ExpectedTime(%d, %q) = %v, want %v", tt.rank, tt.op, got, tt.want)
		}
	}
}
