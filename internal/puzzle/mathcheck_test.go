package puzzle

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		question string
		want     float64
		wantErr  bool
	}{
		{"12 + 7", 19, false},
		{"3 - 9", -6, false},
		{"14 * 6", 84, false},
		{"72 / 8", 9, false},
		{"10 / 4", 2.5, false},
		{"10 / 3", 3.33, false},
		{"6 × 7", 42, false},
		{"56 ÷ 7", 8, false},
		{"  5+5 ", 10, false},
		{"5 / 0", 0, true},
		{"What is 5 + 5?", 0, true},
		{"5 % 2", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.question)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Evaluate(%q): expected error, got %v", tt.question, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Evaluate(%q): unexpected error: %v", tt.question, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.question, got, tt.want)
		}
	}
}

func TestMathCheckValidator(t *testing.T) {
	v := &MathCheckValidator{}

	good := &Puzzle{Question: "9 * 9", Answer: 81}
	if err := v.Validate(good, Policy{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	bad := &Puzzle{Question: "9 * 9", Answer: 80}
	if err := v.Validate(bad, Policy{}); err == nil {
		t.Error("expected mismatch to fail")
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	policy := Policy{Operators: allOps, First: Range{1, 9}, Second: Range{1, 9}}

	tests := []struct {
		name    string
		p       Puzzle
		wantErr bool
	}{
		{"valid", Puzzle{Question: "3 + 4", Operator: Add, Operand1: 3, Operand2: 4, ExpectedTime: 5}, false},
		{"empty question", Puzzle{Operator: Add, Operand1: 3, Operand2: 4, ExpectedTime: 5}, true},
		{"zero expected time", Puzzle{Question: "3 + 4", Operator: Add, Operand1: 3, Operand2: 4}, true},
		{"operand out of range", Puzzle{Question: "30 + 4", Operator: Add, Operand1: 30, Operand2: 4, ExpectedTime: 5}, true},
		{"zero divisor", Puzzle{Question: "0 / 0", Operator: Divide, ExpectedTime: 10}, true},
		{"large dividend ok", Puzzle{Question: "72 / 9", Operator: Divide, Operand1: 72, Operand2: 9, ExpectedTime: 10}, false},
	}

	for _, tt := range tests {
		err := v.Validate(&tt.p, policy)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
