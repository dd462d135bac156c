package puzzle

import "fmt"

// Validator checks a generated puzzle before it is returned.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages, e.g.
	// "structural" or "math-check".
	Name() string

	// Validate returns nil if the puzzle passes. The policy the puzzle was
	// drawn from is passed for range checks.
	Validate(p *Puzzle, policy Policy) *ValidationError
}

// ValidationError describes why a puzzle failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks operands, divisor and expected time.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Puzzle, policy Policy) *ValidationError {
	if p.Question == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if p.ExpectedTime <= 0 {
		return &ValidationError{Validator: v.Name(), Message: "expected time must be positive"}
	}
	if p.Operator == Divide {
		if p.Operand2 == 0 {
			return &ValidationError{Validator: v.Name(), Message: "division by zero"}
		}
		// The dividend is rebuilt from the divisor, so only the divisor
		// is held to the policy range.
		if !policy.Second.Contains(p.Operand2) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("divisor %d outside %v", p.Operand2, policy.Second),
			}
		}
		return nil
	}
	if !policy.First.Contains(p.Operand1) || !policy.Second.Contains(p.Operand2) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("operands %d, %d outside %v, %v", p.Operand1, p.Operand2, policy.First, policy.Second),
		}
	}
	return nil
}

// MathCheckValidator recomputes the answer from the question text.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(p *Puzzle, _ Policy) *ValidationError {
	computed, err := Evaluate(p.Question)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if computed != p.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %v but puzzle claims %v", computed, p.Answer),
		}
	}
	return nil
}
