package puzzle

import "fmt"

// InvalidLevelError indicates a level label with no operand policy.
type InvalidLevelError struct {
	Level string
	Err   error
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level %q: must be Easy, Medium or Hard", e.Level)
}

func (e *InvalidLevelError) Unwrap() error { return e.Err }

// InvalidConfidenceError indicates a confidence outside [0, 100].
type InvalidConfidenceError struct {
	Confidence float64
}

func (e *InvalidConfidenceError) Error() string {
	return fmt.Sprintf("invalid confidence %v: must be between 0 and 100", e.Confidence)
}

// GenerationError wraps any other failure while building a puzzle.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("puzzle generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
