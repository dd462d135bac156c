package recommend

import (
	"errors"
	"fmt"
)

// ErrNoClassifier is wrapped by ModelUnavailableError when New is called
// without a classifier.
var ErrNoClassifier = errors.New("no classifier configured")

// ModelUnavailableError indicates the classifier artifact is missing or
// corrupt. It is fatal: no recommendation can succeed without a model.
type ModelUnavailableError struct {
	Path string
	Err  error
}

func (e *ModelUnavailableError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("level recommender model unavailable: %v", e.Err)
	}
	return fmt.Sprintf("level recommender model unavailable (%s): %v", e.Path, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Err }

// PredictionError wraps a failed or panicking Predict call. The
// Recommender logs it and never returns it to callers.
type PredictionError struct {
	Features Features
	Err      error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("predict next level: %v", e.Err)
}

func (e *PredictionError) Unwrap() error { return e.Err }
