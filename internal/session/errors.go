package session

import (
	"errors"

	"github.com/mathadv/mathadv/internal/confidence"
	"github.com/mathadv/mathadv/internal/level"
	"github.com/mathadv/mathadv/internal/puzzle"
	"github.com/mathadv/mathadv/internal/recommend"
)

// ErrNotRecorded is wrapped into Submit's error when the attempt could not
// be appended to the repo. The returned Result and State are still valid.
var ErrNotRecorded = errors.New("attempt not recorded")

// FriendlyError renders err for the learner. Input, scoring and puzzle
// validation failures read as a math/logic error; anything else is an
// unexpected error.
func FriendlyError(err error) string {
	if err == nil {
		return ""
	}
	if IsLogicError(err) {
		return "math/logic error: " + err.Error()
	}
	var model *recommend.ModelUnavailableError
	if errors.As(err, &model) {
		return "model unavailable: " + err.Error()
	}
	return "unexpected error: " + err.Error()
}

// IsLogicError reports whether err stems from bad numeric input or a
// puzzle that failed its own checks.
func IsLogicError(err error) bool {
	var (
		comp    *confidence.ComputationError
		lvl     *puzzle.InvalidLevelError
		conf    *puzzle.InvalidConfidenceError
		unknown *level.UnknownLevelError
		invalid *puzzle.ValidationError
	)
	return errors.As(err, &comp) ||
		errors.As(err, &lvl) ||
		errors.As(err, &conf) ||
		errors.As(err, &unknown) ||
		errors.As(err, &invalid)
}
