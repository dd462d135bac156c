package recommend

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mathadv/mathadv/internal/level"
)

// defaultRank is used to encode a current level the classifier cannot
// understand.
const defaultRank = 2

// Recommender maps one answered question to the next difficulty level.
// It holds a read-only classifier and may be shared across goroutines.
type Recommender struct {
	classifier Classifier
	logger     *zap.Logger
}

// New creates a Recommender around c. A nil classifier is reported as a
// *ModelUnavailableError.
func New(c Classifier, logger *zap.Logger) (*Recommender, error) {
	if c == nil {
		return nil, &ModelUnavailableError{Err: ErrNoClassifier}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{classifier: c, logger: logger}, nil
}

// NewFromFile loads a forest artifact and wraps it. Load failures are
// returned as *ModelUnavailableError.
func NewFromFile(path string, logger *zap.Logger) (*Recommender, error) {
	forest, err := LoadForest(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("level recommender model loaded",
		zap.String("path", path),
		zap.Int("trees", forest.Len()),
	)
	return New(WithLogging(forest, logger), logger)
}

// Recommend returns the next level and the new streak.
//
// The streak becomes streak+1 on a correct answer and 0 otherwise,
// regardless of the prediction. If the classifier fails, panics or returns
// a rank outside 1-3, the current level is kept. Recommend never fails.
func (r *Recommender) Recommend(current level.Level, correct bool, responseTime float64, streak int, confidence float64) (level.Level, int) {
	newStreak := 0
	if correct {
		newStreak = streak + 1
	}

	fallback := current
	if parsed, err := level.Parse(string(current)); err == nil {
		fallback = parsed
	}

	c := 0
	if correct {
		c = 1
	}
	features := Features{
		Difficulty:   level.RankOr(current, defaultRank),
		ResponseTime: responseTime,
		Correct:      c,
		Streak:       streak,
		Confidence:   confidence,
	}

	rank, err := r.predict(features)
	if err != nil {
		r.logger.Warn("level prediction failed, keeping current level",
			zap.String("current_level", string(current)),
			zap.Error(err),
		)
		return fallback, newStreak
	}

	next, ok := level.FromRank(rank)
	if !ok {
		r.logger.Warn("classifier returned unknown rank, keeping current level",
			zap.String("current_level", string(current)),
			zap.Int("rank", rank),
		)
		return fallback, newStreak
	}
	return next, newStreak
}

// predict calls the classifier once, converting panics into errors.
func (r *Recommender) predict(f Features) (rank int, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &PredictionError{Features: f, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	rank, err = r.classifier.Predict(f)
	if err != nil {
		return 0, &PredictionError{Features: f, Err: err}
	}
	return rank, nil
}
