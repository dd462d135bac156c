package recommend

// Feature names, in the column order the level recommender was trained on.
const (
	FeatureDifficulty   = "difficulty"
	FeatureResponseTime = "response_time"
	FeatureCorrect      = "correct"
	FeatureStreak       = "streak"
	FeatureConfidence   = "confidence"
)

// FeatureNames lists every feature a classifier may split on.
var FeatureNames = []string{
	FeatureDifficulty,
	FeatureResponseTime,
	FeatureCorrect,
	FeatureStreak,
	FeatureConfidence,
}

// Features is one row of classifier input.
type Features struct {
	Difficulty   int     // rank 1-3
	ResponseTime float64 // seconds
	Correct      int     // 0 or 1
	Streak       int
	Confidence   float64
}

// Value returns the feature named name and whether the name is known.
func (f Features) Value(name string) (float64, bool) {
	switch name {
	case FeatureDifficulty:
		return float64(f.Difficulty), true
	case FeatureResponseTime:
		return f.ResponseTime, true
	case FeatureCorrect:
		return float64(f.Correct), true
	case FeatureStreak:
		return float64(f.Streak), true
	case FeatureConfidence:
		return f.Confidence, true
	default:
		return 0, false
	}
}

// Classifier predicts the next difficulty rank from one feature row.
// Implementations must be safe for concurrent use once constructed.
type Classifier interface {
	Predict(f Features) (int, error)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(f Features) (int, error)

func (fn ClassifierFunc) Predict(f Features) (int, error) { return fn(f) }
