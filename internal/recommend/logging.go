package recommend

import (
	"time"

	"go.uber.org/zap"
)

// LoggingClassifier is a decorator that logs every prediction.
type LoggingClassifier struct {
	inner  Classifier
	logger *zap.Logger
}

// WithLogging wraps a Classifier with debug logging of inputs, output and
// latency.
func WithLogging(c Classifier, logger *zap.Logger) Classifier {
	return &LoggingClassifier{inner: c, logger: logger}
}

func (l *LoggingClassifier) Predict(f Features) (int, error) {
	start := time.Now()
	rank, err := l.inner.Predict(f)

	fields := []zap.Field{
		zap.Int(FeatureDifficulty, f.Difficulty),
		zap.Float64(FeatureResponseTime, f.ResponseTime),
		zap.Int(FeatureCorrect, f.Correct),
		zap.Int(FeatureStreak, f.Streak),
		zap.Float64(FeatureConfidence, f.Confidence),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.logger.Debug("level prediction", append(fields, zap.Error(err))...)
		return rank, err
	}
	l.logger.Debug("level prediction", append(fields, zap.Int("predicted_rank", rank))...)
	return rank, nil
}
