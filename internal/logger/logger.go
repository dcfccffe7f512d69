package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger. jsonFormat switches the encoder to
// machine-readable JSON; debug lowers the level to Debug.
func New(jsonFormat, debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if jsonFormat {
		cfg.Encoding = "json"
	}
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}

// OrNop returns the logger unchanged, defaulting to a no-op logger when nil.
// Scoring components take an optional logger and must never panic on nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// ScoreFields returns the standard fields attached to every scoring log line.
func ScoreFields(component string, score, dataQuality float64, flags []string) []zap.Field {
	return []zap.Field{
		zap.String("component", component),
		zap.Float64("score", score),
		zap.Float64("data_quality", dataQuality),
		zap.Strings("flags", flags),
	}
}
