package logging

import "go.uber.org/zap"

// New creates a new zap logger
func New() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}
