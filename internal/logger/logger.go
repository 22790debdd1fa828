// Package logger provides structured logging with zap.
package logger

import "go.uber.org/zap"

// New creates a zap.Logger for the given environment and tags every entry
// with the service name. Production gets the JSON config, anything else the
// human-readable development setup.
func New(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	return logger.With(zap.String("service", "casting-submission"))
}
