// Package logger builds the zap loggers used across the service.
package logger

import "go.uber.org/zap"

// New creates a zap logger appropriate for the given application environment.
// Production gets JSON output at info level, everything else a development
// console logger.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// NewNamed creates an environment-appropriate logger carrying the service name.
func NewNamed(env, name string) (*zap.Logger, error) {
	log, err := New(env)
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
