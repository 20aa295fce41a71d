// Package logging builds the zap loggers used across the engine.
package logging

import "go.uber.org/zap"

// NewLogger returns a zap logger. Verbose mode uses the development
// config (human-readable, debug level); otherwise the production config
// is quieted to warnings so command output stays clean.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
