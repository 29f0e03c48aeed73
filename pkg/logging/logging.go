// Package logging constructs the process-wide zap logger.
package logging

import "go.uber.org/zap"

// New returns a production logger, or a development logger when debug
// is set. Construction only fails on invalid sink paths, which neither
// preset uses, so failures fall back to a no-op logger.
func New(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
