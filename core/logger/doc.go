// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Run Awareness
//
// Every cook gets its own run id. The WithRun helper attaches the title and
// run id to a logger so all entries of one cook (downloads, resolution,
// transforms, writes) can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Cooking started")
//
//	l := logger.WithRun(log, "zzz", runID)
//	l.Error("Transform failed", zap.Error(err))
package logger
