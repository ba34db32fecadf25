// Package logging builds the client's zap logger. The TUI owns the
// terminal, so everything is written to a file under the data dir.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns a sugared logger writing to <dataDir>/youthhub.log.
// Set YOUTH_DEBUG=1 for debug-level output.
func New(dataDir string) (*zap.SugaredLogger, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dataDir, "youthhub.log")}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	if os.Getenv("YOUTH_DEBUG") == "1" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything. Used in tests and as
// a fallback when the log file cannot be opened.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
