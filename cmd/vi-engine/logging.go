package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const logFileName = "vi-engine.log"

// setupLogging returns a file-backed logger in debug mode and a discarding one otherwise
// The terminal owns stdout, so logs never go there
func setupLogging(debug bool, dir string, level zerolog.Level) (zerolog.Logger, *os.File, error) {
	if !debug {
		return zerolog.New(io.Discard), nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "create log dir %s", dir)
	}
	path := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, eris.Wrapf(err, "open log file %s", path)
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, f, nil
}
