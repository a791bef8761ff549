package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "maze-chase.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a logger writing to logs/maze-chase.log when debug is set
// A log file over maxLogSize is rotated to a timestamped name first
// With debug off, or if the file cannot be opened, output is discarded and the file is nil
// The terminal owns stdout and stderr, so neither is ever used
func setupLogging(debug bool, level logrus.Level) (*logrus.Logger, *os.File) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if !debug {
		return logger, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return logger, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("maze-chase-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logger, nil
	}
	logger.SetOutput(f)
	return logger, f
}
