package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"qr-generator/internal/constants"
)

// Setup creates the log directory and returns a logger writing to
// <logDir>/app.log and to stdout. The returned closer releases the log file.
func Setup(logDir, logLevel string, stdout io.Writer) (*logrus.Logger, io.Closer, error) {
	if err := os.MkdirAll(logDir, constants.DirPermissions); err != nil {
		return nil, nil, fmt.Errorf("create log directory %s: %w", logDir, err)
	}

	logPath := filepath.Join(logDir, constants.LogFileName)
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", logPath, err)
	}

	logger := logrus.New()
	logger.SetOutput(io.MultiWriter(file, stdout))
	logger.SetLevel(parseLevel(logLevel))
	logger.SetFormatter(&PipeFormatter{TimestampFormat: constants.LogTimestampFormat})

	return logger, file, nil
}

// parseLevel falls back to info on an empty or unknown level
func parseLevel(logLevel string) logrus.Level {
	if logLevel == "" {
		return logrus.InfoLevel
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		log.Printf("Invalid log level %s, defaulting to info", logLevel)
		return logrus.InfoLevel
	}
	return level
}
