package testutil

import (
	"bytes"
	"testing"

	"github.com/GustavoCaso/expensify/internal/logger"
)

func TestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	// creates a test logger that doesn't output anything.
	testLogger := logger.New(logger.Config{
		Level:  logger.LevelInfo,
		Format: logger.FormatText,
		Output: "discard",
	})

	return testLogger
}

// BufferLogger returns a debug logger writing into the returned buffer.
func BufferLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	bufLogger := logger.NewWithWriter(buf, logger.Config{
		Level:  logger.LevelDebug,
		Format: logger.FormatText,
	})

	return bufLogger, buf
}
