package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCliLogger_NotVerbose(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewCliLogger(&buf, false)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	assert.Equal(t, "warn message\nerror message\n", buf.String())
}

func TestNewCliLogger_Verbose(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewCliLogger(&buf, true)

	logger.Debug("debug message")
	logger.Infof("read %d bytes", 12)

	assert.Equal(t, "DEBUG\tdebug message\nINFO\tread 12 bytes\n", buf.String())
}

func TestNewNop(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		NewNop().Errorf("ignored %s", "message")
	})
}
