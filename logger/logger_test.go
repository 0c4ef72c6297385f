package logger

import (
	"bytes"
	"errors"
	"github.com/stretchr/testify/assert"
	"log"
	"testing"
)

func newBufferedLogger(color bool) (*LeveledLogger, *bytes.Buffer) {
	buffer := new(bytes.Buffer)
	stdLogger := log.New(buffer, "", 0)
	if color {
		return NewLeveledLogger(stdLogger), buffer
	}
	return NewPlainLeveledLogger(stdLogger), buffer
}

func TestPlainLogger(t *testing.T) {
	l, buffer := newBufferedLogger(false)

	l.Info("info %d", 1)
	l.Warn("warn %d", 2)
	l.Success("success %d", 3)

	assert.Equal(t, "info 1\nwarn 2\nsuccess 3\n", buffer.String())
}

func TestColorLogger(t *testing.T) {
	l, buffer := newBufferedLogger(true)

	l.Info("info")
	l.Warn("warn")
	l.Success("success")

	assert.Equal(t, "info\n\x1b[31mwarn\x1b[0m\n\x1b[32msuccess\x1b[0m\n", buffer.String())
}

func TestSilentLogger(t *testing.T) {
	l := NewSilentLogger()

	assert.NotPanics(t, func() {
		l.Info("info")
		l.Warn("warn")
		l.Success("success")
		l.LogError(errors.New("boom"), "extra")
	})
}

func TestLogError(t *testing.T) {
	l, buffer := newBufferedLogger(false)

	l.LogError(errors.New("invalid arguments"), "usage:", "  rot")

	assert.Equal(t, "invalid arguments\nusage:\n  rot\n", buffer.String())
}

func TestLogErrorWithFormatVerbsInMessage(t *testing.T) {
	l, buffer := newBufferedLogger(false)

	l.LogError(errors.New("error reading from '100%s.txt'"))

	assert.Equal(t, "error reading from '100%s.txt'\n", buffer.String())
}

func TestNewIsPlainForNonTerminal(t *testing.T) {
	buffer := new(bytes.Buffer)
	l := New(buffer)

	l.Warn("warn")

	assert.False(t, IsTerminal(buffer))
	assert.Equal(t, "warn\n", buffer.String())
}
