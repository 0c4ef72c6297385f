package logger

import (
	"github.com/mattn/go-isatty"
	"io"
	"log"
	"os"
)

type LeveledLogger struct {
	showColor bool
	silent    bool
	logger    *log.Logger
}

func NewSilentLogger() *LeveledLogger {
	return &LeveledLogger{
		silent:    true,
		showColor: false,
	}
}

func NewPlainLeveledLogger(logger *log.Logger) *LeveledLogger {
	return &LeveledLogger{
		silent:    false,
		showColor: false,
		logger:    logger,
	}
}

func NewLeveledLogger(logger *log.Logger) *LeveledLogger {
	return &LeveledLogger{
		silent:    false,
		showColor: true,
		logger:    logger,
	}
}

// New only colors output when out is a terminal, redirected stderr stays plain
func New(out io.Writer) *LeveledLogger {
	stdLogger := log.New(out, "", 0)

	if IsTerminal(out) {
		return NewLeveledLogger(stdLogger)
	}

	return NewPlainLeveledLogger(stdLogger)
}

func IsTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (l *LeveledLogger) Info(format string, args ...interface{}) {
	if !l.silent {
		l.logger.Printf(format, args...)
	}
}

func (l *LeveledLogger) Warn(format string, args ...interface{}) {
	if l.showColor {
		l.logger.Printf("\033[31m"+format+"\033[0m", args...)
	} else if !l.silent {
		l.logger.Printf(format, args...)
	}
}

func (l *LeveledLogger) Success(format string, args ...interface{}) {
	if l.showColor {
		l.logger.Printf("\033[32m"+format+"\033[0m", args...)
	} else if !l.silent {
		l.logger.Printf(format, args...)
	}
}

// LogError writes the error on its own line, followed by any extra lines uncolored
func (l *LeveledLogger) LogError(err error, extra ...string) {
	l.Warn("%s", err)
	for _, line := range extra {
		l.Info("%s", line)
	}
}
