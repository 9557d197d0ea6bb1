// Package log provides package-level logging functions backed by zerolog.
// Output goes to stderr: stdout is reserved for the stdio MCP transport.
package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init reconfigures the logger with the given level and optional log file.
// When file is non-empty, output is duplicated to a size-rotated file.
func Init(level string, file string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = os.Stderr
	if file != "" {
		w = zerolog.MultiLevelWriter(os.Stderr, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Debug logs a message at debug level.
func Debug(msg string) {
	logger.Debug().Msg(msg)
}

// Info logs a message at info level.
func Info(msg string) {
	logger.Info().Msg(msg)
}

// Warn logs a message at warn level.
func Warn(msg string) {
	logger.Warn().Msg(msg)
}

// Error logs a message at error level.
func Error(msg string) {
	logger.Error().Msg(msg)
}
