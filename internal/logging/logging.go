// Package logging configures the global zerolog logger: console output for
// interactive use, JSON with rotation when a log file is configured.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs the global logger. level is a zerolog level name ("debug",
// "info", ...); file enables rotated JSON output when non-empty.
func Setup(level, file string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}

	var out io.Writer = console
	if file != "" {
		rotated := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
		}
		out = zerolog.MultiLevelWriter(console, rotated)
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}
