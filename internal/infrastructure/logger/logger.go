// Package logger configures the logrus logger shared by the game.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options controls logger construction. Empty fields fall back to the
// LOG_LEVEL / LOG_FORMAT environment variables, then to info/text.
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New builds a logger from options and environment
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)

	return log
}
