// Package logging builds the logrus logger shared by the frontends and the
// engine. The terminal belongs to the frontend, so logs only ever go to a
// rotating file.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where and how to log.
type Options struct {
	// File is the log file path. Empty discards all output.
	File   string
	Level  logrus.Level
	Format string // "text" or "json"
}

// New returns a logger and a function that closes its output.
func New(opts Options) (*logrus.Logger, func() error) {
	log := logrus.New()
	log.SetLevel(opts.Level)

	if opts.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if opts.File == "" {
		log.SetOutput(io.Discard)
		return log, func() error { return nil }
	}

	out := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(out)
	return log, out.Close
}
