// Package logger configures the logrus logger used by the treeviz commands.
package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// Level is a logrus level name. Empty means info.
	Level string
	// Verbose forces the debug level.
	Verbose bool
	// DisableColor turns off colored level names.
	DisableColor bool
	// Output defaults to stderr.
	Output io.Writer
}

// Init configures the standard logrus logger.
func Init(options Options) error {
	level := logrus.InfoLevel
	if options.Level != "" {
		l, err := logrus.ParseLevel(options.Level)
		if err != nil {
			return errors.Wrap(err, "failed to init logger")
		}
		level = l
	}
	if options.Verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	out := options.Output
	if out == nil {
		out = os.Stderr
	}
	logrus.SetOutput(out)

	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   options.DisableColor,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return nil
}
