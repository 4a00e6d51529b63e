package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

func newLogger(w io.Writer, level logrus.Level, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	if debug {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return logger
}
