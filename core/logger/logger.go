package logger

import (
	"fmt"
	"os"
	"sync"

	"github.com/anoideaopen/methodhandles/internal/config"
	"github.com/sirupsen/logrus"
)

var (
	lg   *logrus.Logger
	once sync.Once
)

// Logger returns the process logger. On first use it is configured from the
// environment; Configure may be called later to change level and format.
func Logger() *logrus.Logger {
	once.Do(func() {
		lg = logrus.New()
		lg.SetOutput(os.Stderr)

		level := os.Getenv(config.EnvLoggingLevel)
		if level == "" {
			level = config.DefaultLoggingLevel
		}
		format := os.Getenv(config.EnvLoggingFormat)
		if err := configure(lg, level, format); err != nil {
			lg.SetLevel(logrus.WarnLevel)
			lg.WithError(err).Warn("falling back to the default logging level")
		}
	})
	return lg
}

// Configure sets the level and format of the process logger.
// An empty level keeps the current one; format is "json" or text otherwise.
func Configure(level, format string) error {
	return configure(Logger(), level, format)
}

func configure(l *logrus.Logger, level, format string) error {
	if format == config.FormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parsing logging level: %w", err)
	}
	l.SetLevel(lvl)

	return nil
}
