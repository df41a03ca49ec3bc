package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Init configures it from application settings.
var Log = logrus.New()

func Init(level string, environment string) {
	Configure(Log, os.Stdout, level, environment)
}

func Configure(target *logrus.Logger, output io.Writer, level string, environment string) {
	target.SetOutput(output)

	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		target.SetLevel(logrus.InfoLevel)
		target.Warnf("invalid log level %q, defaulting to info", level)
	} else {
		target.SetLevel(parsed)
	}

	switch strings.ToLower(strings.TrimSpace(environment)) {
	case "production", "staging":
		target.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		target.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}

func WithUser(userID uint) *logrus.Entry {
	return Log.WithField("user_id", userID)
}
