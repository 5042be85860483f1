package logging

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// New builds a logger for the given format ("text" or "json") and
// level. Diagnostics go to stderr so stdout stays reserved for the
// rendered result.
func New(format, level string) (*logrus.Logger, error) {
	log := logrus.New()

	switch format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log.SetLevel(lvl)

	return log, nil
}
