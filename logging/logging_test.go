package logging_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/rates-fetcher/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	logger, err := logging.New("json", "debug")
	asserts.NoError(err)
	asserts.IsType(&logrus.JSONFormatter{}, logger.Formatter)
	asserts.Equal(logrus.DebugLevel, logger.GetLevel())

	logger, err = logging.New("text", "warn")
	asserts.NoError(err)
	asserts.IsType(&logrus.TextFormatter{}, logger.Formatter)
	asserts.Equal(logrus.WarnLevel, logger.GetLevel())

	_, err = logging.New("yaml", "info")
	asserts.Error(err)

	_, err = logging.New("text", "loud")
	asserts.Error(err)
}
