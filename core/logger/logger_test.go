package logger

import (
	"testing"

	"github.com/anoideaopen/methodhandles/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	l := Logger()
	t.Cleanup(func() {
		require.NoError(t, Configure(config.DefaultLoggingLevel, config.FormatText))
	})

	require.NoError(t, Configure("debug", config.FormatJSON))
	require.Equal(t, logrus.DebugLevel, l.GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	require.NoError(t, Configure("", config.FormatText))
	require.Equal(t, logrus.DebugLevel, l.GetLevel())
	require.IsType(t, &logrus.TextFormatter{}, l.Formatter)

	require.Error(t, Configure("loud", config.FormatText))
	require.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestLoggerIsShared(t *testing.T) {
	require.Same(t, Logger(), Logger())
}
