package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			log, err := NewLogger(format, level)
			require.NoError(t, err, format, level)
			require.NotNil(t, log)
		}
	}

	log, err := NewLogger("text", "info")
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.DebugLevel))
	require.True(t, log.Core().Enabled(zap.InfoLevel))

	log, err = NewLogger("anything", "none")
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.ErrorLevel))

	_, err = NewLogger("text", "verbose")
	require.ErrorContains(t, err, "unknown log level")
	_, err = NewLogger("xml", "info")
	require.ErrorContains(t, err, "unknown log format")

}
