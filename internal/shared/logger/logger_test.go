package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetLoggerIsSingleton(t *testing.T) {
	require.Same(t, GetLogger(), GetLogger())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("debug") })

	require.NoError(t, SetLevel("warn"))
	require.False(t, GetLogger().Core().Enabled(zapcore.InfoLevel))
	require.True(t, GetLogger().Core().Enabled(zapcore.WarnLevel))

	require.Error(t, SetLevel("loud"))
}
