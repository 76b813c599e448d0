package testutil

import (
	"testing"

	"github.com/MGTheTrain/text-vault/internal/pkg/config"
	"github.com/MGTheTrain/text-vault/internal/pkg/logger"

	"github.com/stretchr/testify/require"
)

// SetupTestLogger initializes the shared console logger at debug level, so that debug
// branches of the processors run under test, and returns it. The first caller in a test
// binary fixes the settings.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	require.NoError(t, logger.InitLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	}))

	log, err := logger.GetLogger()
	require.NoError(t, err)
	return log
}
