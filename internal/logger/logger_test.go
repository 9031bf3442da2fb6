package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("非法级别回退到info", func(t *testing.T) {
		log, err := NewLogger(Config{Level: "verbose"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("开发模式启用debug", func(t *testing.T) {
		log, err := NewLogger(Config{Level: "debug", Development: true})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("写入日志文件", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "logs", "server.log")

		log, err := NewLogger(Config{Level: "info", LogFile: file, Service: "halforms"})
		require.NoError(t, err)
		log.Info("hello")
		_ = log.Sync()

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"message":"hello"`)
		assert.Contains(t, string(data), `"service":"halforms"`)
	})
}
