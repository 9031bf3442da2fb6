package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"HALFORMS_SERVER_HOST",
	"HALFORMS_SERVER_PORT",
	"HALFORMS_SERVER_BASE_URL",
	"HALFORMS_SERVER_RATE_LIMIT",
	"HALFORMS_SERVER_RATE_BURST",
	"HALFORMS_SERVER_MAX_BODY_BYTES",
	"HALFORMS_CORS_ALLOWED_ORIGINS",
	"HALFORMS_LOG_LEVEL",
	"HALFORMS_LOG_DEVELOPMENT",
	"HALFORMS_LOG_FILE",
	"HALFORMS_PAGINATION_DEFAULT_SIZE",
	"HALFORMS_PAGINATION_MAX_SIZE",
	"HALFORMS_SEED_ENABLED",
}

// clearEnv 清空相关环境变量，测试结束后自动恢复
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("加载默认配置成功", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
		assert.Equal(t, "", cfg.Server.BaseURL)
		assert.Equal(t, 0.0, cfg.Server.RateLimit)
		assert.Equal(t, 50, cfg.Server.RateBurst)
		assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Development)
		assert.Equal(t, 20, cfg.Pagination.DefaultSize)
		assert.Equal(t, 2000, cfg.Pagination.MaxSize)
		assert.True(t, cfg.Seed.Enabled)
	})

	t.Run("加载自定义配置成功", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HALFORMS_SERVER_HOST", "127.0.0.1")
		t.Setenv("HALFORMS_SERVER_PORT", "9090")
		t.Setenv("HALFORMS_SERVER_BASE_URL", "https://api.example.com/")
		t.Setenv("HALFORMS_SERVER_RATE_LIMIT", "12.5")
		t.Setenv("HALFORMS_CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://localhost:5173")
		t.Setenv("HALFORMS_LOG_LEVEL", "debug")
		t.Setenv("HALFORMS_LOG_DEVELOPMENT", "true")
		t.Setenv("HALFORMS_PAGINATION_DEFAULT_SIZE", "5")
		t.Setenv("HALFORMS_PAGINATION_MAX_SIZE", "50")
		t.Setenv("HALFORMS_SEED_ENABLED", "false")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
		assert.Equal(t, "https://api.example.com", cfg.Server.BaseURL)
		assert.Equal(t, 12.5, cfg.Server.RateLimit)
		assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Development)
		assert.Equal(t, 5, cfg.Pagination.DefaultSize)
		assert.Equal(t, 50, cfg.Pagination.MaxSize)
		assert.False(t, cfg.Seed.Enabled)
	})

	t.Run("端口越界失败", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HALFORMS_SERVER_PORT", "70000")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid server.port")
	})

	t.Run("默认页大小非法失败", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HALFORMS_PAGINATION_DEFAULT_SIZE", "0")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "pagination.default_size")
	})

	t.Run("最大页大小小于默认值失败", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HALFORMS_PAGINATION_DEFAULT_SIZE", "30")
		t.Setenv("HALFORMS_PAGINATION_MAX_SIZE", "10")

		cfg, err := Load()
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "pagination.max_size")
	})

	t.Run("负数限流失败", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HALFORMS_SERVER_RATE_LIMIT", "-1")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("读取 YAML 配置文件", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "halforms.yaml")
		content := "server:\n  port: 9191\npagination:\n  default_size: 5\n  max_size: 10\nseed:\n  enabled: false\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 9191, cfg.Server.Port)
		assert.Equal(t, 5, cfg.Pagination.DefaultSize)
		assert.Equal(t, 10, cfg.Pagination.MaxSize)
		assert.False(t, cfg.Seed.Enabled)
	})

	t.Run("环境变量优先于配置文件", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "halforms.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9191\n"), 0o600))
		t.Setenv("HALFORMS_SERVER_PORT", "7070")

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.Server.Port)
	})

	t.Run("配置文件不存在", func(t *testing.T) {
		clearEnv(t)

		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestParseList(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "单个项目",
			input:    "item1",
			expected: []string{"item1"},
		},
		{
			name:     "带空格的项目",
			input:    " item1 , item2 , item3 ",
			expected: []string{"item1", "item2", "item3"},
		},
		{
			name:     "空字符串",
			input:    "",
			expected: []string{},
		},
		{
			name:     "混合空值",
			input:    "item1,,item2,",
			expected: []string{"item1", "item2"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseList(tc.input))
		})
	}
}
