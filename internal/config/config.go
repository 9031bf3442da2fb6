package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServerConfig 定义 HTTP 服务器的监听配置参数
type ServerConfig struct {
	Host         string  // 监听地址，默认 "0.0.0.0"
	Port         int     // 监听端口，默认 8080
	BaseURL      string  // 生成超链接使用的外部地址，留空则根据请求推断
	RateLimit    float64 // 每秒允许的请求数，0 表示不限流
	RateBurst    int     // 令牌桶容量，默认 50
	MaxBodyBytes int64   // 请求体大小上限，默认 1MB
}

// CORSConfig 定义跨域资源共享 (CORS) 配置
type CORSConfig struct {
	AllowedOrigins []string // 允许的来源列表，"*" 表示允许所有来源
}

// LogConfig 定义日志系统配置
type LogConfig struct {
	Level       string // 日志级别: debug, info, warn, error
	Development bool   // 开发模式: 启用彩色输出和详细堆栈信息
	File        string // 日志文件路径，留空只输出到控制台
}

// PaginationConfig 定义列表接口的分页默认值
type PaginationConfig struct {
	DefaultSize int // 未指定 size 时的每页条数，默认 20
	MaxSize     int // size 的上限，默认 2000
}

// SeedConfig 定义启动时的演示数据
type SeedConfig struct {
	Enabled bool // 是否写入演示收件箱与消息，默认 true
}

// Config 是系统核心配置的根结构体，包含所有子系统的配置
type Config struct {
	Server     ServerConfig     // HTTP 服务器配置
	CORS       CORSConfig       // 跨域配置
	Log        LogConfig        // 日志配置
	Pagination PaginationConfig // 分页配置
	Seed       SeedConfig       // 演示数据配置
}

// Load 从环境变量和 .env 文件加载系统配置
//
// 配置加载优先级（从高到低）：
//  1. 系统环境变量（最高优先级）
//  2. .env 文件（如果存在）
//  3. 默认值
//
// 环境变量前缀: HALFORMS_
// 例如: HALFORMS_SERVER_PORT, HALFORMS_PAGINATION_DEFAULT_SIZE
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile 在 Load 的基础上额外读取配置文件（YAML、JSON、TOML 均可）
//
// 优先级：环境变量 > 配置文件 > .env 文件 > 默认值。path 为空时等同于 Load。
func LoadFile(path string) (*Config, error) {
	// 尝试加载 .env 文件（静默失败，因为 .env 文件是可选的）
	loadEnvFile()

	v := viper.New()
	v.SetEnvPrefix("halforms")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.base_url", "")
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.rate_burst", 50)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", "")
	v.SetDefault("pagination.default_size", 20)
	v.SetDefault("pagination.max_size", 2000)
	v.SetDefault("seed.enabled", true)

	port := v.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid server.port: %d", port)
	}

	rateLimit := v.GetFloat64("server.rate_limit")
	if rateLimit < 0 {
		return nil, fmt.Errorf("invalid server.rate_limit: %v", rateLimit)
	}

	rateBurst := v.GetInt("server.rate_burst")
	if rateBurst <= 0 {
		rateBurst = 50
	}

	maxBodyBytes := v.GetInt64("server.max_body_bytes")
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}

	defaultSize := v.GetInt("pagination.default_size")
	if defaultSize < 1 {
		return nil, fmt.Errorf("pagination.default_size must be at least 1, got %d", defaultSize)
	}

	maxSize := v.GetInt("pagination.max_size")
	if maxSize < defaultSize {
		return nil, fmt.Errorf("pagination.max_size (%d) must not be less than pagination.default_size (%d)", maxSize, defaultSize)
	}

	corsOrigins := parseList(v.GetString("cors.allowed_origins"))
	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("server.host"),
			Port:         port,
			BaseURL:      strings.TrimRight(v.GetString("server.base_url"), "/"),
			RateLimit:    rateLimit,
			RateBurst:    rateBurst,
			MaxBodyBytes: maxBodyBytes,
		},
		CORS: CORSConfig{
			AllowedOrigins: corsOrigins,
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Development: v.GetBool("log.development"),
			File:        v.GetString("log.file"),
		},
		Pagination: PaginationConfig{
			DefaultSize: defaultSize,
			MaxSize:     maxSize,
		},
		Seed: SeedConfig{
			Enabled: v.GetBool("seed.enabled"),
		},
	}

	return cfg, nil
}

// Addr 返回 HTTP 监听地址
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// parseList 将逗号分隔的字符串解析为字符串切片
//
// 参数:
//   - value: 逗号分隔的字符串，如 "item1,item2,item3"
//
// 返回值:
//   - []string: 解析后的字符串切片，已去除空白字符
func parseList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// loadEnvFile 尝试加载 .env 文件
//
// 加载顺序：
//  1. 当前目录的 .env
//  2. 父目录的 .env
//
// 注意：
//   - 如果文件不存在，静默失败（.env 是可选的）
//   - 环境变量不会被覆盖（已存在的环境变量优先级更高）
func loadEnvFile() {
	if err := godotenv.Load(".env"); err == nil {
		return
	}

	parentEnv := filepath.Join("..", ".env")
	if _, err := os.Stat(parentEnv); err == nil {
		_ = godotenv.Load(parentEnv)
	}
}
