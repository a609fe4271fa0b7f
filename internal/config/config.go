package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App       AppConfig
	Server    ServerConfig
	AI        AIConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Chat      ChatConfig
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host         string
	Port         int
	Mode         string
	ReadTimeout  int
	WriteTimeout int
	AllowOrigin  string
}

// AIConfig AI配置
type AIConfig struct {
	Provider string
	OpenAI   OpenAIConfig
	Alibaba  AlibabaConfig
	DeepSeek DeepSeekConfig
}

// OpenAIConfig OpenAI配置
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// AlibabaConfig 阿里云配置
type AlibabaConfig struct {
	AccessKeySecret string
	Model           string
}

// DeepSeekConfig DeepSeek配置
type DeepSeekConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// RedisConfig Redis配置（仅用于限流计数，可选）
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	Chat   QuotaConfig
	Health QuotaConfig
}

// QuotaConfig 单个固定窗口配额
type QuotaConfig struct {
	Limit         int
	WindowSeconds int
}

// ChatConfig 对话配置
//
// 人设提示词和各类固定回复文本都放在配置里（可被测试替换为短 fixture），
// 而不是编译期字面量。
type ChatConfig struct {
	Persona          string
	Greeting         string
	RepeatedReply    string
	OffTopicReply    string
	CTAText          string
	TimeoutSeconds   int
	MaxHistory       int
	Temperature      float32
	ShortReplyTokens int
	LongReplyTokens  int
	LongQueryWords   int
}

var globalConfig *Config

// Load 加载配置
//
// path 为空时只使用默认值 + 环境变量覆盖（SITECHAT_ 前缀）。
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 环境变量
	v.SetEnvPrefix("SITECHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &cfg
	return &cfg, nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded")
	}
	return globalConfig
}

// GetAddr 获取服务器地址
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetAddr 获取 Redis 地址
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "sitechat")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")

	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.allowOrigin", "*")

	// AI
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.openai.baseUrl", "https://api.openai.com/v1")
	v.SetDefault("ai.openai.model", "gpt-4o-mini")

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)

	// RateLimit：聊天 10 次 / 15 分钟，健康检查 60 次 / 1 分钟
	v.SetDefault("ratelimit.chat.limit", 10)
	v.SetDefault("ratelimit.chat.windowSeconds", 900)
	v.SetDefault("ratelimit.health.limit", 60)
	v.SetDefault("ratelimit.health.windowSeconds", 60)

	// Chat
	v.SetDefault("chat.persona", defaultPersona)
	v.SetDefault("chat.greeting", defaultGreeting)
	v.SetDefault("chat.repeatedReply", defaultRepeatedReply)
	v.SetDefault("chat.offTopicReply", defaultOffTopicReply)
	v.SetDefault("chat.ctaText", defaultCTAText)
	v.SetDefault("chat.timeoutSeconds", 20)
	v.SetDefault("chat.maxHistory", 10)
	v.SetDefault("chat.temperature", 0.7)
	v.SetDefault("chat.shortReplyTokens", 300)
	v.SetDefault("chat.longReplyTokens", 500)
	v.SetDefault("chat.longQueryWords", 6)
}
