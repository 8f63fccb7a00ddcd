package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// Provider 标识上游聊天补全服务的接入方式。
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderArk    Provider = "ark"
)

const (
	DefaultBaseURL     = "https://api.intelligence.io.solutions/api/v1/"
	DefaultModel       = "meta-llama/Llama-3.3-70B-Instruct"
	DefaultTemperature = 0.8
	DefaultMaxTokens   = 150
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server ServerConfig
	AI     AIConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr      string
	Keepalive time.Duration
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	keepaliveSeconds := 30
	if override, err := parseOptionalIntEnv("KINO_KEEPALIVE"); err != nil {
		return ServerConfig{}, err
	} else if override != nil && *override > 0 {
		keepaliveSeconds = *override
	}
	keepalive := time.Duration(keepaliveSeconds) * time.Second

	if strings.Contains(port, ":") {
		// 允许直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port, Keepalive: keepalive}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, Keepalive: keepalive}, nil
}

// AIConfig 描述大模型相关配置。
type AIConfig struct {
	Provider    Provider
	APIKey      string
	BaseURL     string
	Model       string
	Region      string
	Temperature float64
	MaxTokens   int
	// MaxMessages 限制模型返回的消息条数，0 表示不截断。
	MaxMessages int
	Timeout     time.Duration
}

// Enabled 表示是否提供了必需的密钥。
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" && c.Model != ""
}

// NewChatModel 使用配置创建一个模型实例。
func (c AIConfig) NewChatModel(ctx context.Context) (model.BaseChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("IO_API_KEY or model is not configured")
	}

	temperature := float32(c.Temperature)
	maxTokens := c.MaxTokens

	switch c.Provider {
	case ProviderArk:
		chatModel, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
			BaseURL:     c.BaseURL,
			Region:      c.Region,
			APIKey:      c.APIKey,
			Model:       c.Model,
			MaxTokens:   &maxTokens,
			Temperature: &temperature,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ark chat model: %w", err)
		}
		return chatModel, nil
	case ProviderOpenAI, "":
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      c.APIKey,
			BaseURL:     c.BaseURL,
			Model:       c.Model,
			MaxTokens:   &maxTokens,
			Temperature: &temperature,
			Timeout:     c.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai chat model: %w", err)
		}
		return chatModel, nil
	default:
		return nil, fmt.Errorf("unsupported KINO_PROVIDER %q", c.Provider)
	}
}

func loadAIConfig() (AIConfig, error) {
	provider := Provider(strings.ToLower(getEnvOrDefault("KINO_PROVIDER", string(ProviderOpenAI))))
	if provider != ProviderOpenAI && provider != ProviderArk {
		return AIConfig{}, fmt.Errorf("invalid KINO_PROVIDER value %q", provider)
	}

	temperature := DefaultTemperature
	if override, err := parseOptionalFloatEnv("KINO_TEMPERATURE"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		temperature = *override
	}

	maxTokens := DefaultMaxTokens
	if override, err := parseOptionalIntEnv("KINO_MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		maxTokens = *override
	}

	maxMessages := 0
	if override, err := parseOptionalIntEnv("KINO_MAX_MESSAGES"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		maxMessages = *override
	}

	var timeout time.Duration
	if override, err := parseOptionalIntEnv("KINO_TIMEOUT"); err != nil {
		return AIConfig{}, err
	} else if override != nil && *override > 0 {
		timeout = time.Duration(*override) * time.Second
	}

	defaultBaseURL := DefaultBaseURL
	if provider == ProviderArk {
		defaultBaseURL = "https://ark.cn-beijing.volces.com/api/v3"
	}

	return AIConfig{
		Provider:    provider,
		APIKey:      strings.TrimSpace(os.Getenv("IO_API_KEY")),
		BaseURL:     getEnvOrDefault("KINO_BASE_URL", defaultBaseURL),
		Model:       getEnvOrDefault("KINO_MODEL", DefaultModel),
		Region:      getEnvOrDefault("KINO_REGION", "cn-beijing"),
		Temperature: temperature,
		MaxTokens:   maxTokens,
		MaxMessages: maxMessages,
		Timeout:     timeout,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
