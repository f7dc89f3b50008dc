package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Apify   ApifyConfig
	Gemini  GeminiConfig
	OpenAI  OpenAIConfig
	Proxy   ProxyConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port int
}

type ApifyConfig struct {
	Token   string
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey         string
	EnableFallback bool
}

type ProxyConfig struct {
	Timeout time.Duration
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("PORT", 8000),
		},
		Apify: ApifyConfig{
			Token:   getEnv("APIFY_API_TOKEN", ""),
			Timeout: time.Duration(getEnvInt("APIFY_TIMEOUT_SECONDS", 120)) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", true),
		},
		Proxy: ProxyConfig{
			Timeout: time.Duration(getEnvInt("IMAGE_PROXY_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Apify.Token == "" {
		return fmt.Errorf("APIFY_API_TOKEN is required")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be a valid port number")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
