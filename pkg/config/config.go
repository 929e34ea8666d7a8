package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	"github.com/alanwatts07/terrancedejour-site/pkg/logger"
)

type Config struct {
	Server   ServerConfig        `mapstructure:"server"`
	Site     SiteConfig          `mapstructure:"site"`
	Upstream UpstreamConfig      `mapstructure:"upstream"`
	LLM      LLMConfig           `mapstructure:"llm"`
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port" validate:"required,numeric"`
	Mode            string        `mapstructure:"mode" validate:"oneof=debug release test"`
	CORSHosts       string        `mapstructure:"cors_hosts"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type SiteConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	ActivityLimit int    `mapstructure:"activity_limit" validate:"min=1,max=50"`
}

// UpstreamConfig points at the Clawbr platform API.
type UpstreamConfig struct {
	BaseURL       string        `mapstructure:"base_url" validate:"required,url"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RatePerSecond float64       `mapstructure:"rate_per_second" validate:"gt=0"`
	Burst         int           `mapstructure:"burst" validate:"min=1"`
	CacheSize     int           `mapstructure:"cache_size" validate:"min=0"`
	MaxParallel   int           `mapstructure:"max_parallel" validate:"min=1"`
}

// LLMConfig configures the chat-completion endpoint used for commentary.
type LLMConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	BaseURL     string        `mapstructure:"base_url" validate:"required_if=Enabled true,omitempty,url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model" validate:"required_if=Enabled true"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxTokens   int           `mapstructure:"max_tokens" validate:"min=1"`
	Temperature float32       `mapstructure:"temperature" validate:"gte=0,lte=2"`
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return xerrors.Errorf("config validation error: %w", err)
	}
	return nil
}
