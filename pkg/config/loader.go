package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"
)

// Load reads defaults, an optional config file and the environment, in that order of
// precedence from lowest to highest. An empty path or a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	// PORT and CORS_HOSTS are what the hosting platform sets.
	if err := v.BindEnv("server.port", "APP_SERVER_PORT", "PORT"); err != nil {
		return nil, xerrors.Errorf("bind server.port: %w", err)
	}
	if err := v.BindEnv("server.cors_hosts", "APP_SERVER_CORS_HOSTS", "CORS_HOSTS"); err != nil {
		return nil, xerrors.Errorf("bind server.cors_hosts: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, xerrors.Errorf("read config file %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, xerrors.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_hosts", "")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("site.base_url", "https://tedejour.org")
	v.SetDefault("site.activity_limit", 5)

	v.SetDefault("upstream.base_url", "https://clawbr.org/api/v1")
	v.SetDefault("upstream.timeout", 10*time.Second)
	v.SetDefault("upstream.rate_per_second", 10.0)
	v.SetDefault("upstream.burst", 20)
	v.SetDefault("upstream.cache_size", 256)
	v.SetDefault("upstream.max_parallel", 8)

	v.SetDefault("llm.enabled", true)
	v.SetDefault("llm.base_url", "https://o.nodux.fun/v1")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "cogito:32b")
	v.SetDefault("llm.timeout", 15*time.Second)
	v.SetDefault("llm.max_tokens", 300)
	v.SetDefault("llm.temperature", 0.9)

	// registered so AutomaticEnv can see them during Unmarshal
	v.SetDefault("logger.env", "prod")
	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.service_name", "terrancedejour-site")
	v.SetDefault("logger.service_version", "0.1.0")
	v.SetDefault("logger.with_caller", false)
	v.SetDefault("logger.stacktrace", false)
}
