package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Environment string `mapstructure:"environment" envconfig:"APP_ENV"`
	LogLevel    string `mapstructure:"log_level" envconfig:"LOG_LEVEL"`
	Server      ServerConfig
	API         APIConfig
	Cookie      CookieConfig
	Cache       CacheConfig
	Site        SiteConfig
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" envconfig:"PORT"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" envconfig:"WRITE_TIMEOUT"`
}

type APIConfig struct {
	// BaseURL is the server-side API endpoint, PublicBaseURL the one embedded
	// in rendered pages (image URLs point at it).
	BaseURL       string        `mapstructure:"base_url" envconfig:"API_URL"`
	PublicBaseURL string        `mapstructure:"public_base_url" envconfig:"PUBLIC_API_URL"`
	Timeout       time.Duration `mapstructure:"timeout" envconfig:"API_TIMEOUT"`
}

type CookieConfig struct {
	Name   string `mapstructure:"name" envconfig:"COOKIE_NAME"`
	MaxAge int    `mapstructure:"max_age" envconfig:"COOKIE_MAX_AGE"`
}

type CacheConfig struct {
	// RedisURL switches the revalidation cache to a shared Redis backend.
	// Empty means the in-process store.
	RedisURL string `mapstructure:"redis_url" envconfig:"REDIS_URL"`
}

type SiteConfig struct {
	// BaseURL is the canonical public origin used in sitemap entries.
	BaseURL string `mapstructure:"base_url" envconfig:"SITE_URL"`
}

// LoadConfig resolves configuration in three layers: built-in defaults, an
// optional config.yaml, then environment variables. Environment always wins
// so deployments can stay file-free.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("api.base_url", "http://localhost:12000/api")
	viper.SetDefault("api.public_base_url", "http://localhost:12000")
	viper.SetDefault("api.timeout", "15s")
	viper.SetDefault("cookie.name", "admin_token")
	viper.SetDefault("cookie.max_age", 604800)
	viper.SetDefault("site.base_url", "https://delote-beauty.fr")

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return &config, nil
}

// IsProduction reports whether the process runs with production settings.
// The session cookie only gets the Secure flag in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
