package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TokenEnv overrides api.token so the secret can stay out of the config file.
const TokenEnv = "STOCKS_API_TOKEN"

const defaultMaxTickers = 50

type Config struct {
	API      APIConfig      `yaml:"api"`
	Polling  PollingConfig  `yaml:"polling"`
	Watch    WatchConfig    `yaml:"watch"`
	Storage  StorageConfig  `yaml:"storage"`
	Telegram TelegramConfig `yaml:"telegram"`
	Web      WebConfig      `yaml:"web"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	Token          string `yaml:"token"`
	Exchange       string `yaml:"exchange"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

type PollingConfig struct {
	Interval string `yaml:"interval"`
}

type WatchConfig struct {
	// Tickers limits the quote subscriptions. Empty means every stock in the set,
	// capped by MaxTickers. An explicit max_tickers of 0 removes the cap.
	Tickers          []string `yaml:"tickers"`
	MaxTickers       *int     `yaml:"max_tickers"`
	ResubscribeDelay string   `yaml:"resubscribe_delay"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type TelegramConfig struct {
	Enabled  bool   `yaml:"enabled"`
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type WebConfig struct {
	Enabled        bool     `yaml:"enabled"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies environment overrides and defaults, then validates.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if v := os.Getenv(TokenEnv); v != "" {
		cfg.API.Token = v
	}

	setDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://finnhub.io/api/v1"
	}
	if cfg.API.Exchange == "" {
		cfg.API.Exchange = "US"
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 10
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = "stock-tracker/1.0"
	}
	if cfg.Polling.Interval == "" {
		cfg.Polling.Interval = "5s"
	}
	if cfg.Watch.MaxTickers == nil {
		maxTickers := defaultMaxTickers
		cfg.Watch.MaxTickers = &maxTickers
	}
	if cfg.Watch.ResubscribeDelay == "" {
		cfg.Watch.ResubscribeDelay = "30s"
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = "data/stock-tracker.db"
	}
	if cfg.Web.Port == 0 {
		cfg.Web.Port = 8080
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func (c *Config) Validate() error {
	if c.API.Token == "" {
		return fmt.Errorf("api.token is required (or set %s)", TokenEnv)
	}
	d, err := time.ParseDuration(c.Polling.Interval)
	if err != nil {
		return fmt.Errorf("invalid polling.interval %q: %w", c.Polling.Interval, err)
	}
	if d <= 0 {
		return fmt.Errorf("polling.interval must be positive, got %s", d)
	}
	r, err := time.ParseDuration(c.Watch.ResubscribeDelay)
	if err != nil {
		return fmt.Errorf("invalid watch.resubscribe_delay %q: %w", c.Watch.ResubscribeDelay, err)
	}
	if r < 0 {
		return fmt.Errorf("watch.resubscribe_delay must not be negative, got %s", r)
	}
	if c.MaxTickers() < 0 {
		return fmt.Errorf("watch.max_tickers must not be negative")
	}
	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram.bot_token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == 0 {
			return fmt.Errorf("telegram.chat_id is required when telegram is enabled")
		}
	}
	return nil
}

func (c *Config) PollingInterval() time.Duration {
	d, _ := time.ParseDuration(c.Polling.Interval)
	return d
}

func (c *Config) ResubscribeDelay() time.Duration {
	d, _ := time.ParseDuration(c.Watch.ResubscribeDelay)
	return d
}

// MaxTickers returns the subscription cap; 0 means no cap.
func (c *Config) MaxTickers() int {
	if c.Watch.MaxTickers == nil {
		return defaultMaxTickers
	}
	return *c.Watch.MaxTickers
}

func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
