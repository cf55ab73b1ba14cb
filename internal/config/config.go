// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Endpoint       string  `mapstructure:"endpoint"`
	MinProfit      float64 `mapstructure:"min_profit"`
	RequestTimeout int     `mapstructure:"request_timeout"`
	Retries        int     `mapstructure:"retries"`
	RetryInterval  int     `mapstructure:"retry_interval"`
	AutoRefresh    int     `mapstructure:"auto_refresh"`
	DebugLogging   bool    `mapstructure:"debug_logging"`
	LogFile        string  `mapstructure:"log_file"`
}

const (
	DefaultEndpoint      = "http://127.0.0.1:8000/deals"
	DefaultRetryInterval = 500
	DefaultLogFile       = "logs/dealboard.log"

	EnvPrefix = "DEALBOARD"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Endpoint:      DefaultEndpoint,
		RetryInterval: DefaultRetryInterval,
		LogFile:       DefaultLogFile,
	}
}

// LoadConfig reads path (if it exists), applies DEALBOARD_* environment
// overrides and validates the result. An empty path means defaults + env.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"endpoint":        DefaultEndpoint,
		"min_profit":      0.0,
		"request_timeout": 0,
		"retries":         0,
		"retry_interval":  DefaultRetryInterval,
		"auto_refresh":    0,
		"debug_logging":   false,
		"log_file":        DefaultLogFile,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.Endpoint == "" {
		return errors.New("endpoint is empty")
	}
	if err := validateURL(cfg.Endpoint); err != nil {
		return err
	}
	if err := validateNumericParams(cfg); err != nil {
		return err
	}
	if strings.TrimSpace(cfg.LogFile) == "" {
		return errors.New("log_file is empty")
	}
	return nil
}

func validateNumericParams(cfg *Config) error {
	if cfg.MinProfit < 0 {
		return errors.New("invalid min_profit")
	}
	if cfg.RequestTimeout < 0 {
		return errors.New("invalid request_timeout")
	}
	if cfg.Retries < 0 {
		return errors.New("invalid retries count")
	}
	if cfg.RetryInterval < 0 {
		return errors.New("invalid retry_interval")
	}
	if cfg.AutoRefresh < 0 {
		return errors.New("invalid auto_refresh")
	}
	return nil
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid endpoint URL format")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("endpoint must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("endpoint host is empty")
	}
	return nil
}

// Timeout is the HTTP client timeout; zero leaves the transport default.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

func (c *Config) RetryBackoff() time.Duration {
	return time.Duration(c.RetryInterval) * time.Millisecond
}

func (c *Config) AutoRefreshInterval() time.Duration {
	return time.Duration(c.AutoRefresh) * time.Second
}
