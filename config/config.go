package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/thrasher-corp/binancespot/exchanges/binance"
	"github.com/thrasher-corp/binancespot/exchanges/request"
	"github.com/thrasher-corp/binancespot/log"
	"golang.org/x/time/rate"
)

// LoadConfig reads the config file at path, which may be empty to use
// defaults and the environment only. Environment files are loaded first, when
// none are supplied an optional .env in the working directory is used.
// BINANCE_* environment variables override values from the file.
func LoadConfig(path string, envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config %s: %w", path, err)
		}
		log.Debugf(log.ConfigMgr, "Loaded config file %s", v.ConfigFileUsed())
	}

	c := &Config{}
	if err := v.Unmarshal(c, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	))); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	c.CheckLoggerConfig()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func loadEnvFiles(envFiles []string) error {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return fmt.Errorf("error loading environment files: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", EnvFile, err)
	}
	return nil
}

// newViper returns a viper instance with every key defaulted so that
// environment overrides apply even when the file omits them
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := log.GenDefaultSettings()
	v.SetDefault("baseUrl", binance.APIURL)
	v.SetDefault("apiKey", "")
	v.SetDefault("apiSecret", "")
	v.SetDefault("timeout", defaultHTTPTimeout)
	v.SetDefault("verbose", false)
	v.SetDefault("httpDebugging", false)
	v.SetDefault("rateLimit.interval", 0)
	v.SetDefault("rateLimit.requests", 0)
	v.SetDefault("logging.enabled", *d.Enabled)
	v.SetDefault("logging.level", d.Level)
	v.SetDefault("logging.output", d.Output)
	v.SetDefault("logging.json", d.JSON)
	return v
}

// CheckLoggerConfig fills in missing logger values
func (c *Config) CheckLoggerConfig() {
	d := log.GenDefaultSettings()
	if c.Logging.Enabled == nil {
		c.Logging.Enabled = d.Enabled
	}
	if c.Logging.Output == "" {
		c.Logging.Output = d.Output
	}
	if c.Logging.FileSettings == nil {
		c.Logging.FileSettings = d.FileSettings
		return
	}
	if c.Logging.FileSettings.FileName == "" {
		c.Logging.FileSettings.FileName = d.FileSettings.FileName
	}
	if c.Logging.FileSettings.MaxSize <= 0 {
		log.Warnf(log.ConfigMgr, "Logger rotation size invalid, defaulting to %v", log.DefaultMaxFileSize)
		c.Logging.FileSettings.MaxSize = log.DefaultMaxFileSize
	}
}

// Validate checks the config values
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w %q: %w", errInvalidBaseURL, c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w %q: scheme and host required", errInvalidBaseURL, c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %w", errNegativeDuration)
	}
	if c.RateLimit.Interval < 0 {
		return fmt.Errorf("rate limit interval %w", errNegativeDuration)
	}
	if c.RateLimit.Requests < 0 {
		return errNegativeRequests
	}
	if c.RateLimit.Requests > 0 && c.RateLimit.Interval == 0 {
		return errRateLimitIntervalUnset
	}
	return nil
}

// ExchangeConfig returns the client settings
func (c *Config) ExchangeConfig() binance.Config {
	return binance.Config{
		BaseURL:       c.BaseURL,
		APIKey:        c.APIKey,
		APISecret:     c.APISecret,
		Timeout:       c.Timeout,
		Verbose:       c.Verbose,
		HTTPDebugging: c.HTTPDebugging,
	}
}

// Limiter returns the configured client side limiter, nil when throttling is
// disabled
func (c *Config) Limiter() *rate.Limiter {
	if c.RateLimit.Requests <= 0 {
		return nil
	}
	return request.NewRateLimit(c.RateLimit.Interval, c.RateLimit.Requests)
}

// RequesterOptions returns the requester options implied by the config
func (c *Config) RequesterOptions() []request.RequesterOption {
	var opts []request.RequesterOption
	if l := c.Limiter(); l != nil {
		opts = append(opts, request.WithLimiter(l))
	}
	return opts
}

// NewExchange returns a client built from the config. Extra options are
// applied after the configured ones.
func (c *Config) NewExchange(opts ...request.RequesterOption) (*binance.Exchange, error) {
	return binance.New(c.ExchangeConfig(), append(c.RequesterOptions(), opts...)...)
}
