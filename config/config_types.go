package config

import (
	"errors"
	"time"

	"github.com/thrasher-corp/binancespot/common/crypto"
	"github.com/thrasher-corp/binancespot/log"
)

// Constants declared here are defaults and environment settings
const (
	// EnvPrefix is prepended to every environment variable override, e.g.
	// BINANCE_APIKEY or BINANCE_RATELIMIT_REQUESTS
	EnvPrefix          = "BINANCE"
	EnvFile            = ".env"
	defaultHTTPTimeout = time.Second * 15
)

var (
	errInvalidBaseURL         = errors.New("invalid base URL")
	errNegativeDuration       = errors.New("duration cannot be negative")
	errNegativeRequests       = errors.New("rate limit requests cannot be negative")
	errRateLimitIntervalUnset = errors.New("rate limit interval must be set when requests are limited")
)

// Config is the client configuration
type Config struct {
	BaseURL       string                 `json:"baseUrl" mapstructure:"baseUrl"`
	APIKey        crypto.SensitiveString `json:"apiKey" mapstructure:"apiKey"`
	APISecret     crypto.SensitiveString `json:"apiSecret" mapstructure:"apiSecret"`
	Timeout       time.Duration          `json:"timeout" mapstructure:"timeout"`
	Verbose       bool                   `json:"verbose" mapstructure:"verbose"`
	HTTPDebugging bool                   `json:"httpDebugging" mapstructure:"httpDebugging"`
	RateLimit     RateLimitConfig        `json:"rateLimit" mapstructure:"rateLimit"`
	Logging       log.Config             `json:"logging" mapstructure:"logging"`
}

// RateLimitConfig throttles outgoing requests to Requests per Interval. A zero
// Requests value disables client side throttling.
type RateLimitConfig struct {
	Interval time.Duration `json:"interval" mapstructure:"interval"`
	Requests int           `json:"requests" mapstructure:"requests"`
}
