package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/binancespot/common/crypto"
	"github.com/thrasher-corp/binancespot/exchanges/binance"
	"golang.org/x/time/rate"
)

const yamlConfig = `baseUrl: https://api1.binance.com
apiKey: key
apiSecret: secret
timeout: 5s
verbose: true
rateLimit:
  interval: 1m
  requests: 6000
logging:
  level: debug
  output: console
  fileSettings:
    filename: client.log
`

const jsonConfig = `{
	"baseUrl": "https://data-api.binance.vision",
	"timeout": "2s",
	"httpDebugging": true,
	"logging": {"enabled": false, "json": true}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

// unsetEnv clears an environment variable for the duration of the test and
// restores it afterwards
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, binance.APIURL, c.BaseURL)
	assert.Equal(t, defaultHTTPTimeout, c.Timeout)
	assert.True(t, c.APIKey.IsEmpty())
	assert.False(t, c.Verbose)
	require.NotNil(t, c.Logging.Enabled)
	assert.True(t, *c.Logging.Enabled)
	require.NotNil(t, c.Logging.FileSettings, "missing file settings must be defaulted")
	assert.Nil(t, c.Limiter())
	assert.Empty(t, c.RequesterOptions())
}

func TestLoadConfigYAML(t *testing.T) {
	c, err := LoadConfig(writeFile(t, "config.yaml", yamlConfig))
	require.NoError(t, err)
	assert.Equal(t, "https://api1.binance.com", c.BaseURL)
	assert.Equal(t, "key", c.APIKey.Expose())
	assert.Equal(t, "secret", c.APISecret.Expose())
	assert.Equal(t, 5*time.Second, c.Timeout)
	assert.True(t, c.Verbose)
	assert.Equal(t, time.Minute, c.RateLimit.Interval)
	assert.Equal(t, 6000, c.RateLimit.Requests)
	assert.Equal(t, "debug", c.Logging.Level)
	require.NotNil(t, c.Logging.FileSettings)
	assert.Equal(t, "client.log", c.Logging.FileSettings.FileName)
	assert.Equal(t, 100, c.Logging.FileSettings.MaxSize, "invalid rotation size must be defaulted")

	l := c.Limiter()
	require.NotNil(t, l)
	assert.Equal(t, rate.Limit(100), l.Limit())
	assert.Len(t, c.RequesterOptions(), 1)
}

func TestLoadConfigJSON(t *testing.T) {
	c, err := LoadConfig(writeFile(t, "config.json", jsonConfig))
	require.NoError(t, err)
	assert.Equal(t, binance.APIDataURL, c.BaseURL)
	assert.Equal(t, 2*time.Second, c.Timeout)
	assert.True(t, c.HTTPDebugging)
	require.NotNil(t, c.Logging.Enabled)
	assert.False(t, *c.Logging.Enabled)
	assert.True(t, c.Logging.JSON)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("BINANCE_APIKEY", "envkey")
	t.Setenv("BINANCE_TIMEOUT", "9s")
	t.Setenv("BINANCE_RATELIMIT_REQUESTS", "10")
	t.Setenv("BINANCE_RATELIMIT_INTERVAL", "1s")
	c, err := LoadConfig(writeFile(t, "config.yaml", yamlConfig))
	require.NoError(t, err)
	assert.Equal(t, "envkey", c.APIKey.Expose(), "environment must override the file")
	assert.Equal(t, "secret", c.APISecret.Expose())
	assert.Equal(t, 9*time.Second, c.Timeout)
	assert.Equal(t, rate.Limit(10), c.Limiter().Limit())
}

func TestLoadConfigEnvFile(t *testing.T) {
	unsetEnv(t, "BINANCE_APISECRET")
	unsetEnv(t, "BINANCE_VERBOSE")
	env := writeFile(t, "test.env", "BINANCE_APISECRET=fromfile\nBINANCE_VERBOSE=true\n")
	c, err := LoadConfig("", env)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", c.APISecret.Expose())
	assert.True(t, c.Verbose)

	_, err = LoadConfig("", filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, os.ErrNotExist, "explicit environment files must exist")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.yaml", "timeout: [1, 2]\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "config.yaml", "baseUrl: ftp://api.binance.com\n"))
	assert.ErrorIs(t, err, errInvalidBaseURL)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	for name, tc := range map[string]struct {
		mutate func(*Config)
		err    error
	}{
		"valid":                  {mutate: func(*Config) {}},
		"empty base url":         {mutate: func(c *Config) { c.BaseURL = "" }, err: errInvalidBaseURL},
		"no host":                {mutate: func(c *Config) { c.BaseURL = "https://" }, err: errInvalidBaseURL},
		"unparsable base url":    {mutate: func(c *Config) { c.BaseURL = "http://[::1" }, err: errInvalidBaseURL},
		"negative timeout":       {mutate: func(c *Config) { c.Timeout = -time.Second }, err: errNegativeDuration},
		"negative interval":      {mutate: func(c *Config) { c.RateLimit.Interval = -time.Second }, err: errNegativeDuration},
		"negative requests":      {mutate: func(c *Config) { c.RateLimit.Requests = -1 }, err: errNegativeRequests},
		"requests sans interval": {mutate: func(c *Config) { c.RateLimit.Requests = 1 }, err: errRateLimitIntervalUnset},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			c := &Config{BaseURL: binance.APIURL}
			tc.mutate(c)
			err := c.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewExchange(t *testing.T) {
	t.Parallel()
	c := &Config{
		BaseURL:   binance.APIDataURL + "/",
		APIKey:    crypto.NewSensitiveString("k"),
		APISecret: crypto.NewSensitiveString("s"),
		Timeout:   time.Second,
		RateLimit: RateLimitConfig{Interval: time.Second, Requests: 5},
	}
	bc := c.ExchangeConfig()
	assert.Equal(t, c.BaseURL, bc.BaseURL)
	assert.True(t, c.APIKey.Equal(bc.APIKey))
	assert.Equal(t, time.Second, bc.Timeout)

	e, err := c.NewExchange()
	require.NoError(t, err)
	assert.Equal(t, binance.APIDataURL, e.BaseURL())
	assert.True(t, e.HasCredentials())
}
