package log

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	timestampFormat = "02/01/2006 15:04:05"
	// DefaultMaxFileSize for logger rotation file in megabytes
	DefaultMaxFileSize = 100
	defaultLevel       = "info"
	defaultOutput      = "console"
	subloggerField     = "sublogger"
)

var (
	logger = logrus.New()
	// closer holds the rotating file writer when file output is configured
	closer io.Closer

	// read/write mutex for logger
	mu = &sync.RWMutex{}
)

// Config holds configuration settings loaded from the client config
type Config struct {
	Enabled      *bool             `json:"enabled" mapstructure:"enabled"`
	Level        string            `json:"level" mapstructure:"level"`
	Output       string            `json:"output" mapstructure:"output"`
	JSON         bool              `json:"json" mapstructure:"json"`
	FileSettings *FileConfig       `json:"fileSettings,omitempty" mapstructure:"fileSettings"`
	SubLoggers   []SubLoggerConfig `json:"subloggers,omitempty" mapstructure:"subloggers"`
}

// FileConfig stores the rotating file output settings
type FileConfig struct {
	FileName   string `json:"filename" mapstructure:"filename"`
	MaxSize    int    `json:"maxsize" mapstructure:"maxsize"`
	MaxBackups int    `json:"maxbackups" mapstructure:"maxbackups"`
	MaxAge     int    `json:"maxage" mapstructure:"maxage"`
	Compress   bool   `json:"compress" mapstructure:"compress"`
}

// SubLoggerConfig overrides the level of a single named sub logger
type SubLoggerConfig struct {
	Name  string `json:"name" mapstructure:"name"`
	Level string `json:"level" mapstructure:"level"`
}
