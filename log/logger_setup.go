package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	errUnhandledOutputWriter = errors.New("unhandled output writer")
	errFileSettingsUnset     = errors.New("file output requested without file settings")
	errSubLoggerNotFound     = errors.New("sub logger not found")
)

// GenDefaultSettings return struct with known sane/working logger settings
func GenDefaultSettings() Config {
	enabled := true
	return Config{
		Enabled: &enabled,
		Level:   defaultLevel,
		Output:  defaultOutput,
		FileSettings: &FileConfig{
			FileName:   "binancespot.log",
			MaxSize:    DefaultMaxFileSize,
			MaxBackups: 3,
		},
	}
}

// SetupGlobalLogger applies the supplied configuration to the global logger and
// every registered sub logger
func SetupGlobalLogger(c *Config) error {
	if c == nil {
		d := GenDefaultSettings()
		c = &d
	}

	level, err := parseLevel(c.Level)
	if err != nil {
		return err
	}

	var output io.Writer = io.Discard
	var fileWriter io.Closer
	if c.Enabled == nil || *c.Enabled {
		output, fileWriter, err = getWriters(c)
		if err != nil {
			return err
		}
	}

	overrides := make(map[string]logrus.Level, len(c.SubLoggers))
	for i := range c.SubLoggers {
		name := strings.ToUpper(c.SubLoggers[i].Name)
		if _, ok := subLoggers[name]; !ok {
			return fmt.Errorf("%w: %s", errSubLoggerNotFound, c.SubLoggers[i].Name)
		}
		overrides[name], err = parseLevel(c.SubLoggers[i].Level)
		if err != nil {
			return err
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
	}
	closer = fileWriter
	logger.SetOutput(output)
	logger.SetFormatter(newFormatter(c.JSON))
	for name, sl := range subLoggers {
		sl.level = level
		if l, ok := overrides[name]; ok {
			sl.level = l
		}
	}
	return nil
}

// CloseLogger releases the rotating log file if one is open
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	logger.SetOutput(os.Stdout)
	return err
}

func getWriters(c *Config) (io.Writer, io.Closer, error) {
	output := c.Output
	if output == "" {
		output = defaultOutput
	}
	var writers []io.Writer
	var fileWriter *lumberjack.Logger
	for _, o := range strings.Split(output, "|") {
		switch strings.ToLower(strings.TrimSpace(o)) {
		case "stdout", "console":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		case "file", "both":
			if c.FileSettings == nil || c.FileSettings.FileName == "" {
				return nil, nil, errFileSettingsUnset
			}
			if fileWriter == nil {
				fileWriter = &lumberjack.Logger{
					Filename:   c.FileSettings.FileName,
					MaxSize:    c.FileSettings.MaxSize,
					MaxBackups: c.FileSettings.MaxBackups,
					MaxAge:     c.FileSettings.MaxAge,
					Compress:   c.FileSettings.Compress,
				}
				writers = append(writers, fileWriter)
			}
			if strings.EqualFold(strings.TrimSpace(o), "both") {
				writers = append(writers, os.Stdout)
			}
		default:
			return nil, nil, fmt.Errorf("%w: %s", errUnhandledOutputWriter, o)
		}
	}
	var w io.Writer = io.MultiWriter(writers...)
	if len(writers) == 1 {
		w = writers[0]
	}
	if fileWriter == nil {
		return w, nil, nil
	}
	return w, fileWriter, nil
}

func parseLevel(level string) (logrus.Level, error) {
	if level == "" {
		level = defaultLevel
	}
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

func newFormatter(asJSON bool) logrus.Formatter {
	if asJSON {
		return &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	}
}
