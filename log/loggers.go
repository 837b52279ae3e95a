package log

import (
	"github.com/sirupsen/logrus"
)

// Infof takes a pointer subLogger struct, string and interface formats and writes an info entry
func Infof(sl *SubLogger, data string, v ...any) {
	logf(sl, logrus.InfoLevel, data, v...)
}

// Debugf takes a pointer subLogger struct, string and interface formats and writes a debug entry
func Debugf(sl *SubLogger, data string, v ...any) {
	logf(sl, logrus.DebugLevel, data, v...)
}

// Warnf takes a pointer subLogger struct, string and interface formats and writes a warning entry
func Warnf(sl *SubLogger, data string, v ...any) {
	logf(sl, logrus.WarnLevel, data, v...)
}

// Errorf takes a pointer subLogger struct, string and interface formats and writes an error entry
func Errorf(sl *SubLogger, data string, v ...any) {
	logf(sl, logrus.ErrorLevel, data, v...)
}

// Errorln takes a pointer subLogger struct and interface values and writes an error entry
func Errorln(sl *SubLogger, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !sl.enabled(logrus.ErrorLevel) {
		return
	}
	logger.WithField(subloggerField, sl.name).Errorln(v...)
}

// IsDebug reports whether the sub logger currently emits debug entries
func IsDebug(sl *SubLogger) bool {
	mu.RLock()
	defer mu.RUnlock()
	return sl.enabled(logrus.DebugLevel)
}

func logf(sl *SubLogger, l logrus.Level, data string, v ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !sl.enabled(l) {
		return
	}
	logger.WithField(subloggerField, sl.name).Logf(l, data, v...)
}
