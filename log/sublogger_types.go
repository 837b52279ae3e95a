package log

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Global vars related to the logger package
var (
	subLoggers = map[string]*SubLogger{}

	Global    *SubLogger
	ConfigMgr *SubLogger

	RequestSys  *SubLogger
	ExchangeSys *SubLogger
)

// SubLogger defines a named sub logger with its own level
type SubLogger struct {
	name  string
	level logrus.Level
}

// Name returns the registered name of the sub logger
func (sl *SubLogger) Name() string {
	return sl.name
}

// enabled reports whether the sub logger emits entries at the supplied level,
// caller must hold mu
func (sl *SubLogger) enabled(l logrus.Level) bool {
	return sl != nil && sl.level >= l
}

func registerNewSubLogger(subLogger string) *SubLogger {
	temp := &SubLogger{
		name:  strings.ToUpper(subLogger),
		level: logrus.InfoLevel,
	}
	subLoggers[temp.name] = temp
	return temp
}

// register all loggers at package init()
func init() {
	Global = registerNewSubLogger("LOG")
	ConfigMgr = registerNewSubLogger("CONFIG")
	RequestSys = registerNewSubLogger("REQUESTER")
	ExchangeSys = registerNewSubLogger("EXCHANGE")

	logger.SetLevel(logrus.TraceLevel)
	logger.SetFormatter(newFormatter(false))
}
