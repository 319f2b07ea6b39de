package liskvalidator

import (
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	loggerMu      sync.RWMutex
	currentLogger logrus.FieldLogger = logrus.StandardLogger()
)

// SetLogger replaces the package logger; nil restores the logrus standard
// logger. Keyword compilers log at debug level only.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	loggerMu.Lock()
	currentLogger = l
	loggerMu.Unlock()
}

func logger() logrus.FieldLogger {
	loggerMu.RLock()
	l := currentLogger
	loggerMu.RUnlock()
	return l
}
