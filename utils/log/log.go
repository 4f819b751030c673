// Package log is a thin leveled wrapper around zap's sugared logger.
package log

import (
	"go.uber.org/zap"
)

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(logger)
}

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	FATAL
)

var logLevel = INFO

func Debug(format string, args ...interface{}) {
	if logLevel <= DEBUG {
		zap.S().Debugf(format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if logLevel <= INFO {
		zap.S().Infof(format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if logLevel <= WARNING {
		zap.S().Warnf(format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if logLevel <= ERROR {
		zap.S().Errorf(format, args...)
	}
}

func Fatal(format string, args ...interface{}) {
	zap.S().Fatalf(format, args...)
}

func SetLevel(level Level) {
	logLevel = level
}

// SetLevelFromString sets the log level by the name used in the config file.
// Unknown names leave the level unchanged.
func SetLevelFromString(name string) {
	switch name {
	case "debug":
		logLevel = DEBUG
	case "info":
		logLevel = INFO
	case "warning", "warn":
		logLevel = WARNING
	case "error":
		logLevel = ERROR
	}
}
