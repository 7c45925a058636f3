package log

import "github.com/sirupsen/logrus"

var InfoLevel = logrus.InfoLevel

var DebugLevel = logrus.DebugLevel

type TextFormatter = logrus.TextFormatter

type Level = logrus.Level

type Fields = logrus.Fields

type Entry = logrus.Entry

func SetFormatter(formatter logrus.Formatter) {
	logrus.SetFormatter(formatter)
}

func SetLevel(level logrus.Level) {
	logrus.SetLevel(level)
}

func WithField(key string, value interface{}) *logrus.Entry {
	return logrus.WithField(key, value)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

func Infof(format string, messages ...interface{}) {
	logrus.Infof(format, messages...)
}

func Error(messages ...interface{}) {
	logrus.Error(messages...)
}

func Fatal(messages ...interface{}) {
	logrus.Fatal(messages...)
}

func ParseLevel(level string) (logrus.Level, error) {
	return logrus.ParseLevel(level)
}
