package logger

import (
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
	"os"
)

func CreateLogger(serviceName string) logrus.FieldLogger {
	l := logrus.StandardLogger()
	l.SetFormatter(&ecslogrus.Formatter{})

	logLevel := os.Getenv("LOG_LEVEL")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return l.WithField("service", serviceName)
}
