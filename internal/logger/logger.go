// Package logger builds the logrus logger shared by a process.
package logger

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"textrogue/internal/config"
)

// New returns a logger for cfg. console receives log output alongside the
// rotating file when file output is enabled; pass nil to keep logs off the
// terminal. With neither, logs are discarded.
func New(cfg config.LoggingConfig, console io.Writer) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var outs []io.Writer
	if console != nil {
		outs = append(outs, console)
	}
	if cfg.FileEnabled && cfg.FilePath != "" {
		outs = append(outs, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		})
	}
	switch len(outs) {
	case 0:
		log.SetOutput(io.Discard)
	case 1:
		log.SetOutput(outs[0])
	default:
		log.SetOutput(io.MultiWriter(outs...))
	}
	return log
}
