// Package logging initializes the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/railatlas/railatlas/config"
)

var initOnce sync.Once

// Init configures the global zerolog logger from the logging config: a
// console writer always, plus a rotating file writer when a file path is
// set. Safe to call more than once; only the first call takes effect.
func Init(cfg config.LoggingConfig) {
	initOnce.Do(func() {
		level, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			level = zerolog.InfoLevel
		}

		writers := []io.Writer{
			zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339},
		}
		if cfg.File != "" {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.File,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   true,
			})
		}

		zerolog.TimeFieldFormat = time.RFC3339
		log.Logger = zerolog.New(io.MultiWriter(writers...)).
			With().Timestamp().Logger().Level(level)
	})
}
