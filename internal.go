package logmanager

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

func (m *Manager) initializeRollingFileLogger() *lumberjack.Logger {
	path := filepath.Join(m.cfg.LogDir, logFileName)

	return &lumberjack.Logger{
		Filename:   path,
		MaxBackups: m.cfg.LogFileMaxBackups,
		MaxAge:     m.cfg.LogFileMaxAgeDays,
		MaxSize:    m.cfg.LogFileMaxSizeMB,
		Compress:   m.cfg.LogFileCompress,
	}
}

func (m *Manager) initializeWriters() ([]io.Writer, error) {
	var writers []io.Writer

	if m.cfg.FileLogging {
		if err := os.MkdirAll(m.cfg.LogDir, os.ModePerm); err != nil {
			return nil, err
		}
		m.fileWriter = m.initializeRollingFileLogger()
		writers = append(writers, m.fileWriter)
	}
	if m.cfg.ConsoleLogging {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: m.cfg.ConsoleNoColor,
		})
	}

	return writers, nil
}
