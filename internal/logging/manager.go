// pattern: Imperative Shell

// Package logging provides scoped structured loggers backed by a zap
// core writing JSON to a size-rotated file. The TUI owns the terminal,
// so nothing ever logs to stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds configuration for the Manager.
type Config struct {
	FilePath   string // Path to log file
	MaxSizeMB  int    // Max size in MB before rotation
	MaxBackups int    // Max number of old log files to keep
	MaxAgeDays int    // Max days to keep old log files
	Level      string // Minimum log level (debug, info, warn, error)
}

// LoggerProvider is an interface for obtaining scoped loggers. Both
// Manager and the nop manager used in tests implement it.
type LoggerProvider interface {
	For(scope string) *ScopedLogger
}

// ScopedLogger is a named logger with key-value field support. A nil
// inner logger makes every method a no-op.
type ScopedLogger struct {
	sugar *zap.SugaredLogger
	scope string
}

// Debug logs at DEBUG level with alternating key-value pairs.
func (l *ScopedLogger) Debug(msg string, kv ...any) {
	if l.sugar != nil {
		l.sugar.Debugw(msg, kv...)
	}
}

// Info logs at INFO level.
func (l *ScopedLogger) Info(msg string, kv ...any) {
	if l.sugar != nil {
		l.sugar.Infow(msg, kv...)
	}
}

// Warn logs at WARN level.
func (l *ScopedLogger) Warn(msg string, kv ...any) {
	if l.sugar != nil {
		l.sugar.Warnw(msg, kv...)
	}
}

// Error logs at ERROR level.
func (l *ScopedLogger) Error(msg string, kv ...any) {
	if l.sugar != nil {
		l.sugar.Errorw(msg, kv...)
	}
}

// With returns a new ScopedLogger carrying the given key-value pairs on
// every entry.
func (l *ScopedLogger) With(kv ...any) *ScopedLogger {
	if l.sugar == nil {
		return l
	}
	return &ScopedLogger{sugar: l.sugar.With(kv...), scope: l.scope}
}

// Scope returns the logger's scope name.
func (l *ScopedLogger) Scope() string { return l.scope }

// NopLogger returns a logger that discards all output. Use in tests or
// when logging is not configured.
func NopLogger() *ScopedLogger {
	return &ScopedLogger{}
}

// Manager creates and caches scoped loggers over a shared file core.
type Manager struct {
	base       *zap.Logger
	fileWriter *lumberjack.Logger
	loggers    map[string]*ScopedLogger
	mu         sync.RWMutex
}

// NewManager creates a log manager with the given configuration.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("FilePath is required")
	}

	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 5
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 7
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.EpochTimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(fileWriter),
		level,
	)

	return &Manager{
		base:       zap.New(core),
		fileWriter: fileWriter,
		loggers:    make(map[string]*ScopedLogger),
	}, nil
}

// For returns a logger for the given scope. Loggers are cached and
// reused for the same scope.
func (m *Manager) For(scope string) *ScopedLogger {
	m.mu.RLock()
	if logger, ok := m.loggers[scope]; ok {
		m.mu.RUnlock()
		return logger
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if logger, ok := m.loggers[scope]; ok {
		return logger
	}

	logger := &ScopedLogger{
		sugar: m.base.Named(scope).Sugar(),
		scope: scope,
	}
	m.loggers[scope] = logger
	return logger
}

// Sync flushes all buffered logs.
func (m *Manager) Sync() error {
	return m.base.Sync()
}

// Close syncs and closes the file writer.
func (m *Manager) Close() error {
	_ = m.Sync()
	return m.fileWriter.Close()
}

// nopManager satisfies LoggerProvider with no-op loggers.
type nopManager struct{}

func (nopManager) For(string) *ScopedLogger { return NopLogger() }

// NopManager returns a LoggerProvider whose loggers discard everything.
func NopManager() LoggerProvider { return nopManager{} }
