package logger

import (
	"employeeservice/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  core.LogLevel
}

// NewZapLogger creates a new zap-based logger instance
func NewZapLogger(isProduction bool) core.Logger {
	var cfg zap.Config

	if isProduction {
		// JSON encoder for structured logging
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		// Console encoder for easier reading
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"

	zapLogger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{
		logger: zapLogger,
		level:  core.LogLevelInfo,
	}
}

// NewDefaultLogger creates a standard logger for the application
func NewDefaultLogger() core.Logger {
	return NewZapLogger(false)
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	return l.level
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	if l.level > core.LogLevelDebug {
		return
	}
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	if l.level > core.LogLevelInfo {
		return
	}
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	if l.level > core.LogLevelWarn {
		return
	}
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	if l.level > core.LogLevelError {
		return
	}
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
