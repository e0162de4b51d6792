package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Logger wraps the standard logger with file output
type Logger struct {
	*log.Logger
	file *os.File
}

// NewLogger creates a new logger that writes to both console and a
// timestamped file under logDir
func NewLogger(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("fuzzmaster_%s.log", timestamp))

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	logger := log.New(multiWriter, "", log.LstdFlags)

	return &Logger{
		Logger: logger,
		file:   file,
	}, nil
}

// Close closes the log file
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// logWithCaller logs a message with caller information. When the caller
// cannot be resolved the location column is left blank.
func (l *Logger) logWithCaller(level, format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	caller := ""
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf("%s:%d:", filepath.Base(file), line)
	}
	l.Printf("%-20s [%s] %s", caller, level, message)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.logWithCaller("INFO", format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.logWithCaller("ERROR", format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logWithCaller("WARN", format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logWithCaller("DEBUG", format, v...)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logWithCaller("FATAL", format, v...)
	os.Exit(1)
}
