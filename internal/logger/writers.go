package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SafeFileWriter provides thread-safe file writing with buffering and periodic flush
type SafeFileWriter struct {
	mu     sync.Mutex
	writer *bufio.Writer
	file   *os.File
	ticker *time.Ticker
	done   chan struct{}
	closed bool
}

var _ zapcore.WriteSyncer = (*SafeFileWriter)(nil)

// NewSafeFileWriter creates a new thread-safe file writer
func NewSafeFileWriter(filePath string, flushInterval time.Duration) (*SafeFileWriter, error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	sfw := &SafeFileWriter{
		writer: bufio.NewWriter(file),
		file:   file,
		ticker: time.NewTicker(flushInterval),
		done:   make(chan struct{}),
	}

	go sfw.periodicFlush()

	return sfw, nil
}

// Write writes data to the file in a thread-safe manner
func (sfw *SafeFileWriter) Write(data []byte) (int, error) {
	sfw.mu.Lock()
	defer sfw.mu.Unlock()

	if sfw.closed {
		return 0, os.ErrClosed
	}

	n, err := sfw.writer.Write(data)
	if err != nil {
		return n, fmt.Errorf("failed to write data: %w", err)
	}

	return n, nil
}

// Sync flushes buffered data to disk; it satisfies zapcore.WriteSyncer.
func (sfw *SafeFileWriter) Sync() error {
	return sfw.Flush()
}

// Flush forces a write of any buffered data
func (sfw *SafeFileWriter) Flush() error {
	sfw.mu.Lock()
	defer sfw.mu.Unlock()

	if sfw.closed {
		return nil
	}

	if err := sfw.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	if err := sfw.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync file: %w", err)
	}

	return nil
}

// periodicFlush runs in a goroutine to periodically flush the buffer.
// Flush errors here have nowhere to go: the writer is the log sink.
func (sfw *SafeFileWriter) periodicFlush() {
	for {
		select {
		case <-sfw.ticker.C:
			_ = sfw.Flush()
		case <-sfw.done:
			return
		}
	}
}

// Close closes the writer and ensures all data is written
func (sfw *SafeFileWriter) Close() error {
	sfw.mu.Lock()
	defer sfw.mu.Unlock()

	if sfw.closed {
		return nil
	}
	sfw.closed = true

	close(sfw.done)
	sfw.ticker.Stop()

	if err := sfw.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush on close: %w", err)
	}

	if err := sfw.file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}

// CreateTUILogger creates a logger that only writes JSON lines to path.
// The terminal belongs to the TUI, so nothing goes to stdout/stderr.
// The returned writer must be closed after the logger is synced.
func CreateTUILogger(debug bool, path string) (*zap.Logger, *SafeFileWriter, error) {
	sink, err := NewSafeFileWriter(path, time.Second)
	if err != nil {
		return nil, nil, err
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		CallerKey:      "",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		sink,
		level(debug),
	)

	return zap.New(core), sink, nil
}
