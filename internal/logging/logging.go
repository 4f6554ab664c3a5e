package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const permission = 0664

// EnvPath overrides the configured log file path
const EnvPath = "BLOCKPAD_LOG"

type Build struct {
	writer io.Writer
	path   string
	level  string
}

// Log holds the logger and the file backing it, if any
type Log struct {
	File   *os.File
	Logger zerolog.Logger
}

func New() *Build {
	return &Build{}
}

func (b *Build) FromPath(path string) *Build {
	b.path = path
	return b
}

func (b *Build) FromWriter(w io.Writer) *Build {
	b.writer = w
	return b
}

func (b *Build) WithLevel(level string) *Build {
	b.level = level
	return b
}

// FromEnv lets BLOCKPAD_LOG take precedence over the configured path
func (b *Build) FromEnv() *Build {
	if p := os.Getenv(EnvPath); p != "" {
		b.path = p
	}
	return b
}

// Make opens the log destination. With neither a path nor a writer the
// logger discards everything, since stdout belongs to the TUI.
func (b *Build) Make() (*Log, error) {
	level := zerolog.InfoLevel
	if b.level != "" {
		parsed, err := zerolog.ParseLevel(b.level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", b.level, err)
		}
		level = parsed
	}

	log := &Log{}
	writer := b.writer
	if b.path != "" {
		if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", b.path, err)
		}
		log.File = f
		writer = zerolog.SyncWriter(f)
	}

	if writer == nil {
		log.Logger = zerolog.Nop()
		return log, nil
	}

	log.Logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return log, nil
}

func (l *Log) Close() error {
	if l == nil || l.File == nil {
		return nil
	}
	return l.File.Close()
}
