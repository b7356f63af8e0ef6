// Package logger
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Init(path string) error
	InitMultiWriter(w io.Writer, path string) error
	Close() error

	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Debug(msg string)

	WithStr(key, value string) Logger
	WithBool(key string, value bool) Logger
	WithInt(key string, value int) Logger
	WithAny(key string, value any) Logger
}

type logger struct {
	base   zerolog.Logger
	closer io.Closer
}

// New returns a logger that discards everything until Init or
// InitMultiWriter is called.
func New() Logger {
	return &logger{
		base: zerolog.Nop(),
	}
}

// Init sends the log to path, rotated by lumberjack.
func (l *logger) Init(path string) error {
	fileWriter, err := newFileWriter(path)
	if err != nil {
		return err
	}

	l.closer = fileWriter
	l.base = newBase(fileWriter)

	return nil
}

// InitMultiWriter mirrors the log to w. An empty path logs to w only.
func (l *logger) InitMultiWriter(w io.Writer, path string) error {
	if path == "" {
		l.base = newBase(zerolog.ConsoleWriter{Out: w, NoColor: true})
		return nil
	}

	fileWriter, err := newFileWriter(path)
	if err != nil {
		return err
	}

	l.closer = fileWriter
	l.base = newBase(zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: w, NoColor: true},
		fileWriter,
	))

	return nil
}

func (l *logger) Close() error {
	if l.closer == nil {
		return nil
	}

	err := l.closer.Close()
	l.closer = nil

	return err
}

func (l *logger) Info(msg string) {
	l.base.Info().Msg(msg)
}

func (l *logger) Warn(msg string) {
	l.base.Warn().Msg(msg)
}

func (l *logger) Error(msg string) {
	l.base.Error().Msg(msg)
}

func (l *logger) Debug(msg string) {
	l.base.Debug().Msg(msg)
}

func (l *logger) WithStr(key, value string) Logger {
	return l.derive(l.base.With().Str(key, value))
}

func (l *logger) WithBool(key string, value bool) Logger {
	return l.derive(l.base.With().Bool(key, value))
}

func (l *logger) WithInt(key string, value int) Logger {
	return l.derive(l.base.With().Int(key, value))
}

func (l *logger) WithAny(key string, value any) Logger {
	return l.derive(l.base.With().Interface(key, value))
}

// derived loggers share the writer but never close it.
func (l *logger) derive(ctx zerolog.Context) Logger {
	return &logger{
		base: ctx.Logger(),
	}
}

func newBase(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		With().
		Timestamp().
		Logger()
}

func newFileWriter(path string) (*lumberjack.Logger, error) {
	if path == "" {
		return nil, fmt.Errorf("empty log path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}, nil
}
