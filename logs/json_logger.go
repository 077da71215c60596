/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ARM-software/golang-fp/commonerrors"
)

const (
	jsonTimestampField = "ctime"
	jsonMessageField   = "message"
	jsonLevelField     = "severity"
)

var configureZerolog sync.Once

// JSONLoggers defines a JSON logger
type JSONLoggers struct {
	mu           sync.RWMutex
	source       string
	loggerSource string
	writer       io.Writer
	closeWriter  bool
	closed       bool
	zerologger   zerolog.Logger
}

func (l *JSONLoggers) SetLogSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	return nil
}

func (l *JSONLoggers) SetLoggerSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loggerSource = source
	return nil
}

func (l *JSONLoggers) GetSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

func (l *JSONLoggers) GetLoggerSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loggerSource
}

// Check checks whether the logger is correctly defined or not.
func (l *JSONLoggers) Check() error {
	if l.writer == nil {
		return commonerrors.ErrNoLogger
	}
	if l.GetLoggerSource() == "" {
		return commonerrors.ErrNoLoggerSource
	}
	return nil
}

// Log logs to the output stream.
func (l *JSONLoggers) Log(output ...interface{}) {
	if len(output) == 1 && output[0] == "\n" {
		return
	}
	l.event(l.zerologger.Info()).Msg(fmt.Sprint(output...))
}

// LogError logs to the error stream.
func (l *JSONLoggers) LogError(err ...interface{}) {
	if len(err) == 1 && err[0] == "\n" {
		return
	}
	l.event(l.zerologger.Error()).Msg(fmt.Sprint(err...))
}

func (l *JSONLoggers) event(e *zerolog.Event) *zerolog.Event {
	e = e.Str(KeyLoggerSource, l.GetLoggerSource())
	if source := l.GetSource(); source != "" {
		e = e.Str(KeyLogSource, source)
	}
	return e
}

// Close closes the logger and the underlying writer if it was handed over. Closing more than once has no effect.
func (l *JSONLoggers) Close() (err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if closer, ok := l.writer.(io.Closer); ok && l.closeWriter {
		err = closer.Close()
	}
	return
}

// NewJSONLogger creates a JSON logger using zerolog (https://github.com/rs/zerolog). The writer is closed on Close if it is an io.Closer.
func NewJSONLogger(writer io.Writer, loggerSource string) (Loggers, error) {
	return newJSONLogger(true, writer, loggerSource)
}

// NewJSONLoggerWithWriter is similar to NewJSONLogger but does not close the writer on Close.
func NewJSONLoggerWithWriter(writer io.Writer, loggerSource string) (Loggers, error) {
	return newJSONLogger(false, writer, loggerSource)
}

func newJSONLogger(closeWriterOnClose bool, writer io.Writer, loggerSource string) (loggers Loggers, err error) {
	configureZerolog.Do(func() {
		zerolog.TimestampFieldName = jsonTimestampField
		zerolog.MessageFieldName = jsonMessageField
		zerolog.LevelFieldName = jsonLevelField
	})
	l := &JSONLoggers{
		loggerSource: loggerSource,
		writer:       writer,
		closeWriter:  closeWriterOnClose,
	}
	err = l.Check()
	if err != nil {
		return
	}
	l.zerologger = zerolog.New(writer).With().Timestamp().Logger()
	loggers = l
	return
}
