/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/ARM-software/golang-fp/commonerrors"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu sync.RWMutex
	// root is the logr implementation as provided, base adds the logger source to it and logger adds the log source to base.
	root    logr.Logger
	base    logr.Logger
	logger  logr.Logger
	source  string
	closeFn func() error
}

func (l *logrLogger) refresh() {
	l.logger = l.base
	if l.source != "" {
		l.logger = l.base.WithValues(KeyLogSource, l.source)
	}
}

func (l *logrLogger) get() logr.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *logrLogger) Close() error {
	if l.closeFn == nil {
		return nil
	}
	return l.closeFn()
}

// Check always succeeds: a logr.Logger without sink discards messages.
func (l *logrLogger) Check() error {
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	l.refresh()
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base = l.root.WithName(source).WithValues(KeyLoggerSource, source)
	l.refresh()
	return nil
}

func (l *logrLogger) Log(output ...interface{}) {
	l.get().Info(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *logrLogger) LogError(err ...interface{}) {
	var actualErr error
	var msg []interface{}
	for i := range err {
		if e, ok := err[i].(error); ok && actualErr == nil {
			actualErr = e
			continue
		}
		msg = append(msg, err[i])
	}
	l.get().Error(actualErr, strings.TrimSpace(fmt.Sprintln(msg...)))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (Loggers, error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but calls closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	l := &logrLogger{root: logrImpl, base: logrImpl, logger: logrImpl, closeFn: closeFunc}
	err = l.SetLoggerSource(loggerSource)
	if err != nil {
		return
	}
	loggers = l
	return
}

// NewLogrLoggerFromLoggers converts loggers into a logr.Logger
func NewLogrLoggerFromLoggers(loggers Loggers) logr.Logger {
	return stdr.New(log.New(&loggersWriter{loggers: loggers}, "", 0))
}

type loggersWriter struct {
	loggers Loggers
}

func (w *loggersWriter) Write(p []byte) (n int, err error) {
	w.loggers.Log(strings.TrimSpace(string(p)))
	n = len(p)
	return
}
