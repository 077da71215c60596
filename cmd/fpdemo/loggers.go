/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ARM-software/golang-fp/commonerrors"
	"github.com/ARM-software/golang-fp/lessons"
	"github.com/ARM-software/golang-fp/logs"
	"github.com/ARM-software/golang-fp/logs/logrimp"
)

// loggersFactory creates the loggers results are reported to.
type loggersFactory func(w io.Writer, format string) (logs.Loggers, error)

func newLoggers(w io.Writer, format string) (loggers logs.Loggers, err error) {
	switch format {
	case lessons.LogFormatText:
		loggers, err = logs.NewLogrLogger(logrimp.NewWriterLogr(w), appName)
	case lessons.LogFormatJSON:
		core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(w), zap.InfoLevel)
		loggers, err = logs.NewZapLogger(zap.New(core), appName)
	case lessons.LogFormatHclog:
		loggers, err = logs.NewHclogLogger(hclog.New(&hclog.LoggerOptions{
			Name:   appName,
			Level:  hclog.Info,
			Output: w,
		}), appName)
	case lessons.LogFormatLogrus:
		l := logrus.New()
		l.SetOutput(w)
		loggers, err = logs.NewLogrusLogger(l, appName)
	case lessons.LogFormatZerolog:
		loggers, err = logs.NewJSONLoggerWithWriter(w, appName)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "log format %q", format)
	}
	return
}
