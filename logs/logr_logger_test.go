/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ARM-software/golang-fp/commonerrors"
	"github.com/ARM-software/golang-fp/commonerrors/errortest"
	"github.com/ARM-software/golang-fp/logs/logrimp"
	"github.com/ARM-software/golang-fp/logs/logstest"
)

func TestLogrLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewLogrLogger(logstest.NewTestLogger(t), "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestLogrLoggerSources(t *testing.T) {
	_, err := NewLogrLogger(logstest.NewNullTestLogger(), " ")
	errortest.AssertError(t, err, commonerrors.ErrNoLoggerSource)

	loggers, err := NewLogrLogger(logstest.NewNullTestLogger(), "Test")
	require.NoError(t, err)
	errortest.AssertError(t, loggers.SetLogSource(""), commonerrors.ErrNoLogSource)
	errortest.AssertError(t, loggers.SetLoggerSource(""), commonerrors.ErrNoLoggerSource)
}

func TestLogrLoggerContent(t *testing.T) {
	content := strings.Builder{}
	loggers, err := NewLogrLogger(logrimp.NewWriterLogr(&content), "lessons")
	require.NoError(t, err)
	require.NoError(t, loggers.SetLogSource("fold"))
	loggers.Log("result=abba")
	loggers.LogError(commonerrors.ErrTypeMismatch, "while folding")
	assert.Contains(t, content.String(), "result=abba")
	assert.Contains(t, content.String(), "lessons")
	assert.Contains(t, content.String(), "fold")
	assert.Contains(t, content.String(), "type mismatch")
	assert.Contains(t, content.String(), "while folding")
}

func TestLogrLoggerSourceReplaced(t *testing.T) {
	content := strings.Builder{}
	loggers, err := NewLogrLogger(logrimp.NewWriterLogr(&content), "lessons")
	require.NoError(t, err)
	for _, source := range []string{"fold", "map", "sort", "length"} {
		require.NoError(t, loggers.SetLogSource(source))
	}
	require.NoError(t, loggers.SetLoggerSource("fpdemo"))
	loggers.Log("result=4")
	line := content.String()
	assert.Equal(t, 1, strings.Count(line, `"source"=`))
	assert.Contains(t, line, `"source"="length"`)
	assert.NotContains(t, line, `"source"="fold"`)
	assert.Equal(t, 1, strings.Count(line, `"logger-source"=`))
	assert.Contains(t, line, `"logger-source"="fpdemo"`)
}

func TestLogrLoggerWithClose(t *testing.T) {
	closed := false
	loggers, err := NewLogrLoggerWithClose(logstest.NewNullTestLogger(), "Test", func() error {
		closed = true
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, loggers.Close())
	assert.True(t, closed)
}

func TestLogrLoggerConversion(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggerSource := "src-" + faker.Word()
	strLogger, err := NewStringLogger(loggerSource)
	require.NoError(t, err)
	converted := NewLogrLoggerFromLoggers(strLogger)
	message := faker.Sentence()
	converted.WithName(loggerSource).Info(message, "acc", 3)
	assert.Contains(t, strLogger.GetLogContent(), message)
	assert.Equal(t, 2, strings.Count(strLogger.GetLogContent(), loggerSource))
	converted.Error(commonerrors.ErrUnexpected, faker.Sentence())
	assert.Contains(t, strLogger.GetLogContent(), commonerrors.ErrUnexpected.Error())
}
