/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringLogger(t *testing.T) {
	loggers, err := NewStringLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
	loggers, err = NewStringLogger("Test")
	require.NoError(t, err)
	loggers.LogError("Test err")
	loggers.Log("result=abba")
	contents := loggers.GetLogContent()
	assert.Contains(t, contents, "[Test] Error: Test err")
	assert.Contains(t, contents, "[Test] Output: result=abba")
	require.NoError(t, loggers.Close())
	assert.Empty(t, loggers.GetLogContent())
}
