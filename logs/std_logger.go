/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"os"

	"github.com/ARM-software/golang-fp/logs/logrimp"
)

// NewStdLogger creates a logger to standard output/error
func NewStdLogger(loggerSource string) (loggers Loggers, err error) {
	loggers = &GenericLoggers{
		Output: log.New(os.Stdout, fmt.Sprintf("[%v] Output: ", loggerSource), log.LstdFlags),
		Error:  log.New(os.Stderr, fmt.Sprintf("[%v] Error: ", loggerSource), log.LstdFlags),
	}
	return
}

// NewPlainStdLogger creates a logger printing key/value lines to standard output.
func NewPlainStdLogger(loggerSource string) (loggers Loggers, err error) {
	return NewLogrLogger(logrimp.NewStdOutLogr(), loggerSource)
}
