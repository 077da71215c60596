/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logrimp defines the logr implementations the loggers are built on.
package logrimp

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// NewStdOutLogr returns a logger to standard out.
// See https://github.com/go-logr/logr/blob/ff91da8dc418a9e36998931ed4ab10b71833a368/example_test.go#L27
func NewStdOutLogr() logr.Logger {
	return NewWriterLogr(os.Stdout)
}

// NewWriterLogr returns a logger printing one line per message to w.
func NewWriterLogr(w io.Writer) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
		} else {
			_, _ = fmt.Fprintln(w, args)
		}
	}, funcr.Options{})
}
