/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Command fpdemo runs the fold, map, sort and length lessons and logs their results.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand(newLoggers).Execute(); err != nil {
		os.Exit(1)
	}
}
