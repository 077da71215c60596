/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"github.com/hashicorp/go-hclog"

	"github.com/ARM-software/golang-fp/commonerrors"
	"github.com/ARM-software/golang-fp/logs/logrimp"
)

// NewHclogLogger returns a logger which uses hclog logger (https://github.com/hashicorp/go-hclog)
func NewHclogLogger(hclogL hclog.Logger, loggerSource string) (loggers Loggers, err error) {
	if hclogL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLogger(logrimp.NewHclogLogger(hclogL), loggerSource)
}
