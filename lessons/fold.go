/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package lessons gathers small demonstrations of fold, map, sort and list recursion built on the collection package.
package lessons

import (
	"fmt"

	"github.com/ARM-software/golang-fp/collection"
	"github.com/ARM-software/golang-fp/logs"
)

// TraceReduceFunc wraps f so that the accumulator and the element are logged before every call.
// If loggers is nil, f is returned as is.
func TraceReduceFunc[T1, T2 any](loggers logs.Loggers, f collection.ReduceFunc[T1, T2]) collection.ReduceFunc[T1, T2] {
	if loggers == nil {
		return f
	}
	return func(acc T2, next T1) T2 {
		loggers.Log(fmt.Sprintf("acc=%#v", acc))
		loggers.Log(fmt.Sprintf("next=%#v", next))
		return f(acc, next)
	}
}

// ConcatenateLetters folds letters into a single string. Every step is logged if loggers is not nil.
func ConcatenateLetters(loggers logs.Loggers, letters []string) string {
	return collection.Reduce(letters, "", TraceReduceFunc(loggers, collection.Concatenate()))
}

// SumNumbers folds numbers into their sum. Every step is logged if loggers is not nil.
func SumNumbers(loggers logs.Loggers, numbers []int) int {
	return collection.Reduce(numbers, 0, TraceReduceFunc(loggers, collection.Sum[int]()))
}
