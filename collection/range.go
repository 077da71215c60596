/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/ARM-software/golang-fp/field"
)

// Range returns the integers from start up to stop, stop excluded, separated by step.
// A nil step means 1. A zero step, or a step going away from stop, gives an empty range.
func Range[T constraints.Integer](start, stop T, step *T) []T {
	it, length := rangeSequence(start, stop, step)
	result := make([]T, 0, length)
	for v := range it {
		result = append(result, v)
	}
	return result
}

// RangeSequence returns an iterator over a range.
func RangeSequence[T constraints.Integer](start, stop T, step *T) iter.Seq[T] {
	it, _ := rangeSequence(start, stop, step)
	return it
}

func rangeSequence[T constraints.Integer](start, stop T, step *T) (it iter.Seq[T], length int) {
	s := field.Optional(step, 1)
	length = determineRangeLength(start, stop, s)
	it = func(yield func(T) bool) {
		v := start
		for i := 0; i < length; i++ {
			if !yield(v) {
				return
			}
			v += s
		}
	}
	return
}

// determineRangeLength works on the distance between start and stop as a uint64 so that it cannot overflow T.
func determineRangeLength[T constraints.Integer](start, stop, step T) int {
	var zero T
	var span, stride uint64
	switch {
	case step > zero && start < stop:
		span = uint64(stop) - uint64(start)
		stride = uint64(step)
	case step < zero && start > stop:
		span = uint64(start) - uint64(stop)
		stride = -uint64(step)
	default:
		return 0
	}
	length := (span-1)/stride + 1
	if length > math.MaxInt {
		return math.MaxInt
	}
	return int(length)
}
