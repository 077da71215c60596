/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides generic fold, map, sort and length operations over finite sequences.
// None of the operations modify their input.
package collection

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/ARM-software/golang-fp/commonerrors"
)

//
// Reduce utilities
//

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
type ReduceFunc[T1, T2 any] func(T2, T1) T2

// ReduceWithErrorFunc defines a reducer which may fail.
type ReduceWithErrorFunc[T1, T2 any] func(T2, T1) (T2, error)

// Reduce runs a reducer function f over all elements in the slice, in ascending-index order, and accumulates them into a single value.
// If s is empty, accumulator is returned unchanged.
func Reduce[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReducesSequence(slices.Values(s), accumulator, f)
}

// ReducesSequence runs a reducer function f over all elements of a sequence, in order, and accumulates them into a single value.
func ReducesSequence[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceFunc[T1, T2]) (result T2) {
	result = accumulator
	if s == nil {
		return
	}
	for e := range s {
		result = f(result, e)
	}
	return
}

// ReduceWithError is similar to Reduce but f may return an error.
// Processing stops at the first error which is returned together with the zero value of the accumulator.
func ReduceWithError[T1, T2 any](s []T1, accumulator T2, f ReduceWithErrorFunc[T1, T2]) (T2, error) {
	return ReducesSequenceWithError(slices.Values(s), accumulator, f)
}

// ReducesSequenceWithError is similar to ReducesSequence but f may return an error.
func ReducesSequenceWithError[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceWithErrorFunc[T1, T2]) (result T2, err error) {
	if f == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing reduce function")
		return
	}
	acc := accumulator
	if s != nil {
		i := 0
		for e := range s {
			acc, err = f(acc, e)
			if err != nil {
				err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not reduce item #%v", i)
				return
			}
			i++
		}
	}
	result = acc
	return
}

// Sum returns a reducer adding elements to the accumulator.
func Sum[T Number]() ReduceFunc[T, T] {
	return func(acc T, e T) T {
		return acc + e
	}
}

// Product returns a reducer multiplying the accumulator by elements.
func Product[T Number]() ReduceFunc[T, T] {
	return func(acc T, e T) T {
		return acc * e
	}
}

// Concatenate returns a reducer appending elements to a string accumulator.
func Concatenate() ReduceFunc[string, string] {
	return func(acc string, e string) string {
		return acc + e
	}
}
