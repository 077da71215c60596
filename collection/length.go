/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"iter"

	"github.com/ARM-software/golang-fp/commonerrors"
)

//
// List utilities: a sequence is seen as its first element followed by the rest of the sequence.
//

// IsEmpty returns whether s has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Destructure splits s into its first element and the remaining elements.
// rest shares the backing array of s. An empty s returns an error.
func Destructure[S ~[]E, E any](s S) (first E, rest S, err error) {
	if IsEmpty(s) {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot destructure an empty sequence")
		return
	}
	first = s[0]
	rest = s[1:]
	return
}

// Length counts the elements of s by repeatedly removing the first element until s is empty.
func Length[S ~[]E, E any](s S) (length int) {
	for !IsEmpty(s) {
		_, s, _ = Destructure(s)
		length++
	}
	return
}

// LengthSequence counts the elements of a sequence.
func LengthSequence[E any](s iter.Seq[E]) (length int) {
	if s == nil {
		return
	}
	for range s {
		length++
	}
	return
}

// RecursiveLength counts the elements of s using structural recursion: the length is one more than the length of the rest.
// The call depth grows with the length of s. Prefer Length for sequences of unbounded size.
func RecursiveLength[S ~[]E, E any](s S) int {
	_, rest, err := Destructure(s)
	if err != nil {
		return 0
	}
	return 1 + RecursiveLength(rest)
}

// AccumulatingRecursiveLength counts the elements of s carrying the running count yet to the recursive call.
// The recursive call is in tail position. Go does not eliminate tail calls so the call depth still grows with the length of s.
func AccumulatingRecursiveLength[S ~[]E, E any](s S, yet int) int {
	_, rest, err := Destructure(s)
	if err != nil {
		return yet
	}
	return AccumulatingRecursiveLength(rest, yet+1)
}

// TailRecursiveLength is AccumulatingRecursiveLength starting from a count of zero.
func TailRecursiveLength[S ~[]E, E any](s S) int {
	return AccumulatingRecursiveLength(s, 0)
}
