/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"cmp"
	"iter"
	"slices"
)

//
// Sorting utilities
//

// CompareFunc defines a three-way comparison: negative if a sorts before b, zero if they are equivalent and positive otherwise.
// It is expected to define a consistent total preorder. This is not verified: an inconsistent comparator gives an unspecified order.
type CompareFunc[T any] func(a, b T) int

// CompareOrdered compares two ordered values and returns -1, 0 or 1.
func CompareOrdered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// ThreeWay derives a comparator from a strict less-than relation.
func ThreeWay[T any](less func(a, b T) bool) CompareFunc[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// CompareBy returns a comparator ordering elements by the key extracted with key.
func CompareBy[T any, K cmp.Ordered](key MapFunc[T, K]) CompareFunc[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ReverseCompare returns a comparator ordering elements in the opposite order of compare.
func ReverseCompare[T any](compare CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// Sort returns a copy of s sorted in non-descending order according to compare.
// The sort is stable: elements comparing equal keep their relative order. s is not modified.
// A nil comparator considers all elements equal and so the copy keeps the input order.
func Sort[S ~[]E, E any](s S, compare CompareFunc[E]) S {
	if s == nil {
		return nil
	}
	result := slices.Clone(s)
	if compare == nil {
		return result
	}
	slices.SortStableFunc(result, compare)
	return result
}

// SortSequence collects a sequence and sorts it according to compare.
func SortSequence[E any](s iter.Seq[E], compare CompareFunc[E]) []E {
	if s == nil {
		return nil
	}
	return Sort(slices.Collect(s), compare)
}

// IsSorted reports whether every adjacent pair (a, b) of s satisfies compare(a, b) <= 0.
func IsSorted[S ~[]E, E any](s S, compare CompareFunc[E]) bool {
	if compare == nil {
		return true
	}
	return slices.IsSortedFunc(s, compare)
}
