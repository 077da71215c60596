/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"reflect"

	"github.com/ARM-software/golang-fp/commonerrors"
)

// ToDynamicReduceFunc adapts a typed reducer so that it can fold sequences of untyped values.
// The resulting reducer returns commonerrors.ErrTypeMismatch if the accumulator or the element is not of the expected type.
func ToDynamicReduceFunc[T1, T2 any](f ReduceFunc[T1, T2]) ReduceWithErrorFunc[any, any] {
	return func(acc any, e any) (result any, err error) {
		a, err := assertType[T2](acc, "accumulator")
		if err != nil {
			return
		}
		v, err := assertType[T1](e, "element")
		if err != nil {
			return
		}
		result = f(a, v)
		return
	}
}

// ToDynamicMapFunc adapts a typed mapping function so that it can map sequences of untyped values.
func ToDynamicMapFunc[T1, T2 any](f MapFunc[T1, T2]) MapWithErrorFunc[any, any] {
	return func(e any) (result any, err error) {
		v, err := assertType[T1](e, "element")
		if err != nil {
			return
		}
		result = f(v)
		return
	}
}

// ToDynamicCompareFunc adapts a typed comparator so that it can compare untyped values.
func ToDynamicCompareFunc[T any](f CompareFunc[T]) func(a, b any) (int, error) {
	return func(a, b any) (c int, err error) {
		va, err := assertType[T](a, "left operand")
		if err != nil {
			return
		}
		vb, err := assertType[T](b, "right operand")
		if err != nil {
			return
		}
		c = f(va, vb)
		return
	}
}

// SortWithError sorts untyped values using a comparator which may fail.
// Every element is checked against the comparator before sorting so that a mismatch is reported without partial work.
func SortWithError[S ~[]E, E any](s S, compare func(a, b E) (int, error)) (result S, err error) {
	if compare == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing comparison function")
		return
	}
	for i := 1; i < len(s); i++ {
		_, err = compare(s[i-1], s[i])
		if err != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "could not compare items #%v and #%v", i-1, i)
			return
		}
	}
	if len(s) == 1 {
		_, err = compare(s[0], s[0])
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not compare item #0")
			return
		}
	}
	result = Sort(s, func(a, b E) int {
		c, _ := compare(a, b)
		return c
	})
	return
}

func assertType[T any](v any, role string) (t T, err error) {
	t, ok := v.(T)
	if !ok {
		err = commonerrors.Newf(commonerrors.ErrTypeMismatch, "%v of type %T is not a %v", role, v, reflect.TypeFor[T]())
	}
	return
}
