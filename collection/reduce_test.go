/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-fp/commonerrors"
	"github.com/ARM-software/golang-fp/commonerrors/errortest"
)

func TestReduce(t *testing.T) {
	t.Run("sum", func(t *testing.T) {
		assert.Equal(t, 15, Reduce([]int{1, 2, 3, 4, 5}, 0, Sum[int]()))
		assert.Equal(t, 15, ReducesSequence(slices.Values(Range(1, 6, nil)), 0, Sum[int]()))
		assert.Equal(t, 6.5, Reduce([]float64{1.5, 2, 3}, 0, Sum[float64]()))
	})
	t.Run("product", func(t *testing.T) {
		assert.Equal(t, 120, Reduce([]int{1, 2, 3, 4, 5}, 1, Product[int]()))
	})
	t.Run("concatenation", func(t *testing.T) {
		assert.Equal(t, "abba", Reduce([]string{"a", "b", "b", "a"}, "", Concatenate()))
	})
	t.Run("accumulator of a different type", func(t *testing.T) {
		assert.Equal(t, 11, Reduce([]string{"winter", "fall", "a"}, 0, func(acc int, e string) int {
			return acc + len(e)
		}))
	})
}

func TestReduceEmpty(t *testing.T) {
	initial := faker.Sentence()
	assert.Equal(t, initial, Reduce(nil, initial, Concatenate()))
	assert.Equal(t, initial, Reduce([]string{}, initial, Concatenate()))
	assert.Equal(t, initial, ReducesSequence(nil, initial, Concatenate()))
	assert.Equal(t, 42, Reduce([]int{}, 42, func(_ int, _ int) int {
		assert.Fail(t, "reducer should not be called")
		return 0
	}))
}

func TestReduceIsLeftToRight(t *testing.T) {
	randoms, err := faker.RandomInt(0, 50)
	require.NoError(t, err)
	var calls []int
	visited := Reduce(randoms, []int{}, func(acc []int, e int) []int {
		calls = append(calls, e)
		return append(acc, e)
	})
	assert.Equal(t, randoms, visited)
	assert.Equal(t, randoms, calls)

	// Subtraction is not associative: a left fold gives ((((0-1)-2)-3)-4).
	assert.Equal(t, -10, Reduce([]int{1, 2, 3, 4}, 0, func(acc, e int) int { return acc - e }))
	assert.Equal(t, "((((x1)2)3)4)", Reduce([]int{1, 2, 3, 4}, "x", func(acc string, e int) string {
		return fmt.Sprintf("(%v%v)", acc, e)
	}))
}

func TestReduceDoesNotModifyInput(t *testing.T) {
	words := []string{faker.Word(), faker.Word(), faker.Word()}
	expected := slices.Clone(words)
	_ = Reduce(words, "", func(acc string, e string) string { return acc + strings.ToUpper(e) })
	assert.Equal(t, expected, words)
}

func TestReduceWithError(t *testing.T) {
	result, err := ReduceWithError([]int{1, 2, 3}, 0, func(acc int, e int) (int, error) { return acc + e, nil })
	require.NoError(t, err)
	assert.Equal(t, 6, result)

	result, err = ReduceWithError([]int{}, 7, func(acc int, e int) (int, error) { return acc + e, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, result)

	calls := 0
	result, err = ReduceWithError([]int{1, 2, 3, 4}, 10, func(acc int, e int) (int, error) {
		calls++
		if e == 3 {
			return acc, commonerrors.ErrUnexpected
		}
		return acc + e, nil
	})
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrUnexpected)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	assert.Contains(t, err.Error(), "#2")
	assert.Zero(t, result)
	assert.Equal(t, 3, calls)

	_, err = ReduceWithError[int, int]([]int{1}, 0, nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)

	_, err = ReducesSequenceWithError(slices.Values([]int{1}), 0, func(acc int, _ int) (int, error) {
		return acc, errors.New("failure")
	})
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}
