/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"fmt"
	"slices"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-fp/commonerrors"
	"github.com/ARM-software/golang-fp/commonerrors/errortest"
)

var seasons = []string{"winter", "spring", "summer", "fall"}

func assertAllLengths[E any](t *testing.T, s []E, expected int) {
	t.Helper()
	assert.Equal(t, expected, Length(s))
	assert.Equal(t, expected, RecursiveLength(s))
	assert.Equal(t, expected, AccumulatingRecursiveLength(s, 0))
	assert.Equal(t, expected, TailRecursiveLength(s))
	assert.Equal(t, expected, LengthSequence(slices.Values(s)))
}

func TestLength(t *testing.T) {
	tests := []struct {
		name     string
		s        []string
		expected int
	}{
		{"nil", nil, 0},
		{"empty", []string{}, 0},
		{"single", []string{faker.Word()}, 1},
		{"seasons", seasons, 4},
		{"duplicates", []string{"a", "b", "b", "a"}, 4},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			assertAllLengths(t, test.s, test.expected)
		})
	}
	t.Run("integers", func(t *testing.T) {
		assertAllLengths(t, []int{8, 4, 1, 3, 7}, 5)
		assertAllLengths(t, Range(0, 1000, nil), 1000)
	})
	assert.Zero(t, LengthSequence[int](nil))
}

func TestLengthEquivalence(t *testing.T) {
	randoms, err := faker.RandomInt(0, 200)
	require.NoError(t, err)
	for i := range randoms {
		s := randoms[:i]
		t.Run(fmt.Sprintf("length %v", i), func(t *testing.T) {
			assertAllLengths(t, s, len(s))
		})
	}
}

func TestAccumulatingRecursiveLengthStartsFromYet(t *testing.T) {
	assert.Equal(t, 10, AccumulatingRecursiveLength(seasons, 6))
	assert.Equal(t, 6, AccumulatingRecursiveLength([]string{}, 6))
}

func TestLengthDoesNotModifyInput(t *testing.T) {
	s := slices.Clone(seasons)
	_ = Length(s)
	_ = RecursiveLength(s)
	_ = TailRecursiveLength(s)
	assert.Equal(t, seasons, s)
}

func TestDestructure(t *testing.T) {
	first, rest, err := Destructure(seasons)
	require.NoError(t, err)
	assert.Equal(t, "winter", first)
	assert.Equal(t, []string{"spring", "summer", "fall"}, rest)
	assert.Equal(t, Length(seasons)-1, Length(rest))
	assert.Equal(t, seasons, append([]string{first}, rest...))

	first, rest, err = Destructure([]string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", first)
	assert.Empty(t, rest)
	assert.True(t, IsEmpty(rest))

	_, _, err = Destructure([]int{})
	errortest.AssertError(t, err, commonerrors.ErrEmpty)
	_, _, err = Destructure[[]int](nil)
	errortest.AssertError(t, err, commonerrors.ErrEmpty)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty[[]int](nil))
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty(seasons))
}

func FuzzLengthEquivalence(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("winter"))
	f.Add([]byte("abba"))
	f.Fuzz(func(t *testing.T, s []byte) {
		expected := len(s)
		if Length(s) != expected || RecursiveLength(s) != expected || AccumulatingRecursiveLength(s, 0) != expected {
			t.Fatalf("lengths differ for %v", s)
		}
		if expected > 0 {
			first, rest, err := Destructure(s)
			if err != nil || first != s[0] || len(rest) != expected-1 {
				t.Fatalf("could not destructure %v", s)
			}
		}
	})
}
