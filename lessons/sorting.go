/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package lessons

import "github.com/ARM-software/golang-fp/collection"

// LessThan is a three-way comparison of integers written without collection helpers.
func LessThan(this, that int) int {
	if this < that {
		return -1
	} else if this == that {
		return 0
	}
	return 1
}

// SortNumbers returns a sorted copy of numbers.
func SortNumbers(numbers []int) []int {
	return collection.Sort(numbers, LessThan)
}
