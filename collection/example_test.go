/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection_test

import (
	"fmt"
	"strings"

	"github.com/ARM-software/golang-fp/collection"
)

func ExampleReduce() {
	fmt.Println(collection.Reduce([]string{"a", "b", "b", "a"}, "", collection.Concatenate()))
	fmt.Println(collection.Reduce([]int{1, 2, 3, 4, 5}, 0, collection.Sum[int]()))
	// Output:
	// abba
	// 15
}

func ExampleMap() {
	fmt.Println(collection.Map([]int{2, 4, 6}, func(i int) int { return i * 2 }))
	fmt.Println(collection.Map([]string{"s", "c", "r", "e", "a", "m"}, strings.ToUpper))
	// Output:
	// [4 8 12]
	// [S C R E A M]
}

func ExampleSort() {
	lessThan := func(this, that int) int {
		switch {
		case this < that:
			return -1
		case this == that:
			return 0
		default:
			return 1
		}
	}
	fmt.Println(collection.Sort([]int{8, 4, 1, 3, 7}, lessThan))
	// Output: [1 3 4 7 8]
}

func ExampleDestructure() {
	first, rest, _ := collection.Destructure([]string{"winter", "spring", "summer", "fall"})
	fmt.Println(first)
	fmt.Println(rest)
	// Output:
	// winter
	// [spring summer fall]
}

func ExampleLength() {
	seasons := []string{"winter", "spring", "summer", "fall"}
	fmt.Println(collection.Length(seasons))
	fmt.Println(collection.RecursiveLength(seasons))
	fmt.Println(collection.RecursiveLength([]string{}))
	fmt.Println(collection.AccumulatingRecursiveLength(seasons, 0))
	fmt.Println(collection.TailRecursiveLength(seasons))
	// Output:
	// 4
	// 4
	// 0
	// 4
	// 4
}
