/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package lessons

import (
	"github.com/ARM-software/golang-fp/collection"
)

const (
	EmptinessMessage = "There is only emptiness."
	HappyDayMessage  = "Happy day!"
)

// LengthReport holds the length of a sequence as computed by every variant.
type LengthReport struct {
	Iterative           int
	Recursive           int
	TailRecursive       int
	RecursiveOfNothing  int
	AccumulatingNothing int
}

// Consistent returns whether all the variants agree.
func (r LengthReport) Consistent() bool {
	return r.Iterative == r.Recursive && r.Recursive == r.TailRecursive && r.RecursiveOfNothing == 0 && r.AccumulatingNothing == 0
}

// SplitSeasons returns the first season and the others.
func SplitSeasons(seasons []string) (first string, rest []string, err error) {
	return collection.Destructure(seasons)
}

// DescribeEmptiness describes whether there is anything in s.
func DescribeEmptiness[E any](s []E) string {
	if collection.IsEmpty(s) {
		return EmptinessMessage
	}
	return HappyDayMessage
}

// MeasureLengths measures s with every length variant, and measures an empty sequence with the recursive ones.
func MeasureLengths[E any](s []E) LengthReport {
	return LengthReport{
		Iterative:           collection.Length(s),
		Recursive:           collection.RecursiveLength(s),
		TailRecursive:       collection.AccumulatingRecursiveLength(s, 0),
		RecursiveOfNothing:  collection.RecursiveLength([]E{}),
		AccumulatingNothing: collection.TailRecursiveLength([]E{}),
	}
}
