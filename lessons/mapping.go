/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package lessons

import (
	"strings"

	"github.com/ARM-software/golang-fp/collection"
)

const (
	mNumberPrefix       = "M"
	mNumberPadding      = "000000"
	legacyMNumberLength = 6
)

// UpgradeMNumber converts an M number to the current format: legacy six-digit numbers are padded with six leading zeros and every number gets the M prefix.
func UpgradeMNumber(existing string) string {
	upgraded := existing
	if len(upgraded) == legacyMNumberLength {
		upgraded = mNumberPadding + upgraded
	}
	return mNumberPrefix + upgraded
}

// UpgradeMNumbers upgrades all existing M numbers.
func UpgradeMNumbers(existing []string) []string {
	return collection.Map(existing, UpgradeMNumber)
}

func Double(i int) int {
	return i * 2
}

func Upper(s string) string {
	return strings.ToUpper(s)
}
