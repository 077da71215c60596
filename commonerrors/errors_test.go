/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package commonerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.True(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
	assert.False(t, Any(nil, ErrInvalid))
}

func TestNone(t *testing.T) {
	assert.False(t, None(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.False(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
}

func TestCorrespondTo(t *testing.T) {
	assert.False(t, CorrespondTo(nil, "type"))
	assert.True(t, CorrespondTo(ErrTypeMismatch, "TYPE"))
	assert.True(t, CorrespondTo(fmt.Errorf("%w: bad", ErrEmpty), "nothing", "bad"))
	assert.False(t, CorrespondTo(ErrEmpty, "mismatch"))
}

func TestNew(t *testing.T) {
	reason := faker.Sentence()
	err := New(ErrTypeMismatch, reason)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
	assert.Contains(t, err.Error(), reason)
	assert.Equal(t, ErrEmpty, New(ErrEmpty, "  "))
	assert.True(t, errors.Is(New(nil, reason), ErrUnknown))

	err = Newf(ErrInvalid, "item #%v", 3)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, "invalid: item #3", err.Error())
}

func TestWrapError(t *testing.T) {
	err := WrapError(ErrInvalid, ErrTypeMismatch, "")
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.True(t, errors.Is(err, ErrTypeMismatch))

	err = WrapErrorf(ErrUnexpected, ErrEmpty, "step %v", 2)
	assert.True(t, errors.Is(err, ErrUnexpected))
	assert.True(t, errors.Is(err, ErrEmpty))
	assert.Equal(t, "unexpected: step 2: empty", err.Error())

	err = WrapError(ErrInvalid, nil, "nothing wrapped")
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.False(t, errors.Is(err, ErrEmpty))
}
