/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error types shared across the module so that callers can match them with errors.Is.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

const TypeReasonErrorSeparator = ':'

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrCondition      = errors.New("failed condition")
	ErrUnexpected     = errors.New("unexpected")
	ErrEmpty          = errors.New("empty")
	// ErrTypeMismatch is returned when a function receives a value outside the types it is defined for.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Any returns true if target matches any of the errors (or any of them match target).
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None returns true if target matches none of the errors.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo checks whether the error description contains any of the descriptions (case insensitive).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// New creates an error of type errorType with a reason.
func New(errorType error, reason string) error {
	if errorType == nil {
		errorType = ErrUnknown
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errorType
	}
	return fmt.Errorf("%w%v %v", errorType, string(TypeReasonErrorSeparator), reason)
}

// Newf is similar to New but formats the reason.
func Newf(errorType error, format string, args ...any) error {
	return New(errorType, fmt.Sprintf(format, args...))
}

// WrapError wraps an error into a particular targetError. Both errors remain matchable with errors.Is.
func WrapError(targetError, originalError error, reason string) error {
	if originalError == nil {
		return New(targetError, reason)
	}
	if targetError == nil {
		targetError = ErrUnknown
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w%v %w", targetError, string(TypeReasonErrorSeparator), originalError)
	}
	return fmt.Errorf("%w%v %v%v %w", targetError, string(TypeReasonErrorSeparator), reason, string(TypeReasonErrorSeparator), originalError)
}

// WrapErrorf is similar to WrapError but formats the reason.
func WrapErrorf(targetError, originalError error, format string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(format, args...))
}
