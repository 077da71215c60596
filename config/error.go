/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-fp/commonerrors"
)

// ValidationError describes why a configuration failed validation and where.
type ValidationError struct {
	// Tree is the path of structure field names leading to the failing entry.
	Tree []string
	// MapStructureTree is the same path using mapstructure keys, which is how entries are set in the environment.
	MapStructureTree []string
	Reason           string
}

func (v *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("structure failed validation:")
	if len(v.Tree) > 0 {
		_, _ = fmt.Fprintf(&b, " (%v)", strings.Join(v.Tree, "->"))
	}
	if len(v.MapStructureTree) > 0 {
		_, _ = fmt.Fprintf(&b, " [%v]", v.GetMapStructurePath())
	}
	if v.Reason != "" {
		_, _ = fmt.Fprintf(&b, " %v", v.Reason)
	}
	return commonerrors.New(commonerrors.ErrInvalid, b.String()).Error()
}

// GetMapStructurePath returns the environment-like path of the failing entry e.g. LOG_FORMAT.
func (v *ValidationError) GetMapStructurePath() string {
	return strings.ToUpper(strings.ReplaceAll(strings.Join(v.MapStructureTree, EnvVarSeparator), "-", EnvVarSeparator))
}

func (v *ValidationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *ValidationError) recordField(fieldName string, mapStructureName *string) {
	v.Tree = slices.Insert(v.Tree, 0, strings.TrimSpace(fieldName))
	if mapStructureName != nil {
		v.MapStructureTree = slices.Insert(v.MapStructureTree, 0, strings.TrimSpace(*mapStructureName))
	}
}

// WrapValidationError converts any validation error (e.g. from ozzo-validation) into a ValidationError.
func WrapValidationError(err error) error {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	return vErr
}

// WrapFieldValidationError records that err results from the validation of the field fieldName.
func WrapFieldValidationError(fieldName string, mapStructureName *string, err error) error {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.recordField(fieldName, mapStructureName)
	return vErr
}

func newValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oes validation.Errors
	if errors.As(err, &oes) {
		return newValidationErrorFromOzzoValidationErrors(oes)
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return &ValidationError{Reason: oe.Error()}
	}
	return &ValidationError{Reason: err.Error()}
}

func newValidationErrorFromOzzoValidationErrors(oes validation.Errors) *ValidationError {
	if len(oes) == 0 {
		return &ValidationError{Reason: oes.Error()}
	}
	// Only the first failing entry is reported so that messages are deterministic.
	keys := slices.Sorted(maps.Keys(oes))
	key := keys[0]
	vErr := newValidationError(oes[key])
	if vErr == nil {
		vErr = &ValidationError{}
	}
	vErr.recordField(key, &key)
	return vErr
}
