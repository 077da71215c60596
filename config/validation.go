/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
	"strings"
)

// ValidateEmbedded uses reflection to find embedded structs and validate them
func ValidateEmbedded(cfg IServiceConfiguration) error {
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Pointer || r.IsNil() {
		return nil
	}
	r = r.Elem()
	if r.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.Addr().CanInterface() {
			continue
		}
		validator, ok := f.Addr().Interface().(IServiceConfiguration)
		if !ok {
			continue
		}
		field := r.Type().Field(i)
		err := WrapFieldValidationError(field.Name, mapStructureName(field), validator.Validate())
		if err != nil {
			return err
		}
	}
	return nil
}

func mapStructureName(field reflect.StructField) *string {
	tag, hasTag := field.Tag.Lookup("mapstructure")
	if !hasTag {
		return nil
	}
	name := processMapStructureString(tag)
	if name == "" {
		return nil
	}
	return &name
}

// processMapStructureString returns the key name of a mapstructure tag, without its options.
func processMapStructureString(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if name == "-" {
		return ""
	}
	return name
}
