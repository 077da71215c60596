/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package lessons

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-fp/collection"
	"github.com/ARM-software/golang-fp/config"
)

const (
	LogFormatText    = "text"
	LogFormatJSON    = "json"
	LogFormatHclog   = "hclog"
	LogFormatLogrus  = "logrus"
	LogFormatZerolog = "zerolog"

	// MaxRecursiveLength bounds the sequences measured recursively as the call depth grows with their length.
	MaxRecursiveLength = 10000
)

var mNumberPattern = regexp.MustCompile(`^[0-9]+$`)

// Configuration defines the sequences the lessons run on and how results are reported.
type Configuration struct {
	Letters   []string `mapstructure:"letters"`
	Numbers   []int    `mapstructure:"numbers"`
	MNumbers  []string `mapstructure:"m_numbers"`
	Doubles   []int    `mapstructure:"doubles"`
	Scream    []string `mapstructure:"scream"`
	Unsorted  []int    `mapstructure:"unsorted"`
	Seasons   []string `mapstructure:"seasons"`
	Trace     bool     `mapstructure:"trace"`
	LogFormat string   `mapstructure:"log_format"`
}

func (cfg *Configuration) Validate() error {
	validation.ErrorTag = "mapstructure"
	return config.WrapValidationError(validation.ValidateStruct(cfg,
		validation.Field(&cfg.MNumbers, validation.Each(validation.Required, validation.Match(mNumberPattern))),
		validation.Field(&cfg.Seasons, validation.Length(0, MaxRecursiveLength)),
		validation.Field(&cfg.LogFormat, validation.Required, validation.In(LogFormatText, LogFormatJSON, LogFormatHclog, LogFormatLogrus, LogFormatZerolog)),
	))
}

// DefaultConfiguration returns the sequences the lessons run on unless overridden.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Letters:   []string{"a", "b", "b", "a"},
		Numbers:   collection.Range(1, 6, nil),
		MNumbers:  []string{"020982", "041485", "091749"},
		Doubles:   []int{2, 4, 6},
		Scream:    []string{"s", "c", "r", "e", "a", "m"},
		Unsorted:  []int{8, 4, 1, 3, 7},
		Seasons:   []string{"winter", "spring", "summer", "fall"},
		Trace:     false,
		LogFormat: LogFormatText,
	}
}
