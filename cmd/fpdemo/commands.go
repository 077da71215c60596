/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-fp/commonerrors"
	"github.com/ARM-software/golang-fp/config"
	"github.com/ARM-software/golang-fp/lessons"
)

const (
	appName      = "fpdemo"
	envVarPrefix = appName
)

// flagEnvVars maps persistent flags to the environment variables they are bound to.
var flagEnvVars = map[string]string{
	"letters":    "FPDEMO_LETTERS",
	"numbers":    "FPDEMO_NUMBERS",
	"unsorted":   "FPDEMO_UNSORTED",
	"seasons":    "FPDEMO_SEASONS",
	"trace":      "FPDEMO_TRACE",
	"log-format": "FPDEMO_LOG_FORMAT",
}

func newRootCommand(factory loggersFactory) *cobra.Command {
	session := viper.New()
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Run functional programming lessons",
		Long: `Fold, map, sort and measure small sequences and log every result.

Sequences default to the ones of the lessons and can be overridden using flags,
FPDEMO_* environment variables or a .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			for name, envVar := range flagEnvVars {
				err = config.BindFlagToEnv(session, envVarPrefix, envVar, cmd.Flags().Lookup(name))
				if err != nil {
					return
				}
			}
			return
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLessons(cmd, session, factory)
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringSlice("letters", nil, "letters to concatenate")
	flags.IntSlice("numbers", nil, "numbers to sum")
	flags.IntSlice("unsorted", nil, "numbers to sort")
	flags.StringSlice("seasons", nil, "sequence to measure")
	flags.Bool("trace", false, "log every step of folds")
	flags.String("log-format", "", "log format: text, json, hclog, logrus or zerolog")

	rootCmd.AddCommand(
		newLessonCommand(session, factory, lessons.LessonFold, "Concatenate the letters and sum the numbers"),
		newLessonCommand(session, factory, lessons.LessonMap, "Upgrade M numbers, double numbers and scream letters"),
		newLessonCommand(session, factory, lessons.LessonSort, "Sort the unsorted numbers"),
		newLessonCommand(session, factory, lessons.LessonLength, "Split and measure the seasons"),
		&cobra.Command{
			Use:   "all",
			Short: "Run every lesson",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runLessons(cmd, session, factory)
			},
		},
	)
	return rootCmd
}

func newLessonCommand(session *viper.Viper, factory loggersFactory, lesson lessons.Lesson, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(lesson),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLessons(cmd, session, factory, lesson)
		},
	}
}

func runLessons(cmd *cobra.Command, session *viper.Viper, factory loggersFactory, toRun ...lessons.Lesson) (err error) {
	cfg := &lessons.Configuration{}
	err = config.LoadFromViper(session, envVarPrefix, cfg, lessons.DefaultConfiguration())
	if err != nil {
		return
	}
	loggers, err := factory(cmd.OutOrStdout(), cfg.LogFormat)
	if err != nil {
		return
	}
	defer func() {
		closeErr := loggers.Close()
		if err == nil && closeErr != nil {
			err = commonerrors.WrapError(commonerrors.ErrUnexpected, closeErr, "could not close loggers")
		}
	}()
	runner, err := lessons.NewRunner(cfg, loggers)
	if err != nil {
		return
	}
	err = runner.Run(toRun...)
	return
}
