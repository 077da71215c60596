/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package lessons

import (
	"fmt"

	"github.com/ARM-software/golang-fp/collection"
	"github.com/ARM-software/golang-fp/commonerrors"
	"github.com/ARM-software/golang-fp/logs"
)

type Lesson string

const (
	LessonFold   Lesson = "fold"
	LessonMap    Lesson = "map"
	LessonSort   Lesson = "sort"
	LessonLength Lesson = "length"
)

// AllLessons lists the lessons in the order they are run by default.
var AllLessons = []Lesson{LessonFold, LessonMap, LessonSort, LessonLength}

type FoldResults struct {
	Concatenation string
	Sum           int
}

type MapResults struct {
	UpdatedMNumbers []string
	Doubled         []int
	Screamed        []string
}

type SortResults struct {
	Sorted []int
}

type LengthResults struct {
	First     string
	Rest      []string
	Emptiness string
	Lengths   LengthReport
}

// Runner runs lessons on the sequences of a configuration and reports results to loggers.
type Runner struct {
	cfg     *Configuration
	loggers logs.Loggers
}

// NewRunner returns a runner once both the configuration and the loggers have been checked.
func NewRunner(cfg *Configuration, loggers logs.Loggers) (runner *Runner, err error) {
	if cfg == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration")
		return
	}
	if loggers == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	err = loggers.Check()
	if err != nil {
		return
	}
	runner = &Runner{cfg: cfg, loggers: loggers}
	return
}

func (r *Runner) tracer() logs.Loggers {
	if r.cfg.Trace {
		return r.loggers
	}
	return nil
}

func (r *Runner) report(name string, value any) {
	r.loggers.Log(fmt.Sprintf("%v=%v", name, value))
}

func (r *Runner) start(lesson Lesson) error {
	return r.loggers.SetLogSource(string(lesson))
}

// Fold concatenates the letters and sums the numbers.
func (r *Runner) Fold() (results FoldResults, err error) {
	err = r.start(LessonFold)
	if err != nil {
		return
	}
	results.Concatenation = ConcatenateLetters(r.tracer(), r.cfg.Letters)
	r.report("result", results.Concatenation)
	results.Sum = SumNumbers(r.tracer(), r.cfg.Numbers)
	r.report("result", results.Sum)
	return
}

// Map upgrades the M numbers, doubles the numbers and screams the letters.
func (r *Runner) Map() (results MapResults, err error) {
	err = r.start(LessonMap)
	if err != nil {
		return
	}
	results.UpdatedMNumbers = UpgradeMNumbers(r.cfg.MNumbers)
	r.report("updated_m_numbers", results.UpdatedMNumbers)
	results.Doubled = collection.Map(r.cfg.Doubles, Double)
	r.report("doubled", results.Doubled)
	results.Screamed = collection.Map(r.cfg.Scream, Upper)
	r.report("screamed", results.Screamed)
	return
}

// Sort sorts the unsorted numbers.
func (r *Runner) Sort() (results SortResults, err error) {
	err = r.start(LessonSort)
	if err != nil {
		return
	}
	results.Sorted = SortNumbers(r.cfg.Unsorted)
	r.report("result", results.Sorted)
	return
}

// Length splits the seasons and measures them with every length variant.
func (r *Runner) Length() (results LengthResults, err error) {
	err = r.start(LessonLength)
	if err != nil {
		return
	}
	first, rest, subErr := SplitSeasons(r.cfg.Seasons)
	if subErr == nil {
		results.First = first
		results.Rest = rest
		r.report("first", first)
		r.report("rest", rest)
	}
	results.Emptiness = DescribeEmptiness(r.cfg.Seasons)
	r.loggers.Log(results.Emptiness)
	results.Lengths = MeasureLengths(r.cfg.Seasons)
	r.report("length", results.Lengths.Iterative)
	r.report("recursive_length", results.Lengths.Recursive)
	r.report("recursive_length_of_nothing", results.Lengths.RecursiveOfNothing)
	r.report("tail_recursive_length", results.Lengths.TailRecursive)
	r.report("tail_recursive_length_of_nothing", results.Lengths.AccumulatingNothing)
	if !results.Lengths.Consistent() {
		err = commonerrors.Newf(commonerrors.ErrUnexpected, "length variants disagree: %+v", results.Lengths)
	}
	return
}

// Run runs the lessons in the order given, or all of them if none is given.
// It stops at the first lesson failing.
func (r *Runner) Run(lessons ...Lesson) (err error) {
	if len(lessons) == 0 {
		lessons = AllLessons
	}
	for i := range lessons {
		switch lessons[i] {
		case LessonFold:
			_, err = r.Fold()
		case LessonMap:
			_, err = r.Map()
		case LessonSort:
			_, err = r.Sort()
		case LessonLength:
			_, err = r.Length()
		default:
			err = commonerrors.Newf(commonerrors.ErrUnsupported, "unknown lesson %q", lessons[i])
		}
		if err != nil {
			r.loggers.LogError(err)
			return
		}
	}
	return
}
