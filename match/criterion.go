// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package match

import (
	"fmt"
	"time"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/errors"
	"cloudeng.io/nextdate"
)

// Criterion represents a single date matching rule that can compute its
// next occurrence relative to a reference date.
type Criterion interface {
	// Name returns a human readable name for the criterion.
	Name() string
	// Next returns the earliest date strictly after ref that matches
	// the criterion.
	Next(ref nextdate.CalendarDate) (nextdate.CalendarDate, error)
}

type weekdayCriterion time.Weekday

func (c weekdayCriterion) Name() string {
	return "every " + time.Weekday(c).String()
}

func (c weekdayCriterion) Next(ref nextdate.CalendarDate) (nextdate.CalendarDate, error) {
	return NextWeekday(ref, time.Weekday(c)), nil
}

// Weekly returns a Criterion matching dates that fall on the given day of
// the week.
func Weekly(day time.Weekday) Criterion {
	return weekdayCriterion(day)
}

type dayOfMonthCriterion int

func (c dayOfMonthCriterion) Name() string {
	return fmt.Sprintf("day %d of every month", int(c))
}

func (c dayOfMonthCriterion) Next(ref nextdate.CalendarDate) (nextdate.CalendarDate, error) {
	return NextDayOfMonth(ref, int(c))
}

// Monthly returns a Criterion matching dates with the given day of the
// month.
func Monthly(day int) Criterion {
	return dayOfMonthCriterion(day)
}

type annualCriterion struct {
	month nextdate.Month
	day   int
}

func (c annualCriterion) Name() string {
	return fmt.Sprintf("%s %d every year", c.month, c.day)
}

func (c annualCriterion) Next(ref nextdate.CalendarDate) (nextdate.CalendarDate, error) {
	return NextAnnual(ref, c.month, c.day)
}

// Annually returns a Criterion matching dates with the given month and day.
func Annually(month nextdate.Month, day int) Criterion {
	return annualCriterion{month: month, day: day}
}

// Earliest returns the single next occurrence across all of the supplied
// criteria, together with the criterion that produced it. When several
// criteria share the earliest date any one of them may be returned. If any
// criterion is invalid the errors for all invalid criteria are returned
// together and each unwraps to ErrInvalidArgument.
func Earliest(ref nextdate.CalendarDate, criteria ...Criterion) (nextdate.CalendarDate, Criterion, error) {
	if len(criteria) == 0 {
		return 0, nil, fmt.Errorf("%w: at least one criterion is required", nextdate.ErrInvalidArgument)
	}
	h := heap.NewMin(heap.WithSliceCap[int64, Criterion](len(criteria)))
	errs := errors.M{}
	for _, c := range criteria {
		next, err := c.Next(ref)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", c.Name(), err))
			continue
		}
		h.Push(int64(next), c)
	}
	if err := errs.Err(); err != nil {
		return 0, nil, err
	}
	when, c := h.Pop()
	return nextdate.CalendarDate(when), c, nil
}
