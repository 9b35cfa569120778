// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package match computes the next occurrence of a calendar date matching
// one of three criteria relative to a reference date: a day of the week, a
// day of the month, or an annually recurring month/day pair. Results are
// always strictly after the reference date, a reference date that already
// matches is never returned. All functions are pure and safe for
// concurrent use.
package match

import (
	"fmt"
	"time"

	"cloudeng.io/nextdate"
)

// NextWeekday returns the earliest date strictly after ref that falls on
// the given day of the week. The result is always 1 to 7 days after ref,
// so a reference date already on the requested weekday returns the same
// weekday of the following week.
func NextWeekday(ref nextdate.CalendarDate, day time.Weekday) nextdate.CalendarDate {
	offset := (int(day)-int(ref.Weekday())+6)%7 + 1
	next := ref
	for i := 0; i < offset; i++ {
		next = next.Tomorrow()
	}
	return next
}

// NextDayOfMonth returns the earliest date strictly after ref whose day of
// the month is day. The day must be in the range 1-31. A day equal to
// ref's is found in a later month, never in the current one. Months too
// short for the requested day are skipped, eg. the next 31st after
// Jan-31-2023 is Mar-31-2023.
func NextDayOfMonth(ref nextdate.CalendarDate, day int) (nextdate.CalendarDate, error) {
	if day < 1 || day > 31 {
		return 0, fmt.Errorf("%w: day of month must be 1-31: %d", nextdate.ErrInvalidArgument, day)
	}
	year, month := ref.Year(), ref.Month()
	if day > ref.Day() && day <= nextdate.DaysInMonth(year, month) {
		return nextdate.NewCalendarDate(year, month, day)
	}
	// Every month has a 28th, day 29 exists in at least one month of every
	// year and days 30 and 31 in several, so 12 months always suffice.
	for i := 0; i < 12; i++ {
		month++
		if month > 12 {
			month = 1
			year++
		}
		if day <= nextdate.DaysInMonth(year, month) {
			return nextdate.NewCalendarDate(year, month, day)
		}
	}
	panic("unreachable")
}

// NextAnnual returns the earliest date strictly after ref with the given
// month and day. The month must be in the range 1-12 and the day must
// exist in that month in at least some year, so Feb-29 is a valid target.
// When the target is Feb-29 and the occurrence in the current or following
// year does not exist, the date in the next leap year is returned.
func NextAnnual(ref nextdate.CalendarDate, month nextdate.Month, day int) (nextdate.CalendarDate, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month must be 1-12: %d", nextdate.ErrInvalidArgument, month)
	}
	if day < 1 || day > nextdate.MaxDaysInMonth(month) {
		return 0, fmt.Errorf("%w: day must be 1-%d for %s: %d", nextdate.ErrInvalidArgument, nextdate.MaxDaysInMonth(month), month, day)
	}
	if cd, err := nextdate.NewCalendarDate(ref.Year(), month, day); err == nil && cd > ref {
		return cd, nil
	}
	// Only a Feb-29 target can skip years and the next leap year is at
	// most 8 years away, including across the non-leap century years.
	for i := 1; i <= 8; i++ {
		if cd, err := nextdate.NewCalendarDate(ref.Year()+i, month, day); err == nil {
			return cd, nil
		}
	}
	panic("unreachable")
}
