// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nextdate

import (
	"fmt"

	"cloudeng.io/errors"
)

// CalendarDate represents a date with a year, month and day encoded as
// year<<16|month<<8|day. The year is signed so that dates before year zero
// remain representable. CalendarDate values are immutable and totally
// ordered, later dates compare greater using the native comparison
// operators. Every CalendarDate obtained from NewCalendarDate, Tomorrow or
// Yesterday is valid, there is no representable 'month 13' or 'day 32'.
type CalendarDate int64

// NewCalendarDate returns the CalendarDate for the given year, month and
// day. The month must be in the range 1-12 and the day in the range
// 1-DaysInMonth(year, month), so Feb-29 is accepted only for leap years.
// Invalid values result in an error that unwraps to ErrInvalidArgument,
// they are never normalized or clamped.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	errs := errors.M{}
	if month < 1 || month > 12 {
		errs.Append(invalidArgumentError("month must be 1-12: %d", month))
	}
	if day < 1 || day > 31 {
		errs.Append(invalidArgumentError("day must be 1-31: %d", day))
	}
	if err := errs.Err(); err != nil {
		return 0, err
	}
	if day > DaysInMonth(year, month) {
		return 0, invalidArgumentError("invalid day for %s %04d: %d", month, year, day)
	}
	return newCalendarDate(year, month, day), nil
}

func newCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(int64(year)<<16 | int64(month)<<8 | int64(day))
}

// Year returns the year.
func (cd CalendarDate) Year() int {
	return int(cd >> 16)
}

// Month returns the month.
func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

// Day returns the day of the month.
func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", cd.Month(), cd.Day(), cd.Year())
}

// Tomorrow returns the date of the next day, rolling over month and year
// boundaries. 12/31 wraps to 1/1 of the following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 12 && day == 31 {
		return newCalendarDate(year+1, 1, 1)
	}
	if day >= DaysInMonth(year, month) {
		return newCalendarDate(year, month+1, 1)
	}
	return newCalendarDate(year, month, day+1)
}

// Yesterday returns the date of the previous day, rolling over month and
// year boundaries. 1/1 wraps to 12/31 of the preceding year.
func (cd CalendarDate) Yesterday() CalendarDate {
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 1 && day == 1 {
		return newCalendarDate(year-1, 12, 31)
	}
	if day <= 1 {
		return newCalendarDate(year, month-1, DaysInMonth(year, month-1))
	}
	return newCalendarDate(year, month, day-1)
}
