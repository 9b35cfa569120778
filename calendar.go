// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package nextdate provides support for computing the next occurrence of a
// calendar date matching a weekday, day-of-month or month/day criterion.
// All dates are proleptic Gregorian, that is, the Gregorian leap year and
// month length rules extended indefinitely backwards and forwards.
package nextdate

import "time"

// Month as an int.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

var (
	daysInMonth     []int // days in each month of a non-leap year
	daysInMonthLeap []int // days in each month of a leap year
)

func daysInMonthForYearInit(year, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
}

// DaysInMonth returns the number of days in the given month for the given
// year. The month must be in the range 1-12.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// MaxDaysInMonth returns the greatest number of days the given month can
// have in any year, ie. 29 for February. The month must be in the range
// 1-12.
func MaxDaysInMonth(month Month) int {
	return daysInMonthLeap[month-1]
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}
