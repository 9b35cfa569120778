// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nextdate

import "time"

// civilDays returns the number of days between the date and Jan-01-1970,
// negative for earlier dates, using the proleptic Gregorian calendar.
// The computation is exact for all representable years.
func (cd CalendarDate) civilDays() int64 {
	y, m, d := int64(cd.Year()), int64(cd.Month()), int64(cd.Day())
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400 // [0, 399]
	mp := m + 9
	if m > 2 {
		mp = m - 3
	}
	doy := (153*mp+2)/5 + d - 1            // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// Weekday returns the day of the week that the date falls on. The weekday
// is always derived from the date, it is not stored.
func (cd CalendarDate) Weekday() time.Weekday {
	// Jan-01-1970 was a Thursday.
	wd := (cd.civilDays() + 4) % 7
	if wd < 0 {
		wd += 7
	}
	return time.Weekday(wd)
}
