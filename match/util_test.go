// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package match_test

import "cloudeng.io/nextdate"

func newCalendarDate(y, m, d int) nextdate.CalendarDate {
	cd, err := nextdate.NewCalendarDate(y, nextdate.Month(m), d)
	if err != nil {
		panic(err)
	}
	return cd
}

// daysBetween returns the number of single day steps from a to b, which
// must not precede a.
func daysBetween(a, b nextdate.CalendarDate) int {
	n := 0
	for cd := a; cd < b; cd = cd.Tomorrow() {
		n++
	}
	return n
}
