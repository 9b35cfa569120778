// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nextdate_test

import "cloudeng.io/nextdate"

func newCalendarDate(y, m, d int) nextdate.CalendarDate {
	cd, err := nextdate.NewCalendarDate(y, nextdate.Month(m), d)
	if err != nil {
		panic(err)
	}
	return cd
}
