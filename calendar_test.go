// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nextdate_test

import (
	"testing"

	"cloudeng.io/nextdate"
)

func TestIsLeap(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2023, false},
		{2024, true},
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
		{1996, true},
		{0, true},
		{-1, false},
		{-4, true},
	} {
		if got, want := nextdate.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	nonLeap := []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	leap := []int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	for i := 0; i < 12; i++ {
		m := nextdate.Month(i + 1)
		if got, want := nextdate.DaysInMonth(2023, m), nonLeap[i]; got != want {
			t.Errorf("%v: got %v, want %v", m, got, want)
		}
		if got, want := nextdate.DaysInMonth(2024, m), leap[i]; got != want {
			t.Errorf("%v: got %v, want %v", m, got, want)
		}
		if got, want := nextdate.MaxDaysInMonth(m), leap[i]; got != want {
			t.Errorf("%v: got %v, want %v", m, got, want)
		}
	}
	if got, want := nextdate.DaysInFeb(2024), 29; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := nextdate.DaysInFeb(2100), 28; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMonthString(t *testing.T) {
	if got, want := nextdate.Month(2).String(), "February"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
