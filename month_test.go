// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iranic_test

import (
	"errors"
	"testing"

	"github.com/iranic/iranic"
)

func TestDaysInMonth(t *testing.T) {
	for m := 1; m <= 6; m++ {
		for _, year := range []int{5025, 5026, -1} {
			got, err := iranic.DaysInMonth(year, iranic.Month(m))
			if err != nil {
				t.Fatalf("%v/%v: %v", year, m, err)
			}
			if want := 31; got != want {
				t.Errorf("%v/%v: got %v, want %v", year, m, got, want)
			}
		}
	}
	for m := 7; m <= 11; m++ {
		got, err := iranic.DaysInMonth(5026, iranic.Month(m))
		if err != nil {
			t.Fatalf("%v: %v", m, err)
		}
		if want := 30; got != want {
			t.Errorf("%v: got %v, want %v", m, got, want)
		}
	}
	// Esfand has 30 days only in a leap year.
	for _, tc := range []struct {
		year int
		days int
	}{
		{5025, 30},
		{5026, 29},
		{1, 30},
		{2, 29},
	} {
		got, err := iranic.DaysInMonth(tc.year, iranic.Esfand)
		if err != nil {
			t.Fatalf("%v: %v", tc.year, err)
		}
		if want := tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestDaysInMonthErrors(t *testing.T) {
	for _, m := range []int{-1, 0, 13, 99} {
		if _, err := iranic.DaysInMonth(5025, iranic.Month(m)); !errors.Is(err, iranic.ErrInvalidMonth) {
			t.Errorf("%v: got %v, want %v", m, err, iranic.ErrInvalidMonth)
		}
	}
}

func TestMonthLengthsSumToYear(t *testing.T) {
	for _, year := range []int{5025, 5026, 1, -1} {
		sum := 0
		for m := iranic.Farvardin; m <= iranic.Esfand; m++ {
			n, err := iranic.DaysInMonth(year, m)
			if err != nil {
				t.Fatalf("%v/%v: %v", year, m, err)
			}
			sum += n
		}
		if got, want := sum, iranic.DaysInYear(year); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}
}

func TestParseNumericMonth(t *testing.T) {
	for _, tc := range []struct {
		val   string
		month iranic.Month
	}{
		{"1", iranic.Farvardin},
		{"01", iranic.Farvardin},
		{"11", iranic.Bahman},
		{"12", iranic.Esfand},
	} {
		got, err := iranic.ParseNumericMonth(tc.val)
		if err != nil {
			t.Fatalf("%v: %v", tc.val, err)
		}
		if want := tc.month; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, val := range []string{"", "0", "13", "x", "-2"} {
		if _, err := iranic.ParseNumericMonth(val); !errors.Is(err, iranic.ErrInvalidMonth) {
			t.Errorf("%q: got %v, want %v", val, err, iranic.ErrInvalidMonth)
		}
	}
}
