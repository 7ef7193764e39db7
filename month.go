// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iranic

import (
	"fmt"
	"strconv"
)

// Month is a month of the calendar year, numbered 1 through 12 starting
// at Farvardin. Rendering month names in Persian script or Latin
// transliteration is left to the format package; the core is purely
// numeric.
type Month int

// Months of the year.
const (
	Farvardin Month = iota + 1
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

func (m Month) String() string {
	return strconv.Itoa(int(m))
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the
// range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMonth, val)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, n)
	}
	return Month(n), nil
}

// Months 1-6 have 31 days, months 7-11 have 30 days and Esfand has 29
// days, or 30 in a leap year. The cumulative day-of-year tables are
// derived from the month lengths at startup.
var (
	daysInMonth     [12]int
	daysInMonthLeap [12]int
	dayOfYear       [12]int
	dayOfYearLeap   [12]int
)

func monthDays(month int, leap bool) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	default:
		if leap {
			return 30
		}
		return 29
	}
}

func init() {
	for i := 0; i < 12; i++ {
		daysInMonth[i] = monthDays(i+1, false)
		daysInMonthLeap[i] = monthDays(i+1, true)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] = dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] = dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// DaysInMonth returns the number of days in the given month of the given
// year. The leap rule is consulted only for Esfand.
func DaysInMonth(year int, month Month) (int, error) {
	if month < Farvardin || month > Esfand {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMonth, month)
	}
	if IsLeap(year) {
		return daysInMonthLeap[month-1], nil
	}
	return daysInMonth[month-1], nil
}

func daysInMonthForYear(year int) []int {
	if IsLeap(year) {
		return daysInMonthLeap[:]
	}
	return daysInMonth[:]
}

func dayOfYearForYear(year int) []int {
	if IsLeap(year) {
		return dayOfYearLeap[:]
	}
	return dayOfYear[:]
}
