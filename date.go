// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package iranic implements a solar calendar that shares the structure of
// the Solar Hijri (Persian) calendar but counts years from an epoch of
// 3000 BCE. It provides validated dates, the 33 year leap cycle and
// conversions to and from the proleptic Gregorian and Solar Hijri
// calendars. All values are immutable and all operations are pure and
// safe for concurrent use.
package iranic

import "fmt"

// Date is a validated calendar date. The zero value is not a valid date;
// use New or one of the conversion functions to obtain one. Years may be
// negative for dates before the epoch; there is no year zero.
type Date struct {
	year  int
	month Month
	day   int
}

// New returns the Date for the given year, month and day. It returns
// ErrInvalidDate if year is zero, month is outside Farvardin to Esfand or
// day is outside the month for that year. Invalid triples are never
// normalized.
func New(year int, month Month, day int) (Date, error) {
	if !IsValid(year, month, day) {
		return Date{}, fmt.Errorf("%w: %d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// MustNew is like New but panics on an invalid date. Its use is intended
// for statically known dates.
func MustNew(year int, month Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// IsValid reports whether the year, month, day triple forms a valid date
// without constructing it.
func IsValid(year int, month Month, day int) bool {
	if year == 0 {
		return false
	}
	n, err := DaysInMonth(year, month)
	if err != nil {
		return false
	}
	return day >= 1 && day <= n
}

// Year returns the year, never zero.
func (d Date) Year() int { return d.year }

// Month returns the month, 1 through 12.
func (d Date) Month() Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Tuple returns the year, month and day components.
func (d Date) Tuple() (int, Month, int) {
	return d.year, d.month, d.day
}

func (d Date) String() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, int(d.month), d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Compare returns -1 if d is before e, +1 if d is after e and 0 if they
// are equal. The ordering is lexicographic on (year, month, day), which
// matches chronological order across the negative to positive year
// boundary since there is no year zero.
func (d Date) Compare(e Date) int {
	switch {
	case d.year != e.year:
		return sign(d.year - e.year)
	case d.month != e.month:
		return sign(int(d.month) - int(e.month))
	default:
		return sign(d.day - e.day)
	}
}

// Before returns true if d is chronologically before e.
func (d Date) Before(e Date) bool { return d.Compare(e) < 0 }

// After returns true if d is chronologically after e.
func (d Date) After(e Date) bool { return d.Compare(e) > 0 }

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// DayOfYear returns the ordinal day of the year for d, 1 to 365, or 1 to
// 366 in a leap year.
func (d Date) DayOfYear() int {
	return dayOfYearForYear(d.year)[d.month-1] + d.day
}

// DateFromDay returns the Date with the given ordinal day of the year.
// It returns ErrOrdinalOutOfRange if day is outside 1 to DaysInYear(year)
// and ErrInvalidDate for year zero.
func DateFromDay(year, day int) (Date, error) {
	if year == 0 {
		return Date{}, fmt.Errorf("%w: year zero does not exist", ErrInvalidDate)
	}
	if day < 1 || day > DaysInYear(year) {
		return Date{}, fmt.Errorf("%w: day %d of year %d", ErrOrdinalOutOfRange, day, year)
	}
	dm := daysInMonthForYear(year)
	for m := 0; m < 12; m++ {
		if day <= dm[m] {
			return Date{year: year, month: Month(m + 1), day: day}, nil
		}
		day -= dm[m]
	}
	panic("unreachable")
}

// nextYear and prevYear step across the missing year zero.
func nextYear(year int) int {
	if year == -1 {
		return 1
	}
	return year + 1
}

func prevYear(year int) int {
	if year == 1 {
		return -1
	}
	return year - 1
}

// Tomorrow returns the date of the next day, moving into the following
// year from the last day of Esfand. Year -1 is followed by year 1.
func (d Date) Tomorrow() Date {
	if n := daysInMonthForYear(d.year)[d.month-1]; d.day < n {
		d.day++
		return d
	}
	if d.month < Esfand {
		d.month++
		d.day = 1
		return d
	}
	return Date{year: nextYear(d.year), month: Farvardin, day: 1}
}

// Yesterday returns the date of the previous day. Year 1 is preceded by
// year -1.
func (d Date) Yesterday() Date {
	if d.day > 1 {
		d.day--
		return d
	}
	if d.month > Farvardin {
		d.month--
		d.day = daysInMonthForYear(d.year)[d.month-1]
		return d
	}
	y := prevYear(d.year)
	return Date{year: y, month: Esfand, day: monthDays(12, IsLeap(y))}
}

// YearsBetween returns the number of complete calendar years from a to
// b, negative if b is before a.
func YearsBetween(a, b Date) int {
	if b.Before(a) {
		return -YearsBetween(b, a)
	}
	years := b.year - a.year
	if a.year < 0 && b.year > 0 {
		years--
	}
	if b.month < a.month || (b.month == a.month && b.day < a.day) {
		years--
	}
	return years
}
