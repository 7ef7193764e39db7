// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iranic

import (
	"fmt"
	"time"
)

// GregorianDate is a date in the proleptic Gregorian calendar with
// astronomical year numbering: year 0 is 1 BCE, year -1 is 2 BCE and so
// on. The epoch of this calendar, 3000 BCE, is Gregorian year -2999.
type GregorianDate struct {
	Year  int
	Month time.Month
	Day   int
}

func (g GregorianDate) String() string {
	if g.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -g.Year, int(g.Month), g.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", g.Year, int(g.Month), g.Day)
}

// IsValid reports whether g is a structurally valid proleptic Gregorian
// date.
func (g GregorianDate) IsValid() bool {
	if g.Month < time.January || g.Month > time.December {
		return false
	}
	return g.Day >= 1 && g.Day <= gregorianDaysInMonth(g.Year, g.Month)
}

// Weekday returns the day of the week that g falls on.
func (g GregorianDate) Weekday() time.Weekday {
	return time.Weekday(floorMod(gregorianSerial(g.Year, g.Month, g.Day)+4, 7))
}

// IsGregorianLeap returns true if the given proleptic Gregorian year is
// a leap year: divisible by 4, except centuries unless divisible by 400.
func IsGregorianLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

func gregorianDaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsGregorianLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// gregorianSerial returns the serial day number of the given proleptic
// Gregorian date: the count of days since 1970-01-01. It is the standard
// days-from-civil calculation over 400 year eras, written with floored
// division so that it holds for all years, positive and negative.
func gregorianSerial(year int, month time.Month, day int) int {
	y := year
	if month <= time.February {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	mp := int(month) - 3
	if mp < 0 {
		mp += 12
	}
	doy := (153*mp+2)/5 + day - 1      // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy // [0, 146096]
	return era*146097 + doe - 719468
}

// gregorianFromSerial is the inverse of gregorianSerial.
func gregorianFromSerial(serial int) GregorianDate {
	z := serial + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if mp >= 10 {
		month = mp - 9
	}
	if month <= 2 {
		y++
	}
	return GregorianDate{Year: y, Month: time.Month(month), Day: day}
}

// Calendar binds the epoch constants relating this calendar to the
// proleptic Gregorian and Solar Hijri calendars. It is an immutable
// configuration value: conversions are methods on a Calendar rather than
// reads of package level state, so the offsets are part of each
// component's explicit contract.
type Calendar struct {
	// GregorianYearOffset is added to a Gregorian year to obtain the
	// calendar year for dates on or after Nowruz of that year.
	GregorianYearOffset int
	// SolarHijriYearOffset is added to a Solar Hijri year to obtain the
	// calendar year.
	SolarHijriYearOffset int
	// NowruzMonth and NowruzDay fix the Gregorian date of Nowruz. The
	// true date is set by the spring equinox and varies between March 19
	// and March 22; the fixed approximation is a documented limitation.
	NowruzMonth time.Month
	NowruzDay   int
}

// Iranic is the calendar with its epoch at 3000 BCE.
var Iranic = Calendar{
	GregorianYearOffset:  3000,
	SolarHijriYearOffset: 3621,
	NowruzMonth:          time.March,
	NowruzDay:            21,
}

// nowruzYear returns the proleptic Gregorian year containing Nowruz of
// the given calendar year. The calendar has no year zero while the
// astronomical Gregorian numbering does, so negative years shift by one.
func (c Calendar) nowruzYear(year int) int {
	if year < 0 {
		return year - c.GregorianYearOffset + 1
	}
	return year - c.GregorianYearOffset
}

func (c Calendar) nowruzSerial(year int) int {
	return gregorianSerial(c.nowruzYear(year), c.NowruzMonth, c.NowruzDay)
}

// NowruzGregorian returns the Gregorian date of Nowruz (1 Farvardin) of
// the given calendar year.
func (c Calendar) NowruzGregorian(year int) (GregorianDate, error) {
	if year == 0 {
		return GregorianDate{}, fmt.Errorf("%w: year zero does not exist", ErrInvalidDate)
	}
	return GregorianDate{Year: c.nowruzYear(year), Month: c.NowruzMonth, Day: c.NowruzDay}, nil
}

// ToGregorian converts d to the proleptic Gregorian calendar. The
// conversion goes through the serial day number: Nowruz of d's year plus
// d's ordinal day of the year.
func (c Calendar) ToGregorian(d Date) GregorianDate {
	return gregorianFromSerial(c.nowruzSerial(d.year) + d.DayOfYear() - 1)
}

// FromGregorian converts a proleptic Gregorian date to this calendar. It
// returns ErrInvalidDate only if g itself is not a valid Gregorian date.
// The candidate year g.Year+GregorianYearOffset is corrected by which
// side of Nowruz the date falls, re-derived through the serial day
// number. When a Gregorian leap day stretches a common calendar year,
// the final pre-Nowruz day carries into the following year rather than
// failing.
func (c Calendar) FromGregorian(g GregorianDate) (Date, error) {
	if !g.IsValid() {
		return Date{}, fmt.Errorf("%w: %v is not a proleptic Gregorian date", ErrInvalidDate, g)
	}
	s := gregorianSerial(g.Year, g.Month, g.Day)
	year := g.Year + c.GregorianYearOffset
	if year <= 0 {
		year--
	}
	if s < c.nowruzSerial(year) {
		year = prevYear(year)
	}
	ord := s - c.nowruzSerial(year) + 1
	if n := DaysInYear(year); ord > n {
		year = nextYear(year)
		ord -= n
	}
	return DateFromDay(year, ord)
}

// DaysBetween returns the number of days from a to b, negative if b is
// before a. The count is taken over the serial day numbers of the
// converted Gregorian dates and is therefore consistent with ToGregorian
// at year boundaries.
func (c Calendar) DaysBetween(a, b Date) int {
	sa := c.nowruzSerial(a.year) + a.DayOfYear() - 1
	sb := c.nowruzSerial(b.year) + b.DayOfYear() - 1
	return sb - sa
}
