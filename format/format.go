// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package format renders calendar dates as display strings. The core
// calendar package is purely numeric; every Persian script or Latin
// transliterated name lives here.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iranic/iranic"
)

var monthNamesPersian = [12]string{
	"فروردین", "اردیبهشت", "خرداد",
	"تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر",
	"دی", "بهمن", "اسفند",
}

var monthNamesLatin = [12]string{
	"Farvardin", "Ordibehesht", "Khordad",
	"Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar",
	"Dey", "Bahman", "Esfand",
}

// The week starts on Shanbe (Saturday).
var weekdayNamesPersian = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه",
}

var weekdayNamesLatin = [7]string{
	"Shanbe", "Yekshanbe", "Doshanbe", "Seshanbe", "Chaharshanbe", "Panjshanbe", "Jome",
}

// Style selects how a date is rendered.
type Style int

const (
	// Persian renders "2 بهمن 5025 IC".
	Persian Style = iota
	// Latin renders "2 Bahman 5025 IC".
	Latin
	// Numeric renders "5025-11-02".
	Numeric
	// Compact renders "5025/11/02".
	Compact
	// Full renders the Persian style followed by the Solar Hijri year,
	// "2 بهمن 5025 IC (1404 SH)".
	Full
)

var styleNames = map[Style]string{
	Persian: "persian",
	Latin:   "latin",
	Numeric: "numeric",
	Compact: "compact",
	Full:    "full",
}

func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// ParseStyle parses a style name as used on command lines.
func ParseStyle(val string) (Style, error) {
	for s, n := range styleNames {
		if n == strings.ToLower(val) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("invalid style: %q, expected persian, latin, numeric, compact or full", val)
}

// Config carries the display configuration: the calendar's code and
// name as shown to users and the Calendar value whose offsets the Full
// style uses. It is an immutable value passed explicitly to the
// rendering functions.
type Config struct {
	Code     string
	Name     string
	Calendar iranic.Calendar
}

// Default is the configuration for the Iranian Calendar.
var Default = Config{
	Code:     "IC",
	Name:     "Iranian Calendar",
	Calendar: iranic.Iranic,
}

// Date renders d in the given style.
func Date(d iranic.Date, style Style, cfg Config) string {
	year, month, day := d.Tuple()
	switch style {
	case Persian:
		return fmt.Sprintf("%d %s %d %s", day, monthNamesPersian[month-1], year, cfg.Code)
	case Latin:
		return fmt.Sprintf("%d %s %d %s", day, monthNamesLatin[month-1], year, cfg.Code)
	case Compact:
		return strings.ReplaceAll(d.String(), "-", "/")
	case Full:
		shYear, _, _ := cfg.Calendar.ToSolarHijri(d)
		return fmt.Sprintf("%d %s %d %s (%d SH)", day, monthNamesPersian[month-1], year, cfg.Code, shYear)
	default:
		return d.String()
	}
}

// MonthName returns the name of m in the given style, or its number for
// numeric styles.
func MonthName(m iranic.Month, style Style) string {
	if m < iranic.Farvardin || m > iranic.Esfand {
		return strconv.Itoa(int(m))
	}
	switch style {
	case Latin:
		return monthNamesLatin[m-1]
	case Numeric, Compact:
		return strconv.Itoa(int(m))
	default:
		return monthNamesPersian[m-1]
	}
}

// WeekdayName returns the name of the given day of the week in the
// given style.
func WeekdayName(w time.Weekday, style Style) string {
	// time.Weekday starts on Sunday, the Persian week on Saturday.
	i := (int(w) + 1) % 7
	if style == Latin {
		return weekdayNamesLatin[i]
	}
	return weekdayNamesPersian[i]
}

// ParseMonth parses a month in numeric form or as a prefix of a Latin
// month name, in either case.
func ParseMonth(val string) (iranic.Month, error) {
	if m, err := iranic.ParseNumericMonth(val); err == nil {
		return m, nil
	}
	lc := strings.ToLower(val)
	if lc == "" {
		return 0, fmt.Errorf("invalid month: %q", val)
	}
	for i := range monthNamesLatin {
		if strings.HasPrefix(strings.ToLower(monthNamesLatin[i]), lc) {
			return iranic.Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %q", val)
}

// ParseYMD parses a date of the form 'YYYY-MM-DD', with an optional
// leading minus on the year. It validates the numeric fields only; the
// caller decides which calendar the triple belongs to.
func ParseYMD(val string) (year, month, day int, err error) {
	s := val
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", val)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year: %s", parts[0])
	}
	if negative {
		year = -year
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month: %s", parts[1])
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day: %s", parts[2])
	}
	return year, month, day, nil
}
