// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package reftable generates static reference tables by iterating the
// calendar conversions over a range of years. The tables are downstream
// artifacts of the core conversion functions; nothing in the core reads
// them back.
package reftable

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"cloudeng.io/errors"

	"github.com/iranic/iranic"
)

// Row is a single day's entry in a reference table.
type Row struct {
	Date       string `json:"date"`
	Ordinal    int    `json:"ordinal"`
	Leap       bool   `json:"leap"`
	Gregorian  string `json:"gregorian"`
	Weekday    string `json:"weekday"`
	SolarHijri string `json:"solar_hijri"`
}

// Options control table generation.
type Options struct {
	Calendar iranic.Calendar
	FromYear int
	ToYear   int
	// NowruzOnly restricts the table to 1 Farvardin of each year.
	NowruzOnly bool
}

// Build returns one row per day (or per Nowruz, see Options.NowruzOnly)
// for every year in [FromYear, ToYear]. Year zero is skipped. Errors for
// individual years are collected and returned together once the
// remaining years have been generated.
func Build(opts Options) ([]Row, error) {
	if opts.FromYear > opts.ToYear {
		return nil, fmt.Errorf("invalid year range: %d > %d", opts.FromYear, opts.ToYear)
	}
	from, to := opts.FromYear, opts.ToYear
	if from == 0 {
		from = 1
	}
	if to == 0 {
		to = -1
	}
	if from > to {
		return nil, fmt.Errorf("invalid year range: only year zero, which does not exist")
	}
	first, err := iranic.New(from, iranic.Farvardin, 1)
	if err != nil {
		return nil, err
	}
	last, err := iranic.DateFromDay(to, iranic.DaysInYear(to))
	if err != nil {
		return nil, err
	}
	span := iranic.NewRange(first, last)
	if opts.NowruzOnly {
		rows := make([]Row, 0, span.NumYears())
		errs := errors.M{}
		for year := range span.Years() {
			d, err := iranic.New(year, iranic.Farvardin, 1)
			if err != nil {
				errs.Append(err)
				continue
			}
			rows = append(rows, newRow(opts.Calendar, d))
		}
		return rows, errs.Err()
	}
	rows := make([]Row, 0, span.NumDays())
	for d := range span.Dates() {
		rows = append(rows, newRow(opts.Calendar, d))
	}
	return rows, nil
}

func newRow(cal iranic.Calendar, d iranic.Date) Row {
	g := cal.ToGregorian(d)
	shYear, shMonth, shDay := cal.ToSolarHijri(d)
	return Row{
		Date:       d.String(),
		Ordinal:    d.DayOfYear(),
		Leap:       iranic.IsLeap(d.Year()),
		Gregorian:  g.String(),
		Weekday:    g.Weekday().String(),
		SolarHijri: fmt.Sprintf("%d-%02d-%02d", shYear, int(shMonth), shDay),
	}
}

// WriteCSV writes rows as CSV with a header record.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	errs := errors.M{}
	errs.Append(cw.Write([]string{"date", "ordinal", "leap", "gregorian", "weekday", "solar_hijri"}))
	for _, r := range rows {
		errs.Append(cw.Write([]string{
			r.Date,
			strconv.Itoa(r.Ordinal),
			strconv.FormatBool(r.Leap),
			r.Gregorian,
			r.Weekday,
			r.SolarHijri,
		}))
	}
	cw.Flush()
	errs.Append(cw.Error())
	return errs.Err()
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
