// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/iranic/iranic"
	"github.com/iranic/iranic/format"
)

func convert(_ context.Context, values any, args []string) error {
	fl := values.(*convertFlags)
	cfg, style, err := displayConfig(fl.Config, fl.Style)
	if err != nil {
		return err
	}
	year, month, day, err := format.ParseYMD(args[0])
	if err != nil {
		return err
	}
	source := fl.From
	if source == "auto" {
		// IC years lie well above the Gregorian offset for any
		// modern date; mirror that heuristic for the common case.
		source = "gregorian"
		if year >= cfg.Calendar.GregorianYearOffset {
			source = "ic"
		}
	}
	var d iranic.Date
	switch source {
	case "ic":
		d, err = iranic.New(year, iranic.Month(month), day)
	case "gregorian":
		d, err = cfg.Calendar.FromGregorian(iranic.GregorianDate{Year: year, Month: time.Month(month), Day: day})
	case "sh":
		d, err = cfg.Calendar.FromSolarHijri(year, iranic.Month(month), day)
	default:
		return fmt.Errorf("unknown source calendar %q: expected auto, ic, gregorian or sh", fl.From)
	}
	if err != nil {
		return err
	}
	printDate(cfg, style, d, cfg.Calendar.ToGregorian(d))
	return nil
}

func leap(_ context.Context, _ any, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil || year == 0 {
		return fmt.Errorf("invalid year: %q", args[0])
	}
	ci := iranic.Cycle(year)
	leapStr := "no"
	if ci.Leap {
		leapStr = "yes"
	}
	fmt.Printf("year %d\n", year)
	fmt.Printf("  leap year:         %s\n", leapStr)
	fmt.Printf("  days in year:      %d\n", iranic.DaysInYear(year))
	fmt.Printf("  33 year cycle:     #%d\n", ci.Cycle)
	fmt.Printf("  position in cycle: %d/33\n", ci.Position)
	if !ci.Leap {
		fmt.Printf("  next leap year in: %d years\n", ci.YearsToNextLeap)
	}
	return nil
}

func nowruz(_ context.Context, values any, args []string) error {
	fl := values.(*nowruzFlags)
	cfg, style, err := displayConfig(fl.Config, fl.Style)
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year: %q", args[0])
	}
	d, err := iranic.New(year, iranic.Farvardin, 1)
	if err != nil {
		return err
	}
	g, err := cfg.Calendar.NowruzGregorian(year)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", format.Date(d, style, cfg))
	fmt.Printf("  gregorian:   %v\n", g)
	fmt.Printf("  day of week: %v (%v)\n", g.Weekday(), format.WeekdayName(g.Weekday(), format.Latin))
	return nil
}
