// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command ic works with dates in the Iranian Calendar, a solar calendar
// with the structure of the Solar Hijri calendar and an epoch of
// 3000 BCE.
package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"

	"github.com/iranic/iranic"
	"github.com/iranic/iranic/format"
)

var cmdSet *subcmd.CommandSet

type todayFlags struct {
	Config string `subcmd:"config,,yaml file overriding the display configuration"`
	Style  string `subcmd:"style,,display style: persian | latin | numeric | compact | full"`
}

type convertFlags struct {
	Config string `subcmd:"config,,yaml file overriding the display configuration"`
	Style  string `subcmd:"style,,display style: persian | latin | numeric | compact | full"`
	From   string `subcmd:"from,auto,source calendar: auto | ic | gregorian | sh"`
}

type leapFlags struct{}

type nowruzFlags struct {
	Config string `subcmd:"config,,yaml file overriding the display configuration"`
	Style  string `subcmd:"style,,display style: persian | latin | numeric | compact | full"`
}

type tableFlags struct {
	From       int    `subcmd:"from,5000,first year of the table"`
	To         int    `subcmd:"to,5050,last year of the table"`
	Format     string `subcmd:"format,csv,output format: csv | json"`
	Output     string `subcmd:"output,,output file; stdout if empty"`
	NowruzOnly bool   `subcmd:"nowruz-only,false,emit only 1 Farvardin of each year"`
}

type infoFlags struct {
	Config     string `subcmd:"config,,yaml file overriding the display configuration"`
	ShowConfig bool   `subcmd:"show-config,false,print the effective display configuration as yaml"`
}

func init() {
	todayFS := subcmd.NewFlagSet()
	todayFS.MustRegisterFlagStruct(&todayFlags{}, nil, nil)
	todayCmd := subcmd.NewCommand("today", todayFS, today, subcmd.WithoutArguments())
	todayCmd.Document("print today's date")

	convertFS := subcmd.NewFlagSet()
	convertFS.MustRegisterFlagStruct(&convertFlags{}, nil, nil)
	convertCmd := subcmd.NewCommand("convert", convertFS, convert, subcmd.ExactlyNumArguments(1))
	convertCmd.Document("convert a date between calendars", "<yyyy-mm-dd>")

	leapFS := subcmd.NewFlagSet()
	leapFS.MustRegisterFlagStruct(&leapFlags{}, nil, nil)
	leapCmd := subcmd.NewCommand("leap", leapFS, leap, subcmd.ExactlyNumArguments(1))
	leapCmd.Document("show leap year and cycle information for a year", "<year>")

	nowruzFS := subcmd.NewFlagSet()
	nowruzFS.MustRegisterFlagStruct(&nowruzFlags{}, nil, nil)
	nowruzCmd := subcmd.NewCommand("nowruz", nowruzFS, nowruz, subcmd.ExactlyNumArguments(1))
	nowruzCmd.Document("show the Gregorian date of Nowruz for a year", "<year>")

	tableFS := subcmd.NewFlagSet()
	tableFS.MustRegisterFlagStruct(&tableFlags{}, nil, nil)
	tableCmd := subcmd.NewCommand("table", tableFS, table, subcmd.WithoutArguments())
	tableCmd.Document("generate a conversion reference table")

	infoFS := subcmd.NewFlagSet()
	infoFS.MustRegisterFlagStruct(&infoFlags{}, nil, nil)
	infoCmd := subcmd.NewCommand("info", infoFS, info, subcmd.WithoutArguments())
	infoCmd.Document("describe the calendar system")

	cmdSet = subcmd.NewCommandSet(todayCmd, convertCmd, leapCmd, nowruzCmd, tableCmd, infoCmd)
	cmdSet.Document("ic works with dates in the Iranian Calendar (IC), a solar calendar with the structure of the Solar Hijri calendar and an epoch of 3000 BCE.")
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func today(_ context.Context, values any, _ []string) error {
	fl := values.(*todayFlags)
	cfg, style, err := displayConfig(fl.Config, fl.Style)
	if err != nil {
		return err
	}
	now := time.Now()
	g := iranic.GregorianDate{Year: now.Year(), Month: now.Month(), Day: now.Day()}
	d, err := cfg.Calendar.FromGregorian(g)
	if err != nil {
		return err
	}
	printDate(cfg, style, d, g)
	return nil
}

func printDate(cfg format.Config, style format.Style, d iranic.Date, g iranic.GregorianDate) {
	shYear, shMonth, shDay := cfg.Calendar.ToSolarHijri(d)
	fmt.Printf("%s\n", format.Date(d, style, cfg))
	fmt.Printf("  numeric:     %v\n", d)
	fmt.Printf("  gregorian:   %v (%v)\n", g, g.Weekday())
	fmt.Printf("  solar hijri: %d-%02d-%02d\n", shYear, int(shMonth), shDay)
	fmt.Printf("  day of year: %v of %v\n", d.DayOfYear(), iranic.DaysInYear(d.Year()))
}

func info(_ context.Context, values any, _ []string) error {
	fl := values.(*infoFlags)
	cfg, _, err := displayConfig(fl.Config, "")
	if err != nil {
		return err
	}
	fmt.Printf(`%s (%s)

Epoch:     1 Farvardin 1 %s = 3000 BCE (proleptic Gregorian)
Structure: identical to the Solar Hijri (Persian) calendar
Months:    12 months (6 of 31 days, 5 of 30, Esfand 29 or 30)
Year:      365 days, 366 in leap years
Leap rule: 33 year cycle with 8 leap years per cycle

Conversions:
  %s = Gregorian + %d (with Nowruz adjustment)
  %s = Solar Hijri + %d

Nowruz is approximated as March 21; the true date is set by the spring
equinox and varies between March 19 and March 22.
`, cfg.Name, cfg.Code, cfg.Code,
		cfg.Code, cfg.Calendar.GregorianYearOffset,
		cfg.Code, cfg.Calendar.SolarHijriYearOffset)
	if fl.ShowConfig {
		return showConfig(cfg)
	}
	return nil
}
