// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package format_test

import (
	"testing"
	"time"

	"github.com/iranic/iranic"
	"github.com/iranic/iranic/format"
)

func TestDate(t *testing.T) {
	d := iranic.MustNew(5025, iranic.Bahman, 2)
	for _, tc := range []struct {
		style format.Style
		want  string
	}{
		{format.Persian, "2 بهمن 5025 IC"},
		{format.Latin, "2 Bahman 5025 IC"},
		{format.Numeric, "5025-11-02"},
		{format.Compact, "5025/11/02"},
		{format.Full, "2 بهمن 5025 IC (1404 SH)"},
	} {
		if got, want := format.Date(d, tc.style, format.Default), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.style, got, want)
		}
	}

	// The code is configurable without touching the core.
	cfg := format.Default
	cfg.Code = "XY"
	if got, want := format.Date(d, format.Latin, cfg), "2 Bahman 5025 XY"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseStyle(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want format.Style
	}{
		{"persian", format.Persian},
		{"Latin", format.Latin},
		{"NUMERIC", format.Numeric},
		{"compact", format.Compact},
		{"full", format.Full},
	} {
		got, err := format.ParseStyle(tc.val)
		if err != nil {
			t.Fatalf("%v: %v", tc.val, err)
		}
		if want := tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	if _, err := format.ParseStyle("fancy"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestMonthName(t *testing.T) {
	for _, tc := range []struct {
		month iranic.Month
		style format.Style
		want  string
	}{
		{iranic.Farvardin, format.Latin, "Farvardin"},
		{iranic.Esfand, format.Latin, "Esfand"},
		{iranic.Bahman, format.Persian, "بهمن"},
		{iranic.Bahman, format.Numeric, "11"},
	} {
		if got, want := format.MonthName(tc.month, tc.style), tc.want; got != want {
			t.Errorf("%v/%v: got %v, want %v", tc.month, tc.style, got, want)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	for _, tc := range []struct {
		day   time.Weekday
		style format.Style
		want  string
	}{
		{time.Saturday, format.Latin, "Shanbe"},
		{time.Sunday, format.Latin, "Yekshanbe"},
		{time.Friday, format.Latin, "Jome"},
		{time.Saturday, format.Persian, "شنبه"},
	} {
		if got, want := format.WeekdayName(tc.day, tc.style), tc.want; got != want {
			t.Errorf("%v/%v: got %v, want %v", tc.day, tc.style, got, want)
		}
	}
}

func TestParseMonth(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want iranic.Month
	}{
		{"1", iranic.Farvardin},
		{"12", iranic.Esfand},
		{"Bahman", iranic.Bahman},
		{"bah", iranic.Bahman},
		{"ESFAND", iranic.Esfand},
		{"Tir", iranic.Tir},
	} {
		got, err := format.ParseMonth(tc.val)
		if err != nil {
			t.Fatalf("%v: %v", tc.val, err)
		}
		if want := tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, val := range []string{"", "13", "Januar", "xyz"} {
		if _, err := format.ParseMonth(val); err == nil {
			t.Errorf("%q: expected an error", val)
		}
	}
}

func TestParseYMD(t *testing.T) {
	for _, tc := range []struct {
		val              string
		year, month, day int
	}{
		{"5025-11-02", 5025, 11, 2},
		{"2026-01-22", 2026, 1, 22},
		{"-0012-01-01", -12, 1, 1},
		{"1-1-1", 1, 1, 1},
	} {
		y, m, d, err := format.ParseYMD(tc.val)
		if err != nil {
			t.Fatalf("%v: %v", tc.val, err)
		}
		if y != tc.year || m != tc.month || d != tc.day {
			t.Errorf("%v: got %v-%v-%v, want %v-%v-%v", tc.val, y, m, d, tc.year, tc.month, tc.day)
		}
	}
	for _, val := range []string{"", "5025-11", "5025-11-02-03", "y-11-02", "5025-m-02", "5025-11-d"} {
		if _, _, _, err := format.ParseYMD(val); err == nil {
			t.Errorf("%q: expected an error", val)
		}
	}
}
