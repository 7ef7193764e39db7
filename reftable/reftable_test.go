// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package reftable_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iranic/iranic"
	"github.com/iranic/iranic/reftable"
)

func TestBuild(t *testing.T) {
	rows, err := reftable.Build(reftable.Options{
		Calendar: iranic.Iranic,
		FromYear: 5025,
		ToYear:   5026,
	})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(rows), 366+365; got != want {
		t.Fatalf("got %v rows, want %v", got, want)
	}
	if got, want := rows[0], (reftable.Row{
		Date:       "5025-01-01",
		Ordinal:    1,
		Leap:       true,
		Gregorian:  "2025-03-21",
		Weekday:    "Friday",
		SolarHijri: "1404-01-01",
	}); got != want {
		t.Errorf("got %#v, want %#v", got, want)
	}
	last := rows[365]
	if got, want := last.Date, "5025-12-30"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rows[366].Date, "5026-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBuildNowruzOnly(t *testing.T) {
	rows, err := reftable.Build(reftable.Options{
		Calendar:   iranic.Iranic,
		FromYear:   -2,
		ToYear:     2,
		NowruzOnly: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	// Year zero is skipped.
	if got, want := len(rows), 4; got != want {
		t.Fatalf("got %v rows, want %v", got, want)
	}
	if got, want := rows[1].Date, "-0001-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rows[2].Date, "0001-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := rows[2].Gregorian, "-2999-03-21"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := reftable.Build(reftable.Options{FromYear: 10, ToYear: 5}); err == nil {
		t.Errorf("expected an error")
	}
}

func TestWriteCSV(t *testing.T) {
	rows, err := reftable.Build(reftable.Options{
		Calendar:   iranic.Iranic,
		FromYear:   5026,
		ToYear:     5026,
		NowruzOnly: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	out := &strings.Builder{}
	if err := reftable.WriteCSV(out, rows); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(strings.NewReader(out.String())).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(records), 2; got != want {
		t.Fatalf("got %v records, want %v", got, want)
	}
	if got, want := records[0][0], "date"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := records[1], []string{"5026-01-01", "1", "false", "2026-03-21", "Saturday", "1405-01-01"}; !equalStrings(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWriteJSON(t *testing.T) {
	rows, err := reftable.Build(reftable.Options{
		Calendar:   iranic.Iranic,
		FromYear:   5025,
		ToYear:     5025,
		NowruzOnly: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	out := &strings.Builder{}
	if err := reftable.WriteJSON(out, rows); err != nil {
		t.Fatal(err)
	}
	var decoded []reftable.Row
	if err := json.Unmarshal([]byte(out.String()), &decoded); err != nil {
		t.Fatal(err)
	}
	if got, want := len(decoded), 1; got != want {
		t.Fatalf("got %v rows, want %v", got, want)
	}
	if got, want := decoded[0], rows[0]; got != want {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
