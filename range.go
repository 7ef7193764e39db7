// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iranic

import "fmt"

// Range is an inclusive range of dates. The zero value is not a valid
// range; use NewRange or YearRange.
type Range struct {
	from, to Date
}

// NewRange returns the Range spanning from and to, inclusive. If from is
// later than to they are swapped.
func NewRange(from, to Date) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{from: from, to: to}
}

// YearRange returns the Range covering every day of the given year.
func YearRange(year int) (Range, error) {
	from, err := New(year, Farvardin, 1)
	if err != nil {
		return Range{}, err
	}
	to, err := DateFromDay(year, DaysInYear(year))
	if err != nil {
		return Range{}, err
	}
	return Range{from: from, to: to}, nil
}

// From returns the first date in the range.
func (r Range) From() Date { return r.from }

// To returns the last date in the range.
func (r Range) To() Date { return r.to }

// Contains returns true if d falls within the range.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.from) && !d.After(r.to)
}

// Bound returns the intersection of r and b. The second return value is
// false if the two ranges do not overlap.
func (r Range) Bound(b Range) (Range, bool) {
	from, to := r.from, r.to
	if from.Before(b.from) {
		from = b.from
	}
	if to.After(b.to) {
		to = b.to
	}
	if to.Before(from) {
		return Range{}, false
	}
	return Range{from: from, to: to}, true
}

// NumDays returns the number of dates in the range. The count is taken
// over calendar dates and hence agrees with Dates; year zero does not
// contribute.
func (r Range) NumDays() int {
	if r.from.year == r.to.year {
		return r.to.DayOfYear() - r.from.DayOfYear() + 1
	}
	n := DaysInYear(r.from.year) - r.from.DayOfYear() + 1
	for y := nextYear(r.from.year); y != r.to.year; y = nextYear(y) {
		n += DaysInYear(y)
	}
	return n + r.to.DayOfYear()
}

// NumYears returns the number of calendar years the range touches.
func (r Range) NumYears() int {
	n := 1
	for y := r.from.year; y != r.to.year; y = nextYear(y) {
		n++
	}
	return n
}

func (r Range) String() string {
	return fmt.Sprintf("%s - %s", r.from, r.to)
}

// Dates returns an iterator that yields each date in the range in
// chronological order.
func (r Range) Dates() func(yield func(Date) bool) {
	return func(yield func(Date) bool) {
		for d := r.from; !d.After(r.to); d = d.Tomorrow() {
			if !yield(d) {
				return
			}
		}
	}
}

// Years returns an iterator that yields each year the range touches, in
// order and skipping year zero.
func (r Range) Years() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for y := r.from.year; ; y = nextYear(y) {
			if !yield(y) {
				return
			}
			if y == r.to.year {
				return
			}
		}
	}
}
