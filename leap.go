// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iranic

// The calendar repeats on a 33 year cycle containing 8 leap years. The
// leap positions are fixed data rather than being derived from a formula;
// they give a mean year length of 365.24219852 days.
const cycleYears = 33

var leapPositions = [cycleYears + 1]bool{}

func init() {
	for _, p := range []int{1, 5, 9, 13, 17, 22, 26, 30} {
		leapPositions[p] = true
	}
}

// floorDiv returns a/b rounded towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a mod b with the result taking the sign of b.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// CyclePosition returns the 1-based position of the given year within the
// repeating 33 year leap cycle, in the range 1 to 33. The position is
// computed with a floored modulo and hence is correct for negative years.
func CyclePosition(year int) int {
	return floorMod(year-1, cycleYears) + 1
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return leapPositions[CyclePosition(year)]
}

// DaysInYear returns the number of days in the given year, 366 for leap
// years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// CycleInfo describes a year's position within the 33 year leap cycle.
type CycleInfo struct {
	Year            int
	Cycle           int // 1-based cycle number counted from year 1.
	Position        int // 1 to 33.
	Leap            bool
	YearsToNextLeap int // 0 for leap years.
}

// Cycle returns the leap cycle information for the given year.
func Cycle(year int) CycleInfo {
	pos := CyclePosition(year)
	info := CycleInfo{
		Year:     year,
		Cycle:    floorDiv(year-1, cycleYears) + 1,
		Position: pos,
		Leap:     leapPositions[pos],
	}
	if !info.Leap {
		next := 0
		for p := pos + 1; ; p++ {
			next++
			if leapPositions[floorMod(p-1, cycleYears)+1] {
				break
			}
		}
		info.YearsToNextLeap = next
	}
	return info
}

// LeapYearsInRange returns the leap years in the range [from, to]
// inclusive. Year zero does not exist and is never returned.
func LeapYearsInRange(from, to int) []int {
	var years []int
	for y := from; y <= to; y++ {
		if y == 0 {
			continue
		}
		if IsLeap(y) {
			years = append(years, y)
		}
	}
	return years
}
