// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iranic

// ToSolarHijri converts d to the Solar Hijri calendar. The two calendars
// share the same month table and leap cycle, so the month and day pass
// through unchanged and only the year shifts.
func (c Calendar) ToSolarHijri(d Date) (year int, month Month, day int) {
	return d.year - c.SolarHijriYearOffset, d.month, d.day
}

// FromSolarHijri converts a Solar Hijri date to this calendar. It
// returns ErrInvalidDate if the shifted triple is not a valid date.
func (c Calendar) FromSolarHijri(year int, month Month, day int) (Date, error) {
	return New(year+c.SolarHijriYearOffset, month, day)
}
