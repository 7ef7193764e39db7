// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iranic

import "errors"

var (
	// ErrInvalidDate is returned when a year, month, day triple does not
	// form a valid calendar date, including any date in the non-existent
	// year zero.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidMonth is returned for a month outside of Farvardin (1)
	// to Esfand (12).
	ErrInvalidMonth = errors.New("invalid month")

	// ErrOrdinalOutOfRange is returned for an ordinal day of the year
	// outside of 1 to DaysInYear for the year in question.
	ErrOrdinalOutOfRange = errors.New("ordinal day out of range")
)
