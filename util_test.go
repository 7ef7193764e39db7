// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iranic_test

import (
	"time"

	"github.com/iranic/iranic"
)

func nd(year, month, day int) iranic.Date {
	return iranic.MustNew(year, iranic.Month(month), day)
}

func ng(year int, month time.Month, day int) iranic.GregorianDate {
	return iranic.GregorianDate{Year: year, Month: month, Day: day}
}
