// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/iranic/iranic"
	"github.com/iranic/iranic/reftable"
)

func table(_ context.Context, values any, _ []string) error {
	fl := values.(*tableFlags)
	rows, err := reftable.Build(reftable.Options{
		Calendar:   iranic.Iranic,
		FromYear:   fl.From,
		ToYear:     fl.To,
		NowruzOnly: fl.NowruzOnly,
	})
	if err != nil {
		return err
	}
	var out io.Writer = os.Stdout
	if fl.Output != "" {
		f, err := os.Create(fl.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	switch fl.Format {
	case "csv":
		return reftable.WriteCSV(out, rows)
	case "json":
		return reftable.WriteJSON(out, rows)
	}
	return fmt.Errorf("unknown format %q: expected csv or json", fl.Format)
}
