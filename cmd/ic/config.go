// Copyright 2026 the iranic project authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"gopkg.in/yaml.v3"

	"github.com/iranic/iranic/format"
)

// displayConfigFile is the yaml schema accepted by the --config flag.
// Only display concerns are configurable; the epoch offsets are fixed
// constants of the calendar.
type displayConfigFile struct {
	Code  string `yaml:"code"`
	Name  string `yaml:"name"`
	Style string `yaml:"style"`
}

// displayConfig resolves the display configuration from the defaults,
// an optional yaml file and an optional command line style override, in
// increasing order of precedence.
func displayConfig(path, styleOverride string) (format.Config, format.Style, error) {
	cfg := format.Default
	styleName := ""
	if path != "" {
		var f displayConfigFile
		if err := cmdyaml.ParseConfigFile(context.Background(), path, &f); err != nil {
			return cfg, 0, err
		}
		if f.Code != "" {
			cfg.Code = f.Code
		}
		if f.Name != "" {
			cfg.Name = f.Name
		}
		styleName = f.Style
	}
	if styleOverride != "" {
		styleName = styleOverride
	}
	if styleName == "" {
		styleName = "persian"
	}
	style, err := format.ParseStyle(styleName)
	if err != nil {
		return cfg, 0, err
	}
	return cfg, style, nil
}

func showConfig(cfg format.Config) error {
	buf, err := yaml.Marshal(displayConfigFile{
		Code: cfg.Code,
		Name: cfg.Name,
	})
	if err != nil {
		return err
	}
	fmt.Printf("\n%s", buf)
	return nil
}
