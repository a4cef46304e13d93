// Copyright 2025 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// setsh is an interactive shell over a named collection of structured
// sets. Parsed sets are assigned spreadsheet-column names (A, B, …)
// and algebra commands operate on those names.
package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/structset"
	"github.com/dolthub/structset/settree"
)

var (
	configPath = kingpin.Flag("config", "path to a TOML file with terminator settings").String()
	verbose    = kingpin.Flag("verbose", "enable debug logging").Short('v').Bool()
	rowTerm    = kingpin.Flag("row", "row terminator").Default(structset.DefaultRowTerminator).String()
	fieldTerm  = kingpin.Flag("field", "field terminator").Default(structset.DefaultFieldTerminator).String()
	ignoreMt   = kingpin.Flag("ignore-empty", "drop empty-record placeholders when rendering").Bool()
)

// shellConfig mirrors the flags that can live in the TOML file; flags
// left at their defaults yield to the file.
type shellConfig struct {
	RowTerminator   string `toml:"row_terminator"`
	FieldTerminator string `toml:"field_terminator"`
	IgnoreEmptySets bool   `toml:"ignore_empty_sets"`
}

func main() {
	kingpin.Parse()

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	fileCfg := shellConfig{
		RowTerminator:   structset.DefaultRowTerminator,
		FieldTerminator: structset.DefaultFieldTerminator,
	}
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &fileCfg); err != nil {
			logrus.WithError(err).Fatalf("could not read config file %s", *configPath)
		}
		logrus.WithField("path", *configPath).Debug("loaded shell config")
	}

	row, field := fileCfg.RowTerminator, fileCfg.FieldTerminator
	if *rowTerm != structset.DefaultRowTerminator {
		row = *rowTerm
	}
	if *fieldTerm != structset.DefaultFieldTerminator {
		field = *fieldTerm
	}

	cfg, err := structset.NewStringConfig(row, field)
	if err != nil {
		logrus.WithError(err).Fatal("invalid terminator configuration")
	}
	if *ignoreMt || fileCfg.IgnoreEmptySets {
		cfg.IgnoreEmptySets = true
	}
	logrus.WithFields(logrus.Fields{
		"row":   row,
		"field": field,
	}).Debug("terminator grammar")

	runShell(cfg)
}

func runShell(cfg *settree.Config[string]) {
	sh := newSetShell(cfg)
	sh.run()
}
