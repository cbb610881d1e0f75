// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Command astc is a demonstration driver for the core arena/ast/validate/
// resolver/generator packages. It is explicitly out of the spec's core
// scope (spec.md §1 "Out of scope: the command-line driver"): it contains
// no parsing, validation, or generation logic of its own, only flag
// handling, per-file pipeline sequencing, and output routing. Because no
// native JS/Flow/TS parser front-end is implemented in this module (also
// out of scope), astc parses input through v1/parseradapter/fake, whose
// vocabulary is a fixed set of fixture programs — this command is useful
// for exercising the pipeline end to end on those fixtures, not for
// compiling arbitrary JavaScript.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"module/cmd/astc/internal/driver"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := driver.NewRootCommand(log).Execute(); err != nil {
		os.Exit(1)
	}
}
