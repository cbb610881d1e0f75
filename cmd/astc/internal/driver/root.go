// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package driver wires the cobra CLI surface spec.md §6 describes onto
// the core packages. It holds no compiler logic: flag parsing, an
// optional viper config-file overlay, per-file pipeline sequencing
// (pipeline.go), and output formatting (output.go) are all it does.
package driver

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sirupsen/logrus"

	"module/v1/parseradapter"
)

// outputKind is the closed set spec.md §6 names for --output.
type outputKind string

const (
	outputGenAST        outputKind = "gen-ast"
	outputGenJS         outputKind = "gen-js"
	outputGenSema       outputKind = "gen-sema"
	outputGenResolvedJS outputKind = "gen-resolved-js"
)

func parseOutputKind(s string) (outputKind, error) {
	switch outputKind(s) {
	case outputGenAST, outputGenJS, outputGenSema, outputGenResolvedJS:
		return outputKind(s), nil
	default:
		return "", fmt.Errorf("unknown --output %q (want one of gen-ast, gen-js, gen-sema, gen-resolved-js)", s)
	}
}

func parseDialect(s string) (parseradapter.Dialect, error) {
	switch strings.ToLower(s) {
	case "javascript", "":
		return parseradapter.JavaScript, nil
	case "flow":
		return parseradapter.Flow, nil
	case "flow-unambiguous":
		return parseradapter.FlowUnambiguous, nil
	case "flow-detect":
		return parseradapter.FlowDetect, nil
	case "typescript":
		return parseradapter.TypeScript, nil
	default:
		return 0, fmt.Errorf("unknown --dialect %q", s)
	}
}

// options collects every flag value for one invocation.
type options struct {
	out         string
	output      string
	dialect     string
	jsx         bool
	strictMode  bool
	pretty      bool
	validateAST bool
	sema        bool
	sourcemap   bool
	stripFlow   bool
	optimize    bool // -O: run the standard pass pipeline
	config      string
}

// NewRootCommand builds the astc cobra command. log is the structured
// logger threaded into every arena/source.Manager shard the pipeline
// creates (one per input file).
func NewRootCommand(log *logrus.Logger) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:   "astc [files...]",
		Short: "Demonstration driver over the arena-managed AST core",
		Long: `astc sequences the core packages (arena, ast, validate, resolver,
generator, dump) over one or more input files, each parsed through the
fake parser adapter's fixed fixture vocabulary (no native JS/Flow/TS
parser front-end is implemented in this module — see v1/parseradapter).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, &o, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.out, "out", "", "output path; a directory when multiple files are given, stdout if empty")
	flags.StringVar(&o.output, "output", string(outputGenJS), "one of gen-ast, gen-js, gen-sema, gen-resolved-js")
	flags.StringVar(&o.dialect, "dialect", "javascript", "javascript, flow, flow-unambiguous, flow-detect, or typescript")
	flags.BoolVar(&o.jsx, "jsx", false, "enable JSX parsing")
	flags.BoolVar(&o.strictMode, "strict-mode", false, "force strict-mode semantics")
	flags.BoolVar(&o.pretty, "pretty", false, "multi-line indented output instead of compact")
	flags.BoolVar(&o.validateAST, "validate-ast", false, "run the structural validator and fail on violations")
	flags.BoolVar(&o.sema, "sema", false, "run scope/declaration resolution")
	flags.BoolVar(&o.sourcemap, "sourcemap", false, "emit an inline sourceMappingURL comment alongside gen-js/gen-resolved-js output")
	flags.BoolVar(&o.stripFlow, "strip-flow", false, "rewrite away Flow/TS type-annotation nodes before generation")
	flags.BoolVarP(&o.optimize, "optimize", "O", false, "run the standard pass pipeline (validate-ast + sema + strip-flow)")
	flags.StringVar(&o.config, "config", "", "optional YAML file layering defaults under the flags above")

	return cmd
}

// applyConfigFile layers o.config (if set) under the flags the user
// actually passed on the command line, using viper the way the rest of
// the example pack's CLI entry points do: file values fill in anything
// the user left at its flag default, but an explicit flag always wins.
func applyConfigFile(cmd *cobra.Command, o *options) error {
	if o.config == "" {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(o.config)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading --config %s: %w", o.config, err)
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags to config: %w", err)
	}

	apply := func(name string, set func(string)) {
		if cmd.Flags().Changed(name) {
			return
		}
		if v.IsSet(name) {
			set(v.GetString(name))
		}
	}
	applyBool := func(name string, set func(bool)) {
		if cmd.Flags().Changed(name) {
			return
		}
		if v.IsSet(name) {
			set(v.GetBool(name))
		}
	}

	apply("out", func(s string) { o.out = s })
	apply("output", func(s string) { o.output = s })
	apply("dialect", func(s string) { o.dialect = s })
	applyBool("jsx", func(b bool) { o.jsx = b })
	applyBool("strict-mode", func(b bool) { o.strictMode = b })
	applyBool("pretty", func(b bool) { o.pretty = b })
	applyBool("validate-ast", func(b bool) { o.validateAST = b })
	applyBool("sema", func(b bool) { o.sema = b })
	applyBool("sourcemap", func(b bool) { o.sourcemap = b })
	applyBool("strip-flow", func(b bool) { o.stripFlow = b })
	applyBool("optimize", func(b bool) { o.optimize = b })
	return nil
}

func runRoot(cmd *cobra.Command, args []string, o *options, log *logrus.Logger) error {
	if err := applyConfigFile(cmd, o); err != nil {
		return err
	}
	kind, err := parseOutputKind(o.output)
	if err != nil {
		return err
	}
	dialect, err := parseDialect(o.dialect)
	if err != nil {
		return err
	}
	if o.optimize {
		o.validateAST = true
		o.sema = true
		o.stripFlow = true
	}

	ok, err := runFiles(cmd.Context(), args, o, kind, dialect, log)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("astc: compilation errors encountered")
	}
	return nil
}
