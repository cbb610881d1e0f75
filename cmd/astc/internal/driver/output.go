// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package driver

import (
	"encoding/base64"
	"fmt"

	jsonlib "github.com/goccy/go-json"

	"module/v1/ast"
	"module/v1/atom"
	"module/v1/dump"
	"module/v1/generator"
	"module/v1/resolver"
	"module/v1/source"
)

// render produces the bytes for one output kind. sem is nil unless --sema
// (or -O, or gen-resolved-js) ran resolution for this file.
func render(lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, root ast.Node, sem *resolver.SemContext, mgr *source.Manager, o *options, kind outputKind) ([]byte, error) {
	switch kind {
	case outputGenAST:
		return dump.DumpJSON(lock, tbl, tbl16, mgr, root, o.pretty), nil
	case outputGenJS, outputGenResolvedJS:
		return renderJS(lock, tbl, tbl16, root, mgr, o)
	case outputGenSema:
		return renderSema(sem, tbl)
	default:
		return nil, fmt.Errorf("unhandled output kind %q", kind)
	}
}

func renderJS(lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, root ast.Node, mgr *source.Manager, o *options) ([]byte, error) {
	genOpts := generator.Options{Pretty: o.pretty, SourceMap: o.sourcemap}
	js, sm := generator.Generate(lock, tbl, tbl16, root, genOpts)
	if o.sourcemap && sm != nil {
		chunk := sm.Generate(func(id source.Id) string {
			if name, ok := mgr.Name(id); ok {
				return name
			}
			return "<unknown>"
		})
		mapJSON, err := jsonlib.Marshal(struct {
			Version  int      `json:"version"`
			Sources  []string `json:"sources"`
			Mappings string   `json:"mappings"`
		}{Version: 3, Sources: chunk.Sources, Mappings: chunk.Mappings})
		if err != nil {
			return nil, err
		}
		js += "\n//# sourceMappingURL=data:application/json;base64," + base64.StdEncoding.EncodeToString(mapJSON) + "\n"
	}
	return []byte(js), nil
}

// semSummary is the JSON shape gen-sema writes: enough of a SemContext to
// demonstrate resolution ran (full Decl/Scope/Function tables, not the
// unexported per-node resolution maps, which have no stable node identity
// once the arena backing them is gone).
type semSummary struct {
	Decls     []semDecl     `json:"decls"`
	Scopes    []semScope    `json:"scopes"`
	Functions []semFunction `json:"functions"`
}

type semDecl struct {
	Name            string `json:"name"`
	Kind            string `json:"kind"`
	Scope           int32  `json:"scope"`
	FunctionInScope bool   `json:"functionInScope"`
	CanRename       bool   `json:"canRename"`
}

type semScope struct {
	Depth            int32 `json:"depth"`
	ParentFunction   int32 `json:"parentFunction"`
	ParentScope      int32 `json:"parentScope"`
	LocalEval        bool  `json:"localEval"`
	HoistedFunctions int   `json:"hoistedFunctions"`
}

type semFunction struct {
	ParentFunction int32 `json:"parentFunction"`
	ParentScope    int32 `json:"parentScope"`
	Strict         bool  `json:"strict"`
	Arrow          bool  `json:"arrow"`
}

func renderSema(sem *resolver.SemContext, tbl *atom.Table8) ([]byte, error) {
	if sem == nil {
		return nil, fmt.Errorf("gen-sema requested but --sema did not run")
	}
	summary := semSummary{}
	for _, d := range sem.Decls {
		summary.Decls = append(summary.Decls, semDecl{
			Name:            tbl.Lookup(d.Name),
			Kind:            d.Kind.String(),
			Scope:           int32(d.Scope),
			FunctionInScope: d.FunctionInScope,
			CanRename:       d.CanRename,
		})
	}
	for _, s := range sem.Scopes {
		summary.Scopes = append(summary.Scopes, semScope{
			Depth:            int32(s.Depth),
			ParentFunction:   int32(s.ParentFunction),
			ParentScope:      int32(s.ParentScope),
			LocalEval:        s.LocalEval,
			HoistedFunctions: len(s.HoistedFunctions),
		})
	}
	for _, f := range sem.Functions {
		summary.Functions = append(summary.Functions, semFunction{
			ParentFunction: int32(f.ParentFunction),
			ParentScope:    int32(f.ParentScope),
			Strict:         f.Strict,
			Arrow:          f.Arrow,
		})
	}
	return jsonlib.MarshalIndent(summary, "", "  ")
}
