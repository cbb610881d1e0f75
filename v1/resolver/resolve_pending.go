// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package resolver

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"module/v1/ast"
	"module/v1/atom"
)

// resolvePending resolves every queued identifier use now that decl
// collection, block-scope registration, and eval-poison propagation have
// finished for the whole tree — a direct eval textually after a use it
// poisons still pins that use to Unresolvable, since poisoning is a
// whole-scope property, not a textual-position one.
func (w *walker) resolvePending() {
	for _, p := range w.pending {
		var res Resolution
		if p.isArgs {
			res = w.resolveArguments(p.function)
		} else {
			res = w.resolveIdentifier(p.node.Name, p.scope)
		}
		if res.Unresolvable {
			res.Suggestion = w.suggest(p.node.Name, p.scope)
		}
		w.ctx.idents[p.ref] = res
	}
}

// resolveIdentifier walks the scope chain from scope outward. Stepping
// into a scope with LocalEval set pins the result to Unresolvable
// immediately, whether or not the name would otherwise be found there —
// matching spec.md's "resolution of identifiers in any such scope is
// pinned to Unresolvable". Falling off the end of the chain without a
// LocalEval scope and without finding a declaration materializes (or
// reuses) an UndeclaredGlobalProperty in the global scope.
func (w *walker) resolveIdentifier(name atom.Atom, scope ScopeID) Resolution {
	for s := scope; s != NoScope; s = w.ctx.Scopes[s].ParentScope {
		if w.ctx.Scopes[s].LocalEval {
			return Resolution{Decl: NoDecl, Unresolvable: true}
		}
		if id, ok := w.lookupLocal(s, name); ok {
			return Resolution{Decl: id}
		}
	}
	global := ScopeID(0)
	id := w.declare(global, name, DeclUndeclaredGlobalProperty, NotSpecial)
	return Resolution{Decl: id}
}

// resolveArguments materializes the special "arguments" declaration on
// first use, walking past arrow functions to the nearest non-arrow
// parent function (or the global scope, which has no arguments object
// and resolves to an UndeclaredGlobalProperty like any other bare global
// reference).
func (w *walker) resolveArguments(fn FunctionID) Resolution {
	for f := fn; f != NoFunction; f = w.ctx.Functions[f].ParentFunction {
		if w.ctx.Functions[f].Arrow {
			continue
		}
		info := &w.ctx.Functions[f]
		topScope := info.Scopes[0]
		if w.ctx.Scopes[topScope].LocalEval {
			return Resolution{Decl: NoDecl, Unresolvable: true}
		}
		if info.ArgumentsDecl == NoDecl {
			info.ArgumentsDecl = w.declare(topScope, w.argsAtom, DeclVar, Arguments)
		}
		return Resolution{Decl: info.ArgumentsDecl}
	}
	return w.resolveIdentifier(w.argsAtom, ScopeID(0))
}

// suggest returns a "did you mean `<name>`?" note when some declaration
// visible from scope's enclosing function chain is within edit distance
// 2 of name, or "" otherwise. This is additive per spec.md §4.9's
// expansion note: it never changes whether an identifier resolves.
func (w *walker) suggest(name atom.Atom, scope ScopeID) string {
	if w.tbl == nil {
		return ""
	}
	want := w.tbl.Lookup(name)
	best := ""
	bestDist := 3 // only accept distance <= 2
	seen := make(map[atom.Atom]bool)
	for s := scope; s != NoScope; s = w.ctx.Scopes[s].ParentScope {
		for _, id := range w.ctx.Scopes[s].Decls {
			d := w.ctx.Decls[id]
			if seen[d.Name] {
				continue
			}
			seen[d.Name] = true
			cand := w.tbl.Lookup(d.Name)
			dist := levenshtein.ComputeDistance(want, cand)
			if dist < bestDist {
				bestDist, best = dist, cand
			}
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("did you mean `%s`?", best)
}

// sweepCanRename marks every Decl reachable from an eval/with-poisoned
// scope as non-renameable, matching spec.md's "affected declarations
// lose can_rename".
func (w *walker) sweepCanRename() {
	for s := range w.ctx.Scopes {
		if !w.ctx.Scopes[s].LocalEval {
			continue
		}
		for _, id := range w.ctx.Scopes[s].Decls {
			w.ctx.Decls[id].CanRename = false
		}
	}
}

// reportUnresolvable routes every Unresolvable identifier use through
// mgr as a resolution diagnostic (spec.md §7's "Resolution diagnostic"
// kind), including the additive did-you-mean suggestion when present.
func (w *walker) reportUnresolvable() {
	for n, res := range w.ctx.idents {
		if !res.Unresolvable {
			continue
		}
		r := n.Range()
		name := w.identName(n)
		if res.Suggestion != "" {
			w.mgr.Error(r, "%s is not declared; %s", name, res.Suggestion)
		} else {
			w.mgr.Error(r, "%s is not declared", name)
		}
	}
}

func (w *walker) identName(n ast.Node) string {
	if id, ok := n.(*ast.Identifier); ok && w.tbl != nil {
		return w.tbl.Lookup(id.Name)
	}
	return "identifier"
}
