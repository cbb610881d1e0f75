// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "module/v1/source"

// testRange builds a throwaway single-line range for node construction in
// tests where exact source positions do not matter.
func testRange(startCol, endCol int32) source.Range {
	return source.Range{
		File:  source.Id(1),
		Start: source.Loc{Line: 1, Col: startCol},
		End:   source.Loc{Line: 1, Col: endCol},
	}
}

func newTestLock() (*Arena, *Lock) {
	a := NewArena(nil)
	return a, NewLock(a)
}
