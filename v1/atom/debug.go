// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package atom

import "sync"

// debugStack backs the "debug table" discipline from the spec: a
// stack-disciplined pointer that, when installed, lets Atom.GoString
// resolve an atom's text for diagnostics and test failure output.
//
// Go has no per-goroutine-local storage without extra bookkeeping, and the
// rest of this package's contract (§5: single-threaded cooperative use per
// arena) means a single process-wide stack, guarded by a mutex, is
// sufficient: callers push/pop around the region where Debug formatting is
// needed, typically the scope of one test or one print pass.
var (
	debugMu    sync.Mutex
	debugStack []*Table8
)

// PushDebugTable installs t as the table used to resolve Atom.GoString.
// Must be paired with PopDebugTable.
func PushDebugTable(t *Table8) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugStack = append(debugStack, t)
}

// PopDebugTable removes the most recently installed debug table.
func PopDebugTable() {
	debugMu.Lock()
	defer debugMu.Unlock()
	if len(debugStack) == 0 {
		panic("atom: PopDebugTable with no table installed")
	}
	debugStack = debugStack[:len(debugStack)-1]
}

func currentDebugTable() *Table8 {
	debugMu.Lock()
	defer debugMu.Unlock()
	if len(debugStack) == 0 {
		return nil
	}
	return debugStack[len(debugStack)-1]
}

// GoString implements fmt.GoStringer. If a debug table is installed via
// PushDebugTable, the atom's text is resolved and shown; otherwise it
// prints as a bare handle.
func (a Atom) GoString() string {
	if a == Invalid {
		return "Atom(invalid)"
	}
	if t := currentDebugTable(); t != nil {
		if int(a) < len(t.content) {
			return "Atom(" + t.content[a] + ")"
		}
	}
	return "Atom(#" + itoa(uint32(a)) + ")"
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
