// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package generator

import "fmt"

// shortEscapes are the single-character escape sequences JS string
// literals recognize, preferred over a \u escape wherever applicable.
var shortEscapes = map[uint16]byte{
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\b': 'b',
	'\f': 'f',
	'\v': 'v',
}

// quoteString16 renders units (raw UTF-16 code units, possibly containing
// unpaired surrogates) as a quoted JS string literal using quote as the
// delimiter. Escaping operates per code unit rather than per rune: a
// surrogate pair that encodes an astral character round-trips as two
// independent \u escapes exactly like a lone surrogate would, since
// nothing about the quoting policy needs to know they pair up.
func quoteString16(units []uint16, quote byte) string {
	out := make([]byte, 0, len(units)+2)
	out = append(out, quote)
	for _, u := range units {
		switch {
		case u == uint16(quote) || u == '\\':
			out = append(out, '\\', byte(u))
		case shortEscapes[u] != 0 && u != uint16(quote):
			out = append(out, '\\', shortEscapes[u])
		case u >= 0x20 && u < 0x7f:
			out = append(out, byte(u))
		default:
			out = append(out, []byte(fmt.Sprintf(`\u%04x`, u))...)
		}
	}
	out = append(out, quote)
	return string(out)
}
