// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package dump serializes an AST subtree to the pretty/compact JSON shape
// used by tests: "type" in PascalCase (the node's NodeVariant name),
// camelCase child fields, arrays for lists, null for absent optionals,
// and a two-element [start, end] range array per node. It is one-way only
// (there is no LoadJSON); the AST's construction path is always through
// ast.Node templates, never through decoding a dump back into the arena.
package dump

import (
	"bytes"
	"strings"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
	jsonlib "github.com/goccy/go-json"

	"module/v1/arena"
	"module/v1/ast"
	"module/v1/atom"
	"module/v1/source"
	"module/v1/util"
)

// field is one key/value pair of an object in emission order. Go maps
// marshal with alphabetically sorted keys, which would scatter "type"
// away from the front of every node and shuffle sibling fields into an
// order no ESTree consumer expects; obj keeps the insertion order the
// dumper actually wants, the same way the generator's printer hand-rolls
// its own formatting rather than delegating spacing decisions to a
// generic layer.
type field struct {
	key string
	val any
}

// obj is a JSON object that marshals its fields in insertion order.
type obj []field

func (o obj) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := jsonlib.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := jsonlib.Marshal(f.val)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// dumper holds the read-only handles needed to resolve every Ref/atom a
// node may carry; it never mutates the arena. mgr resolves a node's
// source.Range to the byte offsets spec.md §6 requires the "range" field
// to carry.
type dumper struct {
	lock  *ast.Lock
	tbl   *atom.Table8
	tbl16 *atom.Table16
	mgr   *source.Manager
}

// DumpJSON renders root (rooted in lock's arena) as pretty or compact
// JSON. It is intended for tests: golden fixtures, printer round-trip
// assertions (after range normalization — see DumpEqual) and resolver/
// validator snapshot comparisons. mgr resolves each node's range to byte
// offsets; a range whose file was never registered with mgr (or whose
// line falls outside the registered buffer) dumps as null rather than a
// guessed value.
func DumpJSON(lock *ast.Lock, tbl *atom.Table8, tbl16 *atom.Table16, mgr *source.Manager, root ast.Node, pretty bool) []byte {
	d := &dumper{lock: lock, tbl: tbl, tbl16: tbl16, mgr: mgr}
	tree := d.node(root)

	buf := util.GetBuffer()
	defer util.PutBuffer(buf)

	raw, err := jsonlib.Marshal(tree)
	if err != nil {
		panic("dump: marshal: " + err.Error())
	}
	if !pretty {
		return append([]byte(nil), raw...)
	}
	buf.Reset()
	if err := jsonlib.Indent(buf, raw, "", "  "); err != nil {
		panic("dump: indent: " + err.Error())
	}
	return append([]byte(nil), buf.Bytes()...)
}

// DumpEqual reports whether two DumpJSON outputs describe the same tree,
// decoding both to an untyped any value first so formatting differences
// (pretty vs compact, object key order) never matter, only structural
// equality does.
func DumpEqual(a, b []byte) bool {
	var av, bv any
	if err := jsonlib.Unmarshal(a, &av); err != nil {
		panic("dump: DumpEqual: decode a: " + err.Error())
	}
	if err := jsonlib.Unmarshal(b, &bv); err != nil {
		panic("dump: DumpEqual: decode b: " + err.Error())
	}
	return cmp.Equal(av, bv)
}

// numberJSON renders a NumericLiteral's parsed value as an exact decimal
// json.Number via util.Float64ToJSONNumber, rather than letting the JSON
// encoder's own float formatting (which can choose scientific notation
// or drop trailing precision) decide the textual form.
func numberJSON(v float64) any {
	return util.Float64ToJSONNumber(v)
}

// rangeJSON renders r as the ESTree/Babel "[start, end]" byte-offset pair
// spec.md §6 requires, converting the arena's 1-based (line, column)
// Locs via d.mgr's line-start table. Either an invalid range or one whose
// offsets d.mgr cannot resolve (file never registered, line out of
// bounds) dumps as null.
func (d *dumper) rangeJSON(r source.Range) any {
	if !r.Valid() || d.mgr == nil {
		return nil
	}
	start, ok := d.mgr.Offset(r.File, r.Start)
	if !ok {
		return nil
	}
	end, ok := d.mgr.Offset(r.File, r.End)
	if !ok {
		return nil
	}
	return []any{int64(start), int64(end)}
}

// atomStr resolves an 8-bit atom, used for identifiers and other
// always-valid-UTF-8 content.
func (d *dumper) atomStr(a atom.Atom) string {
	if a == atom.Invalid {
		return ""
	}
	return d.tbl.Lookup(a)
}

// str16 renders a 16-bit atom's code units as a JSON string. When every
// unit decodes as valid UTF-16 it becomes an ordinary JSON string;
// otherwise (unpaired surrogates, which cannot round-trip through UTF-8)
// it becomes a `u"..."`-prefixed literal preserving each code unit as a
// \uXXXX escape, mirroring generator.quoteString16's per-unit escaping
// policy but always \u-escaping rather than passing printable ASCII
// through, since this form exists to be byte-exact, not readable.
func (d *dumper) str16(a atom.Atom16) string {
	units := d.tbl16.Lookup(a)
	if validUTF16(units) {
		return string(utf16.Decode(units))
	}
	var b strings.Builder
	b.WriteString(`u"`)
	for _, u := range units {
		switch u {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if u >= 0x20 && u < 0x7f {
				b.WriteByte(byte(u))
			} else {
				writeU16Escape(&b, u)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func writeU16Escape(b *strings.Builder, u uint16) {
	const hex = "0123456789abcdef"
	b.WriteString(`\u`)
	b.WriteByte(hex[(u>>12)&0xf])
	b.WriteByte(hex[(u>>8)&0xf])
	b.WriteByte(hex[(u>>4)&0xf])
	b.WriteByte(hex[u&0xf])
}

// validUTF16 reports whether units decodes cleanly: every high surrogate
// is immediately followed by a matching low surrogate and no low
// surrogate appears unpaired.
func validUTF16(units []uint16) bool {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xd800 && u <= 0xdbff: // high surrogate
			if i+1 >= len(units) || units[i+1] < 0xdc00 || units[i+1] > 0xdfff {
				return false
			}
			i++
		case u >= 0xdc00 && u <= 0xdfff: // unpaired low surrogate
			return false
		}
	}
	return true
}

func (d *dumper) ref(r ast.Ref) any {
	return d.node(d.lock.Deref(r))
}

func (d *dumper) optRef(o ast.OptRef) any {
	r, ok := o.Get()
	if !ok {
		return nil
	}
	return d.ref(r)
}

func (d *dumper) list(l ast.NodeList) []any {
	refs := arena.Elems(d.lock, l)
	out := make([]any, len(refs))
	for i, r := range refs {
		out[i] = d.ref(r)
	}
	return out
}

// elements renders a []ast.OptRef slice (ArrayExpression/ArrayPattern),
// preserving holes as JSON null entries.
func (d *dumper) elements(es []ast.OptRef) []any {
	out := make([]any, len(es))
	for i, e := range es {
		out[i] = d.optRef(e)
	}
	return out
}

func propKindString(k ast.PropertyKind) string {
	switch k {
	case ast.PropKindGet:
		return "get"
	case ast.PropKindSet:
		return "set"
	default:
		return "init"
	}
}

func importKindString(k ast.ImportKind) string {
	if k == ast.ImportKindType {
		return "type"
	}
	return "value"
}

func exportKindString(k ast.ExportKind) string {
	if k == ast.ExportKindType {
		return "type"
	}
	return "value"
}
