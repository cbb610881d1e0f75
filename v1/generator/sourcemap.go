// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package generator

import (
	"strings"

	"module/v1/source"
)

// Mapping is one token emission's source-map entry: the printed
// (destination) position plus the original (source) position it was
// generated from, per §4.10's `(dst_line, dst_col, src_line, src_col,
// src_id)` tuple.
type Mapping struct {
	DstLine, DstCol int32
	SrcLine, SrcCol int32
	SrcId           source.Id
}

// SourceMapBuilder accumulates mappings during one generator pass and
// serializes them into the standard Base64-VLQ "mappings" string,
// following the chunk-builder idiom of
// 1435c621_withastro-compiler__internal-printer-print-to-js.go.go's
// sourcemap.ChunkBuilder: the printer calls Add once per token it
// emits, in output order, and the builder does the position-delta
// bookkeeping no caller should have to repeat.
type SourceMapBuilder struct {
	mappings []Mapping
}

// NewSourceMapBuilder returns an empty builder.
func NewSourceMapBuilder() *SourceMapBuilder {
	return &SourceMapBuilder{}
}

// Add records one token's destination/source position pair.
func (b *SourceMapBuilder) Add(dstLine, dstCol, srcLine, srcCol int32, srcId source.Id) {
	b.mappings = append(b.mappings, Mapping{
		DstLine: dstLine, DstCol: dstCol,
		SrcLine: srcLine, SrcCol: srcCol,
		SrcId: srcId,
	})
}

// Mappings returns every recorded mapping, in emission order, mostly for
// tests that want to assert on tuple content directly rather than decode
// the serialized string.
func (b *SourceMapBuilder) Mappings() []Mapping { return b.mappings }

// Chunk is a finished source map fragment: the file names referenced (in
// the order first seen, giving each an implicit index for the "sources"
// field) and the encoded "mappings" string.
type Chunk struct {
	Sources  []string
	Mappings string
}

// Generate serializes the accumulated mappings into a Chunk. name(id)
// resolves a source.Id to the display name the consuming map's "sources"
// array should carry.
func (b *SourceMapBuilder) Generate(name func(source.Id) string) Chunk {
	sourceIndex := make(map[source.Id]int)
	var sources []string
	indexOf := func(id source.Id) int {
		if idx, ok := sourceIndex[id]; ok {
			return idx
		}
		idx := len(sources)
		sourceIndex[id] = idx
		sources = append(sources, name(id))
		return idx
	}

	var out strings.Builder
	prevDstLine := int32(0)
	prevDstCol := int32(0)
	prevSrcIdx := 0
	prevSrcLine := int32(0)
	prevSrcCol := int32(0)
	firstOnLine := true

	for _, m := range b.mappings {
		for prevDstLine < m.DstLine {
			out.WriteByte(';')
			prevDstLine++
			prevDstCol = 0
			firstOnLine = true
		}
		if !firstOnLine {
			out.WriteByte(',')
		}
		firstOnLine = false

		srcIdx := indexOf(m.SrcId)
		encodeVLQ(&out, int64(m.DstCol-prevDstCol))
		encodeVLQ(&out, int64(srcIdx-prevSrcIdx))
		encodeVLQ(&out, int64(m.SrcLine-prevSrcLine))
		encodeVLQ(&out, int64(m.SrcCol-prevSrcCol))

		prevDstCol = m.DstCol
		prevSrcIdx = srcIdx
		prevSrcLine = m.SrcLine
		prevSrcCol = m.SrcCol
	}

	return Chunk{Sources: sources, Mappings: out.String()}
}

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeVLQ appends n to out using the source-map Base64-VLQ encoding:
// the sign occupies the low bit, the value is shifted left one, and the
// result is chunked into 5-bit groups (continuation bit in bit 5) before
// each group is mapped through the Base64 alphabet.
func encodeVLQ(out *strings.Builder, n int64) {
	v := uint64(n)
	if n < 0 {
		v = uint64(-n)<<1 | 1
	} else {
		v = v << 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		out.WriteByte(base64Chars[digit])
		if v == 0 {
			break
		}
	}
}
