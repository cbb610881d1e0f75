// Copyright 2025 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"sync"
)

// bufferPool provides a pool of reusable byte buffers for JSON operations.
// This reduces allocations during frequent marshal/unmarshal operations.
var bufferPool = sync.Pool{
	New: func() any {
		// Pre-allocate 1KB buffer for typical JSON objects
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// getBuffer retrieves a buffer from the pool.
func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// GetBuffer exports getBuffer for packages that assemble their own JSON
// text and want to share this pool rather than keep a second one (see
// v1/dump, which serializes an AST through this pooled-buffer discipline).
func GetBuffer() *bytes.Buffer { return getBuffer() }

// PutBuffer exports putBuffer; see GetBuffer.
func PutBuffer(buf *bytes.Buffer) { putBuffer(buf) }

// putBuffer returns a buffer to the pool after resetting it.
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
