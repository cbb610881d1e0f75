// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package source

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/sirupsen/logrus"
)

// Manager owns (name, buffer) pairs indexed by Id and accumulates
// diagnostics emitted by later stages. Diagnostic emission is
// order-preserving but, per the spec, not required to be safe for
// concurrent writers; Manager nonetheless serializes access behind a mutex
// so a driver that fans compilation of independent files out across
// goroutines (see cmd/astc) can still share one Manager per shard safely.
type Manager struct {
	mu      sync.Mutex
	entries []entry
	byName  map[string]Id

	diagnostics []Diagnostic
	numErrors   int
	numWarnings int
	numNotes    int

	log *logrus.Entry
}

// NewManager creates an empty Manager. log may be nil, in which case a
// disabled logger is used (diagnostics are still accumulated; only the
// structured log lines are suppressed).
func NewManager(log *logrus.Entry) *Manager {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel + 1) // effectively silent
		log = logrus.NewEntry(l)
	}
	return &Manager{
		byName: make(map[string]Id),
		log:    log,
	}
}

// AddSource registers a new source buffer under name and returns its Id.
func (m *Manager) AddSource(name string, buf []byte) Id {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := Id(len(m.entries))
	m.entries = append(m.entries, entry{
		name:       name,
		buffer:     buf,
		digest:     digest.FromBytes(buf),
		lineStarts: lineStartTable(buf),
	})
	m.byName[name] = id
	m.log.WithFields(logrus.Fields{"source_id": id, "name": name, "bytes": len(buf)}).Debug("source added")
	return id
}

// lineStartTable returns the byte offset of the first byte of each line in
// buf, so a 1-based (line, column) Loc can be converted back to a byte
// offset without rescanning the buffer on every lookup.
func lineStartTable(buf []byte) []int32 {
	starts := []int32{0}
	for i, b := range buf {
		if b == '\n' {
			starts = append(starts, int32(i+1))
		}
	}
	return starts
}

// Name returns the registered name for id.
func (m *Manager) Name(id Id) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 0 || int(id) >= len(m.entries) {
		return "", false
	}
	return m.entries[id].name, true
}

// Buffer returns the registered buffer for id.
func (m *Manager) Buffer(id Id) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 0 || int(id) >= len(m.entries) {
		return nil, false
	}
	return m.entries[id].buffer, true
}

// Digest returns the content digest recorded when id was added.
func (m *Manager) Digest(id Id) (digest.Digest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 0 || int(id) >= len(m.entries) {
		return "", false
	}
	return m.entries[id].digest, true
}

// Offset computes the byte offset of l within the source registered as id,
// using the line-start table built when the source was added. It reports
// false if id is unregistered or l.Line falls outside the buffer's line
// count, so a caller (e.g. v1/dump, rendering spec.md §6's byte-offset
// range convention) can fall back to omitting an unresolvable range rather
// than computing a wrong one.
func (m *Manager) Offset(id Id, l Loc) (int32, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id < 0 || int(id) >= len(m.entries) {
		return 0, false
	}
	e := &m.entries[id]
	if l.Line < 1 || int(l.Line) > len(e.lineStarts) {
		return 0, false
	}
	return e.lineStarts[l.Line-1] + (l.Col - 1), true
}

// LookupByName returns the Id registered under name, if any.
func (m *Manager) LookupByName(name string) (Id, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.byName[name]
	return id, ok
}

func (m *Manager) emit(kind Kind, r Range, msg string) {
	m.mu.Lock()
	d := Diagnostic{Kind: kind, Range: r, Message: msg}
	if r.File != Invalid && int(r.File) < len(m.entries) {
		d.Digest = m.entries[r.File].digest
	}
	m.diagnostics = append(m.diagnostics, d)
	switch kind {
	case KindError:
		m.numErrors++
	case KindWarning:
		m.numWarnings++
	case KindNote:
		m.numNotes++
	}
	log := m.log
	m.mu.Unlock()

	fields := logrus.Fields{
		"file": r.File, "line": r.Start.Line, "col": r.Start.Col, "digest": d.Digest,
	}
	switch kind {
	case KindError:
		log.WithFields(fields).Error(msg)
	case KindWarning:
		log.WithFields(fields).Warn(msg)
	case KindNote:
		log.WithFields(fields).Info(msg)
	}
}

// Error records an error-level diagnostic.
func (m *Manager) Error(r Range, format string, args ...any) { m.emitf(KindError, r, format, args...) }

// Warning records a warning-level diagnostic.
func (m *Manager) Warning(r Range, format string, args ...any) {
	m.emitf(KindWarning, r, format, args...)
}

// Note records an informational diagnostic.
func (m *Manager) Note(r Range, format string, args ...any) { m.emitf(KindNote, r, format, args...) }

func (m *Manager) emitf(kind Kind, r Range, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	m.emit(kind, r, msg)
}

// NumErrors, NumWarnings, NumNotes are read-only observables for a driver
// deciding whether to continue to the next pass.
func (m *Manager) NumErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.numErrors
}

func (m *Manager) NumWarnings() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.numWarnings
}

func (m *Manager) NumNotes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.numNotes
}

// Diagnostics returns a copy of all diagnostics recorded so far, in
// emission order.
func (m *Manager) Diagnostics() []Diagnostic {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Diagnostic, len(m.diagnostics))
	copy(out, m.diagnostics)
	return out
}
