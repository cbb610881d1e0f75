// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import "module/v1/source"

// Comment is one source comment captured by a parser adapter. Comments
// are not arena nodes: they never participate in a traversal and carry
// no children, so they are looked up by position instead of being
// spliced into the tree.
type Comment struct {
	Range source.Range
	Text  string
	Block bool // true for /* ... */, false for // ...
}

// CommentMap implements the one attachment policy this substrate relies
// on: a node's leading comment, if any, is the single comment closest to
// (but strictly before) that node's start position. A comment more than
// one node away is simply not attached to anything — there is no
// "dangling trailing comment" concept here, matching spec.md's framing
// that only leading-comment attachment is load-bearing for tests.
type CommentMap struct {
	comments []Comment
}

// NewCommentMap takes ownership of a copy of comments; they need not be
// pre-sorted.
func NewCommentMap(comments []Comment) *CommentMap {
	cp := make([]Comment, len(comments))
	copy(cp, comments)
	return &CommentMap{comments: cp}
}

// Leading returns the latest comment strictly before start, if any.
func (m *CommentMap) Leading(start source.Loc) (Comment, bool) {
	var best Comment
	found := false
	for _, c := range m.comments {
		if !locBefore(c.Range.End, start) {
			continue
		}
		if !found || locBefore(best.Range.End, c.Range.End) {
			best = c
			found = true
		}
	}
	return best, found
}

// LeadingFor is a convenience wrapping Leading for an already-resolved
// node.
func (m *CommentMap) LeadingFor(n Node) (Comment, bool) {
	return m.Leading(n.Range().Start)
}

func locBefore(a, b source.Loc) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Col < b.Col
}
