// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pic

import (
	"strings"

	"pictor.dev/pictor/math32"
)

// Picture is an ordered sequence of shapes. The order is paint order:
// it determines the rendered form, while the bounding box is
// independent of it. A Picture is never modified in place; extending
// operations return a new Picture.
type Picture []Shape

// New returns a [Picture] of the given shapes.
func New(shapes ...Shape) Picture {
	return append(Picture(nil), shapes...)
}

// Append returns a new [Picture] with the given shapes added at the
// end. The receiver is not modified.
func (p Picture) Append(shapes ...Shape) Picture {
	np := make(Picture, 0, len(p)+len(shapes))
	np = append(np, p...)
	return append(np, shapes...)
}

// Insert returns a new [Picture] with the given shape inserted before
// index i, which must be in the range [0, len(p)]. The receiver is
// not modified.
func (p Picture) Insert(i int, sh Shape) Picture {
	np := make(Picture, 0, len(p)+1)
	np = append(np, p[:i]...)
	np = append(np, sh)
	return append(np, p[i:]...)
}

// BBox returns the bounding box of the picture: the union of the
// bounding boxes of all of its shapes, computed recursively through
// any [Clipped] shapes. Union is commutative and associative with the
// empty box as identity, so the result does not depend on shape
// order. An empty picture yields the empty box.
func (p Picture) BBox() math32.Box2 {
	bb := math32.B2Empty()
	for _, sh := range p {
		bb = bb.Union(sh.BBox())
	}
	return bb
}

// String renders the picture in paint order: each shape's String
// form, joined by ", " and wrapped in brackets. Pictures differing in
// any shape field or in shape order render differently.
func (p Picture) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, sh := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sh.String())
	}
	b.WriteByte(']')
	return b.String()
}
