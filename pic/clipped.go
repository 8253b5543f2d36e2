// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pic

import (
	"fmt"

	"pictor.dev/pictor/math32"
)

// Clipped is a nested [Picture] restricted to a rectangular clip
// region. A Clipped shape owns its nested Picture exclusively, and
// the nesting may recurse: the nested Picture can itself contain
// Clipped shapes. The structure is always a finite tree.
type Clipped struct {
	Picture Picture
	Clip    math32.Box2
}

// NewClipped returns a [Clipped] restricting the given picture to the
// clip region. The picture is copied, so later changes to the
// caller's slice do not affect the shape.
func NewClipped(picture Picture, clip math32.Box2) Clipped {
	return Clipped{Picture: New(picture...), Clip: clip}
}

func (c Clipped) isShape() {}

// BBox returns the bounding box of the nested picture intersected
// with the clip region. The result is always contained in Clip, and
// is empty when the picture lies entirely outside of it.
func (c Clipped) BBox() math32.Box2 {
	return c.Clip.Intersect(c.Picture.BBox())
}

func (c Clipped) String() string {
	return fmt.Sprintf("Clipped [picture: %v, clip: %v]", c.Picture, c.Clip)
}
