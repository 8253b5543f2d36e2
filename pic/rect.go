// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pic

import (
	"fmt"

	"pictor.dev/pictor/math32"
)

// Rect is an axis-aligned rectangle given by its center point and
// total size (width, height).
type Rect struct {
	Center math32.Vector2
	Size   math32.Vector2
}

// NewRect returns a [Rect] with the given center, width, and height.
// A negative width or height fails with [ErrInvalidGeometry].
func NewRect(center math32.Vector2, width, height float32) (Rect, error) {
	if width < 0 || height < 0 {
		return Rect{}, fmt.Errorf("%w: rect size %g x %g", ErrInvalidGeometry, width, height)
	}
	return Rect{Center: center, Size: math32.Vec2(width, height)}, nil
}

func (r Rect) isShape() {}

// BBox returns the box centered at Center spanning Size.
func (r Rect) BBox() math32.Box2 {
	return math32.B2FromCenterSize(r.Center, r.Size)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect [center: %v, width: %g, height: %g]", r.Center, r.Size.X, r.Size.Y)
}
