// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pic

import (
	"fmt"

	"pictor.dev/pictor/math32"
)

// Circle is a circle given by its center point and radius.
type Circle struct {
	Center math32.Vector2
	Radius float32
}

// NewCircle returns a [Circle] with the given center and radius.
// A negative radius fails with [ErrInvalidGeometry].
func NewCircle(center math32.Vector2, radius float32) (Circle, error) {
	if radius < 0 {
		return Circle{}, fmt.Errorf("%w: circle radius %g", ErrInvalidGeometry, radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

func (c Circle) isShape() {}

// BBox returns the box extending Radius out from Center on both axes.
func (c Circle) BBox() math32.Box2 {
	return math32.B2(c.Center.X-c.Radius, c.Center.Y-c.Radius,
		c.Center.X+c.Radius, c.Center.Y+c.Radius)
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle [center: %v, radius: %g]", c.Center, c.Radius)
}
