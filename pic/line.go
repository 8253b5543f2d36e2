// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pic

import (
	"fmt"

	"pictor.dev/pictor/math32"
)

// Line is a straight line segment between two endpoints.
type Line struct {
	Start math32.Vector2
	End   math32.Vector2
}

// NewLine returns a [Line] between the two endpoints. Any pair of
// endpoints is valid, including coincident ones.
func NewLine(start, end math32.Vector2) Line {
	return Line{Start: start, End: end}
}

func (l Line) isShape() {}

// BBox returns the box spanning the two endpoints. The result does
// not depend on which endpoint is Start and which is End.
func (l Line) BBox() math32.Box2 {
	return math32.B2FromPoints(l.Start, l.End)
}

func (l Line) String() string {
	return fmt.Sprintf("Line [start: %v, end: %v]", l.Start, l.End)
}
