// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum
// coordinates. Y grows downward, so Min.Y is the top edge of the box
// and Max.Y is the bottom edge.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new empty [Box2] (min +Infinity, max -Infinity).
// The empty box is the identity value under [Box2.Union].
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromPoints returns a new [Box2] spanning the given points.
// With no points it returns the empty box.
func B2FromPoints(points ...Vector2) Box2 {
	bx := B2Empty()
	for _, pt := range points {
		bx.ExpandByPoint(pt)
	}
	return bx
}

// B2FromCenterSize returns a new [Box2] with the given center point
// and total size per dimension.
func B2FromCenterSize(center, size Vector2) Box2 {
	half := size.MulScalar(0.5)
	return Box2{center.Sub(half), center.Add(half)}
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	b := Box2{}
	b.Min.SetFixed(rect.Min)
	b.Max.SetFixed(rect.Max)
	return b
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// ExpandByPoint expands this bounding box as needed to include the given point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox expands this bounding box as needed to include the given box.
func (b *Box2) ExpandByBox(box Box2) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// ExpandByScalar expands this bounding box by the given scalar on all sides.
func (b *Box2) ExpandByScalar(scalar float32) {
	b.Min.X -= scalar
	b.Min.Y -= scalar
	b.Max.X += scalar
	b.Max.Y += scalar
}

// Union returns the smallest box containing both b and other.
// An empty operand is the identity: the other operand is returned
// unchanged, so the coordinates of an empty box never shrink or
// distort a real one. Union is commutative and associative.
func (b Box2) Union(other Box2) Box2 {
	switch {
	case b.IsEmpty():
		return other
	case other.IsEmpty():
		return b
	}
	other.Min.SetMin(b.Min)
	other.Max.SetMax(b.Max)
	return other
}

// Intersect returns the overlapping region of b and other.
// Boxes that do not overlap intersect in the canonical empty box,
// so the result always compares equal to [B2Empty] in that case.
func (b Box2) Intersect(other Box2) Box2 {
	other.Min.SetMax(b.Min)
	other.Max.SetMin(b.Max)
	if other.IsEmpty() {
		return B2Empty()
	}
	return other
}

// Canon returns the canonical version of the box, with minimum and
// maximum coordinates swapped if necessary so that it is well-formed.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// Center returns the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the size of this bounding box: the vector from its
// minimum point to its maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether this bounding box contains the given point.
func (b Box2) ContainsPoint(point Vector2) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y {
		return false
	}
	return true
}

// ContainsBox returns whether this bounding box contains the other box.
func (b Box2) ContainsBox(box Box2) bool {
	return (b.Min.X <= box.Min.X) && (box.Max.X <= b.Max.X) &&
		(b.Min.Y <= box.Min.Y) && (box.Max.Y <= b.Max.Y)
}

// IntersectsBox returns whether the other box intersects this one.
func (b Box2) IntersectsBox(other Box2) bool {
	if other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y {
		return false
	}
	return true
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// ToRect returns the [image.Rectangle] version of this box, using
// floor for min and ceil for max.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// ToFixed returns the [fixed.Rectangle26_6] version of this box.
func (b Box2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.Min.ToFixed(), Max: b.Max.ToFixed()}
}

// String returns the box in the form "(minX, minY)-(maxX, maxY)".
// Empty boxes print their raw infinite coordinates.
func (b Box2) String() string {
	return fmt.Sprintf("%v-%v", b.Min, b.Max)
}
