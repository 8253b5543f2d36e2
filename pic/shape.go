// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pic

import (
	"errors"
	"fmt"

	"pictor.dev/pictor/math32"
)

// Shape is one drawable element of a [Picture]. The set of shapes is
// closed: only [Circle], [Rect], [Line], [Text], and [Clipped]
// implement it, so a type switch over those five is exhaustive.
type Shape interface {
	fmt.Stringer

	// BBox returns the tight axis-aligned bounding box of the shape.
	BBox() math32.Box2

	// isShape closes the set of implementations to this package.
	isShape()
}

// ErrInvalidGeometry is returned by shape constructors for
// geometrically impossible parameters, such as a negative radius.
var ErrInvalidGeometry = errors.New("invalid geometry")
