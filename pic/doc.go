// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pic implements a small algebra of pictures: a [Picture] is
// an ordered sequence of [Shape] values (circles, rectangles, lines,
// text, and recursively clipped sub-pictures), with a bounding box
// computation ([Picture.BBox]) and a deterministic textual rendering
// ([Picture.String]).
//
// All values are immutable once constructed: operations that extend a
// Picture return a new Picture and never modify the receiver. Every
// function in this package is pure, so pictures can be shared across
// goroutines without coordination.
package pic
