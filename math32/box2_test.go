// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestB2(t *testing.T) {
	assert.Equal(t, Box2{Vec2(1, 2), Vec2(3, 4)}, B2(1, 2, 3, 4))
	assert.Equal(t, B2(-2, 1, 4, 5), B2FromCenterSize(Vec2(1, 3), Vec2(6, 4)))
	assert.Equal(t, B2(0, 0, 1, 1), B2FromPoints(Vec2(1, 0), Vec2(0, 1)))
	assert.Equal(t, B2Empty(), B2FromPoints())
	assert.Equal(t, B2(2, 3, 5, 7), B2FromRect(image.Rect(2, 3, 5, 7)))
	assert.Equal(t, B2(1, 2, 3, 4), B2FromFixed(fixed.R(1, 2, 3, 4)))
}

func TestBox2Empty(t *testing.T) {
	e := B2Empty()
	assert.True(t, e.IsEmpty())
	assert.False(t, B2(0, 0, 1, 1).IsEmpty())
	// a zero-area box is degenerate but not empty
	assert.False(t, B2(1, 1, 1, 1).IsEmpty())
}

func TestBox2Union(t *testing.T) {
	a := B2(0, 0, 2, 2)
	b := B2(1, 1, 3, 3)
	c := B2(-1, 4, 5, 6)
	e := B2Empty()

	// empty is the identity on both sides, against literal boxes
	assert.Equal(t, a, e.Union(a))
	assert.Equal(t, a, a.Union(e))
	assert.Equal(t, e, e.Union(e))

	assert.Equal(t, B2(0, 0, 3, 3), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, a.Union(b).Union(c), a.Union(b.Union(c)))
	assert.Equal(t, B2(-1, 0, 5, 6), a.Union(c))
}

func TestBox2Intersect(t *testing.T) {
	assert.Equal(t, B2(2, 2, 4, 4), B2(0, 0, 4, 4).Intersect(B2(2, 2, 6, 6)))
	assert.Equal(t, B2(1, 1, 3, 3), B2(0, 0, 10, 10).Intersect(B2(1, 1, 3, 3)))

	// disjoint boxes intersect in the canonical empty box
	assert.Equal(t, B2Empty(), B2(0, 0, 1, 1).Intersect(B2(2, 2, 3, 3)))
	assert.Equal(t, B2Empty(), B2(0, 0, 1, 1).Intersect(B2Empty()))

	// boxes touching on an edge intersect in a zero-area box
	assert.Equal(t, B2(1, 0, 1, 1), B2(0, 0, 1, 1).Intersect(B2(1, 0, 2, 1)))
}

func TestBox2Expand(t *testing.T) {
	b := B2Empty()
	b.ExpandByPoint(Vec2(1, 2))
	assert.Equal(t, B2(1, 2, 1, 2), b)
	b.ExpandByPoint(Vec2(-1, 0))
	assert.Equal(t, B2(-1, 0, 1, 2), b)

	b.ExpandByBox(B2(0, 0, 4, 4))
	assert.Equal(t, B2(-1, 0, 4, 4), b)

	b.ExpandByScalar(1)
	assert.Equal(t, B2(-2, -1, 5, 5), b)
}

func TestBox2Geometry(t *testing.T) {
	b := B2(0, 2, 4, 6)
	assert.Equal(t, Vec2(2, 4), b.Center())
	assert.Equal(t, Vec2(4, 4), b.Size())
	assert.Equal(t, B2(1, 3, 5, 7), b.Translate(Vec2(1, 1)))
	assert.Equal(t, B2(0, 2, 4, 6), B2(4, 6, 0, 2).Canon())

	assert.True(t, b.ContainsPoint(Vec2(2, 4)))
	assert.False(t, b.ContainsPoint(Vec2(5, 4)))
	assert.True(t, b.ContainsBox(B2(1, 3, 3, 5)))
	assert.False(t, b.ContainsBox(B2(1, 1, 3, 5)))
	assert.True(t, b.IntersectsBox(B2(3, 5, 9, 9)))
	assert.False(t, b.IntersectsBox(B2(5, 7, 9, 9)))
}

func TestBox2Conversions(t *testing.T) {
	b := B2(0.5, 1.5, 2.5, 3.5)
	assert.Equal(t, image.Rect(0, 1, 3, 4), b.ToRect())
	assert.Equal(t, fixed.R(1, 2, 3, 4), B2(1, 2, 3, 4).ToFixed())
}

func TestBox2String(t *testing.T) {
	assert.Equal(t, "(0, 0)-(5, 5)", B2(0, 0, 5, 5).String())
	assert.Equal(t, "(+Inf, +Inf)-(-Inf, -Inf)", B2Empty().String())
}
