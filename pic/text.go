// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pic

import (
	"fmt"
	"strconv"

	"pictor.dev/pictor/math32"
)

// Text is a text string anchored at a location. Font metrics are not
// modeled: for bounds purposes text occupies the zero-area box at its
// location.
type Text struct {
	Pos  math32.Vector2
	Text string
}

// NewText returns a [Text] with the given location and content.
func NewText(pos math32.Vector2, text string) Text {
	return Text{Pos: pos, Text: text}
}

func (t Text) isShape() {}

// BBox returns the zero-area box at Pos.
func (t Text) BBox() math32.Box2 {
	return math32.Box2{Min: t.Pos, Max: t.Pos}
}

func (t Text) String() string {
	// content is quoted so that it can never collide with the
	// surrounding field punctuation
	return fmt.Sprintf("Text [location: %v, content: %s]", t.Pos, strconv.Quote(t.Text))
}
