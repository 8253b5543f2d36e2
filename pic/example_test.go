// Copyright 2026 The Pictor Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pic_test

import (
	"fmt"

	"pictor.dev/pictor/math32"
	"pictor.dev/pictor/pic"
)

func Example() {
	ln := pic.NewLine(math32.Vec2(0, 0), math32.Vec2(1, 1))
	c, _ := pic.NewCircle(math32.Vec2(0, 0), 10)
	p := pic.New(ln, c)
	fmt.Println(p)
	fmt.Println(p.BBox())
	// Output:
	// [Line [start: (0, 0), end: (1, 1)], Circle [center: (0, 0), radius: 10]]
	// (-10, -10)-(10, 10)
}

func ExampleClipped() {
	c, _ := pic.NewCircle(math32.Vec2(0, 0), 10)
	cl := pic.NewClipped(pic.New(c), math32.B2(0, 0, 5, 5))
	fmt.Println(cl.BBox())
	// Output:
	// (0, 0)-(5, 5)
}
