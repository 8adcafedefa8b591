// seehuhn.de/go/otsvg - support for the artwork in the OpenType "SVG " table
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pathdata

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FlipY maps glyph design space (y axis pointing up) to SVG space (y axis
// pointing down).
var FlipY = matrix.Matrix{1, 0, 0, -1, 0, 0}

// Transform returns the path p with the matrix m applied to all control
// points.  The returned path reads from p and can only be iterated while
// p is still valid.
func Transform(m matrix.Matrix, p path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		for cmd, pts := range p {
			out := buf[:len(pts)]
			for i, pt := range pts {
				out[i] = vec.Vec2{
					X: m[0]*pt.X + m[2]*pt.Y + m[4],
					Y: m[1]*pt.X + m[3]*pt.Y + m[5],
				}
			}
			if !yield(cmd, out) {
				return
			}
		}
	}
}
