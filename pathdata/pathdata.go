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

// Package pathdata converts glyph outlines to SVG path data.
// https://www.w3.org/TR/SVG11/paths.html#PathData
package pathdata

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromPath converts one glyph's outline into the value of an SVG "d"
// attribute.  The path is consumed in a single pass.
//
// Coordinates are expected to be in SVG orientation (y axis pointing
// down); see [Transform] and [FlipY] for mapping glyph design space.
//
// Line segments which do not move the current point are dropped, and
// horizontal and vertical lines use the shorter H and V commands.  A path
// with no contours yields the empty string.
//
// The first command of a contour must be a move.  Any line, curve or
// close command arriving before the first move makes the whole conversion
// fail with an [*InvalidPathError].
func FromPath(p path.Path) (string, error) {
	var d strings.Builder
	var cur vec.Vec2
	started := false // seen the first move
	haveCur := false // cur is valid, i.e. no close since the last move

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			d.WriteByte('M')
			writeNums(&d, pts[0].X, pts[0].Y)
			cur = pts[0]
			started = true
			haveCur = true

		case path.CmdLineTo:
			if !started {
				return "", badPath("line")
			}
			pt := pts[0]
			switch {
			case haveCur && pt == cur:
				// drop the degenerate segment
			case haveCur && pt.X == cur.X:
				d.WriteByte('V')
				writeNums(&d, pt.Y)
			case haveCur && pt.Y == cur.Y:
				d.WriteByte('H')
				writeNums(&d, pt.X)
			default:
				d.WriteByte('L')
				writeNums(&d, pt.X, pt.Y)
			}
			cur = pt
			haveCur = true

		case path.CmdQuadTo:
			if !started {
				return "", badPath("curve")
			}
			d.WriteByte('Q')
			writeNums(&d, pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
			cur = pts[1]
			haveCur = true

		case path.CmdCubeTo:
			if !started {
				return "", badPath("curve")
			}
			d.WriteByte('C')
			writeNums(&d,
				pts[0].X, pts[0].Y,
				pts[1].X, pts[1].Y,
				pts[2].X, pts[2].Y)
			cur = pts[2]
			haveCur = true

		case path.CmdClose:
			if !started {
				return "", badPath("close")
			}
			d.WriteByte('Z')
			// there is no current point until the next move
			haveCur = false
		}
	}
	return d.String(), nil
}

// writeNums appends the coordinates to d, separated by single spaces.
// Integral values are written without a decimal point, all others with
// the smallest number of digits that survives a round trip.
func writeNums(d *strings.Builder, nums ...float64) {
	for i, x := range nums {
		if i > 0 {
			d.WriteByte(' ')
		}
		d.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	}
}

// InvalidPathError indicates that a glyph outline contained drawing
// commands in an invalid order.
type InvalidPathError struct {
	Reason string
}

func (err *InvalidPathError) Error() string {
	return "pathdata: " + err.Reason
}

func badPath(op string) error {
	return &InvalidPathError{op + " command before the first move"}
}
