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

package otsvg

import (
	"fmt"

	"seehuhn.de/go/postscript/funit"
)

// DefaultViewBox returns the viewBox value for glyphs drawn in a square of
// unitsPerEm design units.  Glyph outlines have the y axis pointing up
// while SVG has it pointing down, so the square extends from -unitsPerEm
// to 0 vertically.
//
// A unitsPerEm of 0 means the value is not known; 1000 is used instead.
func DefaultViewBox(unitsPerEm uint16) string {
	if unitsPerEm == 0 {
		unitsPerEm = 1000
	}
	u := int(unitsPerEm)
	return fmt.Sprintf("0 -%d %d %d", u, u, u)
}

// BoundsViewBox returns the viewBox value which vertically centers the
// glyphs' shared bounding box, given in y-up design units.  A zero bbox
// falls back to DefaultViewBox.
func BoundsViewBox(bbox funit.Rect16, unitsPerEm uint16) string {
	if bbox == (funit.Rect16{}) {
		return DefaultViewBox(unitsPerEm)
	}
	return fmt.Sprintf("%d %d %d %d",
		bbox.LLx,
		-bbox.URy,
		int(bbox.URx)-int(bbox.LLx),
		int(bbox.URy)-int(bbox.LLy))
}
