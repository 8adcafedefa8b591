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

import "strings"

// Nested returns the glyph names which must be moved to a second output
// directory so that files named after the glyphs do not overwrite each
// other on a case-insensitive file system.
//
// Names are processed in the given order; of the names sharing a lowercase
// form, the first stays in the main set and all later ones are returned,
// in their original case and order.  There is only one overflow set: with
// three or more names sharing a lowercase form ("the", "The", "THE"), the
// second and third both end up in it and still collide with each other.
// Callers relying on the established directory layout expect exactly this
// split.
func Nested(names []string) []string {
	seen := make(map[string]bool, len(names))
	var nested []string
	for _, name := range names {
		lower := strings.ToLower(name)
		if seen[lower] {
			nested = append(nested, name)
		}
		seen[lower] = true
	}
	return nested
}
