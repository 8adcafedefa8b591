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

	"seehuhn.de/go/sfnt/glyph"
)

// ByGlyphName expands the table's glyph ID ranges and returns each covered
// glyph's document body, keyed by glyph name.
//
// Names are taken from glyphOrder, indexed by glyph ID.  A glyph ID at or
// beyond the end of glyphOrder gets a synthesized name of the form
// "_unnamedN", with N counting from 1, and a warning is recorded for it.
// Since every glyph ID resolves to a distinct name, no document can
// displace another.
//
// The warnings are advisory; the returned map is complete even when
// warnings are present.  Documents with an inverted glyph ID range cover
// no glyphs and contribute nothing.
func (t *Table) ByGlyphName(glyphOrder []string) (map[string]string, []*MissingNameWarning) {
	docs := make(map[string]string)
	var warnings []*MissingNameWarning

	numUnnamed := 0
	for _, doc := range t.Docs {
		if doc.First > doc.Last {
			continue
		}
		for gid := doc.First; ; gid++ {
			var name string
			if int(gid) < len(glyphOrder) {
				name = glyphOrder[gid]
			} else {
				numUnnamed++
				name = fmt.Sprintf("_unnamed%d", numUnnamed)
				warnings = append(warnings, &MissingNameWarning{
					GID:  gid,
					Name: name,
				})
			}
			docs[name] = doc.Body

			if gid == doc.Last {
				break
			}
		}
	}
	return docs, warnings
}

// MissingNameWarning reports that the table references a glyph ID which
// the font's glyph order does not contain.  The document is still
// returned, under the synthesized name in the Name field.
type MissingNameWarning struct {
	GID  glyph.ID
	Name string
}

func (w *MissingNameWarning) Error() string {
	return fmt.Sprintf("otsvg: no glyph name for GID %d, artwork saved as %q",
		w.GID, w.Name)
}
