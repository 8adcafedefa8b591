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

// Package render generates standalone SVG documents from the glyph
// outlines of one or more fonts.
//
// Each selected glyph yields one document; fonts beyond the first
// contribute additional <path> elements in their own fill color, so that
// several masters of a design can be stacked into layered artwork.
package render

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/otsvg"
	"seehuhn.de/go/otsvg/pathdata"
)

const xmlns = "http://www.w3.org/2000/svg"

// Layer pairs a font with the fill color for the glyph outlines taken
// from it.
type Layer struct {
	Font  *sfnt.Font
	Color Color
}

// Options selects and adjusts the glyphs to render.
type Options struct {
	// Include, if non-empty, is the full list of glyph names to render,
	// replacing the computed glyph set.
	Include []string

	// Add lists glyph names to render in addition to the intersection of
	// the layers' glyph sets.  It has no effect together with Union or
	// Include.
	Add []string

	// Exclude lists glyph names to skip.  The ".notdef" glyph is always
	// skipped.
	Exclude []string

	// Union renders the union of the layers' glyph sets instead of their
	// intersection.
	Union bool

	// GlyphBBox vertically centers the viewBox on the bounding box of
	// the first layer's glyphs, instead of using the font's units per em.
	GlyphBBox bool
}

// Glyphs renders the selected glyphs and returns one SVG document per
// glyph name.  Glyphs with no contours in any layer are left out of the
// result.
//
// Glyph names missing from the fonts' "post" tables are filled in first,
// so the result may use synthetic names like "orn001".
func Glyphs(layers []Layer, opt *Options) (map[string]string, error) {
	if len(layers) == 0 {
		return nil, errors.New("render: no layers")
	}
	if opt == nil {
		opt = &Options{}
	}
	for _, l := range layers {
		if err := l.Color.check(); err != nil {
			return nil, err
		}
	}

	sets := make([]map[string]glyph.ID, len(layers))
	for i, l := range layers {
		sets[i] = glyphSet(l.Font)
	}
	names := selectNames(sets, opt)

	skip := map[string]bool{".notdef": true}
	for _, name := range opt.Exclude {
		skip[name] = true
	}

	viewBox := viewBox(layers[0].Font, opt.GlyphBBox)

	docs := make(map[string]string, len(names))
	for _, name := range names {
		if skip[name] {
			continue
		}

		var b strings.Builder
		fmt.Fprintf(&b, "<svg xmlns=\"%s\" viewBox=\"%s\">\n", xmlns, viewBox)
		hasArtwork := false
		for i, l := range layers {
			gid, ok := sets[i][name]
			if !ok || l.Font.Outlines == nil {
				continue
			}

			outline := pathdata.Transform(pathdata.FlipY, l.Font.Outlines.Path(gid))
			d, err := pathdata.FromPath(outline)
			if err != nil {
				return nil, fmt.Errorf("render: glyph %q: %w", name, err)
			}
			if d == "" {
				continue
			}

			fill, opacity := l.Color.split()
			fmt.Fprintf(&b, "\t<path%s fill=\"#%s\" d=\"%s\"/>\n",
				opacity, fill, d)
			hasArtwork = true
		}
		b.WriteString("</svg>")

		if !hasArtwork {
			continue
		}
		docs[name] = b.String()
	}
	return docs, nil
}

// glyphSet maps the font's glyph names to glyph IDs.  Missing names are
// filled in by the sfnt library.
func glyphSet(f *sfnt.Font) map[string]glyph.ID {
	f.EnsureGlyphNames()
	set := make(map[string]glyph.ID, f.NumGlyphs())
	for i := 0; i < f.NumGlyphs(); i++ {
		gid := glyph.ID(i)
		set[f.GlyphName(gid)] = gid
	}
	return set
}

func selectNames(sets []map[string]glyph.ID, opt *Options) []string {
	if len(opt.Include) > 0 {
		names := slices.Clone(opt.Include)
		slices.Sort(names)
		return names
	}

	count := make(map[string]int)
	for _, set := range sets {
		for name := range set {
			count[name]++
		}
	}
	var names []string
	for name, n := range count {
		if opt.Union || n == len(sets) {
			names = append(names, name)
		}
	}
	if !opt.Union {
		names = append(names, opt.Add...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// viewBox derives the shared viewBox for all documents from the first
// layer's font.
func viewBox(f *sfnt.Font, glyphBBox bool) string {
	if !glyphBBox {
		return otsvg.DefaultViewBox(f.UnitsPerEm)
	}

	var bbox funit.Rect16
	for _, b := range f.GlyphBBoxes() {
		if b == (funit.Rect16{}) {
			continue
		}
		if bbox == (funit.Rect16{}) {
			bbox = b
			continue
		}
		if b.LLx < bbox.LLx {
			bbox.LLx = b.LLx
		}
		if b.LLy < bbox.LLy {
			bbox.LLy = b.LLy
		}
		if b.URx > bbox.URx {
			bbox.URx = b.URx
		}
		if b.URy > bbox.URy {
			bbox.URy = b.URy
		}
	}
	return otsvg.BoundsViewBox(bbox, f.UnitsPerEm)
}
