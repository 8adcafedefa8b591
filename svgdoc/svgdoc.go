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

// Package svgdoc applies small text-level edits to externally authored SVG
// documents before they are stored in an "SVG " table, and after they are
// extracted from one.
//
// The documents come from arbitrary drawing applications, so no validating
// parser is used.  All edits are anchored on the first <svg> opening tag
// by regular expressions.  Input must contain a single <svg> root element;
// use [Check] to reject anything else up front.
package svgdoc

import (
	"fmt"
	"regexp"
	"strings"

	"seehuhn.de/go/sfnt/glyph"
)

var idValue = regexp.MustCompile(`(?s)<svg[^>]+?(id=".*?").+?>`)

// SetID gives the document's <svg> element the id by which the "SVG "
// table refers to glyph artwork, "glyph" followed by the glyph ID.  An
// existing id attribute in the opening tag has its value replaced,
// otherwise the attribute is inserted right after the tag name.
func SetID(doc string, gid glyph.ID) string {
	id := fmt.Sprintf(`id="glyph%d"`, gid)
	if m := idValue.FindStringSubmatchIndex(doc); m != nil {
		return doc[:m[2]] + id + doc[m[3]:]
	}
	return strings.Replace(doc, "<svg", "<svg "+id, 1)
}

// The value of the viewBox attribute is a list of four numbers min-x,
// min-y, width and height, separated by whitespace and/or a comma.
var viewBoxAttr = regexp.MustCompile(
	`(?s)(<svg[^>]*?)(\s*viewBox=["|'][-\d,. ]+["|'])(.+?>)`)

// StripViewBox removes the viewBox attribute from the <svg> opening tag,
// together with the whitespace preceding it.  All other attributes keep
// their order.  Documents without a viewBox are returned unchanged.
func StripViewBox(doc string) string {
	return viewBoxAttr.ReplaceAllString(doc, "${1}${3}")
}

var viewBoxValue = regexp.MustCompile(`(?s)viewBox=["|'][\d, ]+?["|']`)

// ResetViewBoxMinY sets the second field (min-y) of the document's first
// viewBox value to 0, leaving the other three fields alone.  Documents
// without a viewBox are returned unchanged.
//
// Only values consisting of digits, commas and spaces are recognized; a
// viewBox with negative fields is left as it is.
func ResetViewBoxMinY(doc string) string {
	vb := viewBoxValue.FindString(doc)
	if vb == "" {
		return doc
	}
	fields := strings.Fields(vb)
	if len(fields) < 2 {
		return doc
	}
	fields[1] = "0"
	return strings.ReplaceAll(doc, vb, strings.Join(fields, " "))
}

var (
	xmlHeader    = regexp.MustCompile(`<\?xml .*\?>`)
	enableBkgrd  = regexp.MustCompile(` enable-background=["|'][new\d, ]+["|']`)
	wsBetweenTag = regexp.MustCompile(`>\s+<`)
	wsRun        = regexp.MustCompile(`\s+`)
)

// Cleanup normalizes a document for storage inside a font: the XML
// declaration and all enable-background attributes are removed, white
// space between elements is dropped, and all remaining runs of white
// space collapse to a single space.
//
// Cleanup makes a single pass and is meant to run after [SetID] and
// [StripViewBox].
func Cleanup(doc string) string {
	doc = xmlHeader.ReplaceAllString(doc, "")
	doc = enableBkgrd.ReplaceAllString(doc, "")
	doc = wsBetweenTag.ReplaceAllString(doc, "><")
	doc = wsRun.ReplaceAllString(doc, " ")
	return doc
}
