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

package svgdoc

import (
	"errors"
	"regexp"
)

var (
	svgElement  = regexp.MustCompile(`(?s)<svg.+?>.+?</svg>`)
	textElement = regexp.MustCompile(`(?s)<text.+?>.+?</text>`)
)

// ErrNoSVG means a document contains no <svg> element.
var ErrNoSVG = errors.New("svgdoc: no <svg> element")

// ErrTextElement means a document uses a <text> element, which has no
// meaning inside a font and is rejected.
var ErrTextElement = errors.New("svgdoc: <text> element not allowed")

// Check performs the light validation applied to documents before any of
// the edits in this package: there must be an <svg> element, and there
// must be no <text> element.  This is not XML validation.
func Check(doc string) error {
	if !svgElement.MatchString(doc) {
		return ErrNoSVG
	}
	if textElement.MatchString(doc) {
		return ErrTextElement
	}
	return nil
}
