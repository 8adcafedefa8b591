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

package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Color is a fill color in RRGGBB or RRGGBBAA hexadecimal notation,
// without a leading "#".  The empty string means black.
type Color string

var hexColor = regexp.MustCompile(`^[0-9a-fA-F]{6}(?:[0-9a-fA-F]{2})?$`)

// InvalidColorError indicates a color which is not six or eight
// hexadecimal digits.
type InvalidColorError struct {
	Color Color
}

func (err *InvalidColorError) Error() string {
	return fmt.Sprintf("render: %q is not a valid hex color", string(err.Color))
}

func (c Color) check() error {
	if c == "" {
		return nil
	}
	if !hexColor.MatchString(string(c)) {
		return &InvalidColorError{c}
	}
	return nil
}

// split separates the RRGGBB part from the optional alpha byte.  The
// second return value is an SVG opacity attribute, with leading space,
// or the empty string for fully opaque colors.
func (c Color) split() (string, string) {
	hex := string(c)
	if hex == "" {
		hex = "000000"
	}
	if len(hex) == 6 {
		return hex, ""
	}

	fill, alpha := hex[:6], hex[6:]
	if strings.EqualFold(alpha, "ff") {
		return fill, ""
	}
	a, _ := strconv.ParseUint(alpha, 16, 8)
	return fill, fmt.Sprintf(" opacity=\"%.2f\"", float64(a)/255)
}
