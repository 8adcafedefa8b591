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

// Package otsvg provides the document model for the OpenType "SVG " table.
// https://learn.microsoft.com/en-us/typography/opentype/spec/svg
//
// The "SVG " table stores a list of SVG documents, each covering a
// contiguous, inclusive range of glyph IDs.  This package converts between
// this run list and maps keyed by glyph ID or by glyph name.  It also
// computes viewBox attribute values from font metrics, and decides which
// glyph names clash on case-insensitive file systems.
//
// Reading and writing the binary table data, as well as saving documents to
// files, is left to the caller.
package otsvg
