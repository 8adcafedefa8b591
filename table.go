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

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"seehuhn.de/go/sfnt/glyph"
)

// Document is one SVG document from the "SVG " table, together with the
// inclusive range of glyph IDs it provides artwork for.
type Document struct {
	Body  string
	First glyph.ID
	Last  glyph.ID
}

// Table holds the document list of an "SVG " table.
//
// In a valid table the documents are sorted by ascending First glyph ID and
// the glyph ID ranges do not overlap.
type Table struct {
	Docs []Document
}

// New creates a table from per-glyph SVG documents.
//
// Each glyph gets its own single-glyph range.  Ranges are never merged,
// even where neighbouring glyphs share the same document body.
func New(docs map[glyph.ID]string) *Table {
	gids := maps.Keys(docs)
	slices.Sort(gids)

	t := &Table{
		Docs: make([]Document, 0, len(gids)),
	}
	for _, gid := range gids {
		t.Docs = append(t.Docs, Document{
			Body:  docs[gid],
			First: gid,
			Last:  gid,
		})
	}
	return t
}

// Validate checks the table invariants: document bodies are non-empty, and
// glyph ID ranges are well-formed, sorted and pairwise disjoint.
func (t *Table) Validate() error {
	prevLast := -1
	for i, doc := range t.Docs {
		if doc.Body == "" {
			return invalid("document %d is empty", i)
		}
		if doc.Last < doc.First {
			return invalid("document %d has glyph range %d-%d",
				i, doc.First, doc.Last)
		}
		if int(doc.First) <= prevLast {
			return invalid("document %d overlaps or breaks glyph ID order", i)
		}
		prevLast = int(doc.Last)
	}
	return nil
}

// PerGlyph expands the glyph ID ranges and returns each covered glyph's
// document body, keyed by glyph ID.  Documents with an inverted glyph ID
// range cover no glyphs and contribute nothing.
func (t *Table) PerGlyph() map[glyph.ID]string {
	docs := make(map[glyph.ID]string)
	for _, doc := range t.Docs {
		if doc.First > doc.Last {
			continue
		}
		for gid := doc.First; ; gid++ {
			docs[gid] = doc.Body
			if gid == doc.Last {
				break
			}
		}
	}
	return docs
}

// InvalidTableError indicates that an "SVG " document list violates the
// table invariants.
type InvalidTableError struct {
	Reason string
}

func (err *InvalidTableError) Error() string {
	return "otsvg: " + err.Reason
}

func invalid(format string, a ...interface{}) error {
	return &InvalidTableError{fmt.Sprintf(format, a...)}
}
