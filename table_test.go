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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/sfnt/glyph"
)

func TestNew(t *testing.T) {
	table := New(map[glyph.ID]string{
		7: "<svg id=\"glyph7\"/>",
		2: "<svg id=\"glyph2\"/>",
		5: "<svg id=\"glyph5\"/>",
	})

	expected := []Document{
		{Body: "<svg id=\"glyph2\"/>", First: 2, Last: 2},
		{Body: "<svg id=\"glyph5\"/>", First: 5, Last: 5},
		{Body: "<svg id=\"glyph7\"/>", First: 7, Last: 7},
	}
	if d := cmp.Diff(expected, table.Docs); d != "" {
		t.Errorf("unexpected document list (-want +got):\n%s", d)
	}
	if err := table.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name string
		docs []Document
		ok   bool
	}{
		{
			name: "empty table",
			docs: nil,
			ok:   true,
		},
		{
			name: "sorted ranges",
			docs: []Document{
				{Body: "<svg/>", First: 0, Last: 3},
				{Body: "<svg/>", First: 4, Last: 4},
			},
			ok: true,
		},
		{
			name: "empty body",
			docs: []Document{
				{Body: "", First: 0, Last: 0},
			},
			ok: false,
		},
		{
			name: "inverted range",
			docs: []Document{
				{Body: "<svg/>", First: 4, Last: 2},
			},
			ok: false,
		},
		{
			name: "overlapping ranges",
			docs: []Document{
				{Body: "<svg/>", First: 0, Last: 3},
				{Body: "<svg/>", First: 3, Last: 5},
			},
			ok: false,
		},
		{
			name: "unsorted ranges",
			docs: []Document{
				{Body: "<svg/>", First: 5, Last: 6},
				{Body: "<svg/>", First: 0, Last: 1},
			},
			ok: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table := &Table{Docs: tc.docs}
			err := table.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, want ok=%t", err, tc.ok)
			}
		})
	}
}

func TestPerGlyph(t *testing.T) {
	table := &Table{
		Docs: []Document{
			{Body: "first", First: 1, Last: 3},
			{Body: "second", First: 6, Last: 6},
		},
	}

	expected := map[glyph.ID]string{
		1: "first",
		2: "first",
		3: "first",
		6: "second",
	}
	if d := cmp.Diff(expected, table.PerGlyph()); d != "" {
		t.Errorf("unexpected expansion (-want +got):\n%s", d)
	}
}

// TestPerGlyphInverted checks that an inverted glyph ID range, which
// Validate would reject, expands to nothing instead of wrapping around
// the glyph ID space.
func TestPerGlyphInverted(t *testing.T) {
	table := &Table{
		Docs: []Document{
			{Body: "bad", First: 4, Last: 2},
			{Body: "good", First: 7, Last: 7},
		},
	}

	expected := map[glyph.ID]string{
		7: "good",
	}
	if d := cmp.Diff(expected, table.PerGlyph()); d != "" {
		t.Errorf("unexpected expansion (-want +got):\n%s", d)
	}

	docs, warnings := table.ByGlyphName(nil)
	if len(docs) != 1 || len(warnings) != 1 {
		t.Errorf("got %d documents and %d warnings, want 1 and 1",
			len(docs), len(warnings))
	}
}

// TestRoundTrip checks that a table of single-glyph ranges survives
// expansion and re-encoding unchanged.
func TestRoundTrip(t *testing.T) {
	orig := &Table{
		Docs: []Document{
			{Body: "<svg>a</svg>", First: 1, Last: 1},
			{Body: "<svg>b</svg>", First: 2, Last: 2},
			{Body: "<svg>c</svg>", First: 9, Last: 9},
		},
	}

	restored := New(orig.PerGlyph())
	if d := cmp.Diff(orig, restored); d != "" {
		t.Errorf("table changed in round trip (-want +got):\n%s", d)
	}
}

func TestByGlyphName(t *testing.T) {
	table := &Table{
		Docs: []Document{
			{Body: "<svg>AB</svg>", First: 1, Last: 2},
			{Body: "<svg>?</svg>", First: 5, Last: 6},
		},
	}
	glyphOrder := []string{".notdef", "A", "B", "C", "D", "E"}

	docs, warnings := table.ByGlyphName(glyphOrder)

	expected := map[string]string{
		"A":         "<svg>AB</svg>",
		"B":         "<svg>AB</svg>",
		"E":         "<svg>?</svg>",
		"_unnamed1": "<svg>?</svg>",
	}
	if d := cmp.Diff(expected, docs); d != "" {
		t.Errorf("unexpected documents (-want +got):\n%s", d)
	}

	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	w := warnings[0]
	if w.GID != 6 || w.Name != "_unnamed1" {
		t.Errorf("got warning for GID %d name %q, want GID 6 name \"_unnamed1\"",
			w.GID, w.Name)
	}
	if w.Error() == "" {
		t.Error("empty warning message")
	}
}

// TestByGlyphNameCounter checks that synthesized names are numbered
// consecutively within one call, starting from 1 again in the next call.
func TestByGlyphNameCounter(t *testing.T) {
	table := &Table{
		Docs: []Document{
			{Body: "x", First: 10, Last: 12},
		},
	}

	for i := 0; i < 2; i++ {
		docs, warnings := table.ByGlyphName(nil)
		if len(docs) != 3 || len(warnings) != 3 {
			t.Fatalf("pass %d: got %d documents and %d warnings",
				i, len(docs), len(warnings))
		}
		for j, name := range []string{"_unnamed1", "_unnamed2", "_unnamed3"} {
			if _, ok := docs[name]; !ok {
				t.Errorf("pass %d: missing %q", i, name)
			}
			if warnings[j].Name != name {
				t.Errorf("pass %d: warning %d has name %q, want %q",
					i, j, warnings[j].Name, name)
			}
		}
	}
}
