// seehuhn.de/go/pdfguide - generate static PDF guides
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

package pdfcheck

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdfguide/pdf"
)

// minimal writes a one-page file with the given content stream.
func minimal(t *testing.T, content string) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	w, err := pdf.NewWriter(buf, pdf.V1_4)
	if err != nil {
		t.Fatal(err)
	}
	contentRef := w.Alloc()
	pageRef := w.Alloc()
	treeRef := w.Alloc()
	catalogRef := w.Alloc()

	steps := []struct {
		ref pdf.Reference
		obj pdf.Object
	}{
		{contentRef, &pdf.Stream{Data: []byte(content)}},
		{pageRef, pdf.Dict{
			"Type":     pdf.Name("Page"),
			"Parent":   treeRef,
			"Contents": contentRef,
		}},
		{treeRef, pdf.Dict{
			"Type":  pdf.Name("Pages"),
			"Kids":  pdf.Array{pageRef},
			"Count": pdf.Integer(1),
		}},
		{catalogRef, pdf.Dict{
			"Type":  pdf.Name("Catalog"),
			"Pages": treeRef,
		}},
	}
	for _, s := range steps {
		err = w.WriteIndirect(s.ref, s.obj)
		if err != nil {
			t.Fatal(err)
		}
	}
	err = w.Close(catalogRef, 0)
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCheck(t *testing.T) {
	for _, content := range []string{"", "0 0 m\n", "0 0 m"} {
		data := minimal(t, content)
		s, err := Check(data)
		if err != nil {
			t.Fatalf("%q: %v", content, err)
		}
		if s.Version != "1.4" {
			t.Errorf("version %q", s.Version)
		}
		if s.Size != 5 || s.Root != 4 || s.Info != 0 {
			t.Errorf("size %d, root %d, info %d", s.Size, s.Root, s.Info)
		}
		if d := cmp.Diff([]int{2}, s.Pages); d != "" {
			t.Errorf("pages (-want +got):\n%s", d)
		}
		if got := string(s.Content(0)); got != content {
			t.Errorf("content %q, want %q", got, content)
		}
	}
}

func TestCheckDetectsDamage(t *testing.T) {
	good := minimal(t, "0 0 m\n")

	cases := []struct {
		name   string
		damage func(string) string
	}{
		{"header", func(s string) string {
			return strings.Replace(s, "%PDF-1.4", "%XYZ-1.4", 1)
		}},
		{"length", func(s string) string {
			return strings.Replace(s, "/Length 6", "/Length 4", 1)
		}},
		{"shifted", func(s string) string {
			// one extra byte before the first object moves every offset
			return strings.Replace(s, "1 0 obj", " 1 0 obj", 1)
		}},
		{"count", func(s string) string {
			return strings.Replace(s, "/Count 1", "/Count 2", 1)
		}},
		{"eof", func(s string) string {
			return strings.TrimSuffix(s, "%%EOF\n")
		}},
		{"size", func(s string) string {
			return strings.Replace(s, "/Size 5", "/Size 4", 1)
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bad := c.damage(string(good))
			if bad == string(good) {
				t.Fatal("damage had no effect")
			}
			_, err := Check([]byte(bad))
			if err == nil {
				t.Error("damage not detected")
			}
		})
	}
}
