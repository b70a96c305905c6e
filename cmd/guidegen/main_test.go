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

package main

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/pdfguide/document"
	"seehuhn.de/go/pdfguide/internal/ghostscript"
	"seehuhn.de/go/pdfguide/internal/pdfcheck"
	"seehuhn.de/go/pdfguide/pdf"
)

func TestGuide(t *testing.T) {
	contents := buildGuide("1.0", "2026-03-01")
	// cover plus three body pages, none of them overflowing
	if len(contents) != 4 {
		t.Fatalf("%d pages, want 4", len(contents))
	}

	if !bytes.Contains(contents[0], []byte("(Version: 1.0    Date: 2026-03-01) Tj")) {
		t.Error("cover has no version line")
	}
	if bytes.Contains(contents[0], []byte("(Page ")) {
		t.Error("cover page has a page number")
	}
	for i := 1; i < len(contents); i++ {
		label := fmt.Sprintf("(Page %d) Tj", i+1)
		if !bytes.Contains(contents[i], []byte(label)) {
			t.Errorf("page %d: missing page number", i+1)
		}
	}

	// one operation per line
	wantOps := []int{16, 38, 32, 40}
	for i, content := range contents {
		if n := bytes.Count(content, []byte("\n")); n != wantOps[i] {
			t.Errorf("page %d: %d operations, want %d", i+1, n, wantOps[i])
		}
	}

	for _, want := range []string{
		"1 0 0 1 368.00 764.00 Tm (Song Analyzer - Getting Started) Tj ET",
		"1 0 0 1 518.00 36.00 Tm (Page 3) Tj ET",
		`1 0 0 1 62.00 `, // code rows start at the inset
		`Tm ("lyricsAnalysis": {) Tj ET`,
		`Tm ("mood": ["upbeat", "energetic"],) Tj ET`,
	} {
		if !bytes.Contains(contents[2], []byte(want)) {
			t.Errorf("page 3: missing %q", want)
		}
	}

	data, err := document.Serialize(contents, 612, 792, nil)
	if err != nil {
		t.Fatal(err)
	}
	s, err := pdfcheck.Check(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Pages) != len(contents) {
		t.Errorf("%d pages in file, want %d", len(s.Pages), len(contents))
	}
}

func TestRun(t *testing.T) {
	name := filepath.Join(t.TempDir(), "output", "pdf", "guide.pdf")
	opt := &document.Options{
		Info: &pdf.Info{
			Title:        guideTitle,
			CreationDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Lang:     language.English,
		Metadata: true,
	}

	numPages, size, err := run(name, "1.0", "2026-03-01", opt)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != size {
		t.Errorf("file has %d bytes, run reported %d", len(data), size)
	}
	s, err := pdfcheck.Check(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Pages) != numPages {
		t.Errorf("%d pages in file, run reported %d", len(s.Pages), numPages)
	}
	if s.Info == 0 {
		t.Error("missing /Info")
	}
}

// TestRenderGuide lets Ghostscript read the complete guide, as a check
// which does not share any code with our writer.
func TestRenderGuide(t *testing.T) {
	contents := buildGuide("1.0", "2026-03-01")
	data, err := document.Serialize(contents, 612, 792, nil)
	if err != nil {
		t.Fatal(err)
	}

	near := func(img image.Image, x, y int, want [3]uint8) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		got := [3]uint32{r >> 8, g >> 8, b >> 8}
		for i := range got {
			d := int(got[i]) - int(want[i])
			if d < -2 || d > 2 {
				return false
			}
		}
		return true
	}

	cover := ghostscript.Render(t, data, 1)
	// the cover background at the bottom of the page
	if !near(cover, 306, 780, [3]uint8{247, 250, 255}) {
		t.Errorf("cover: unexpected background %v", cover.At(306, 780))
	}
	for page := 2; page <= len(contents); page++ {
		img := ghostscript.Render(t, data, page)
		// header bar, left of the brand name
		if !near(img, 10, 10, [3]uint8{23, 38, 74}) {
			t.Errorf("page %d: unexpected header color %v", page, img.At(10, 10))
		}
		// blank area between footer rule and page bottom
		if !near(img, 10, 780, [3]uint8{255, 255, 255}) {
			t.Errorf("page %d: unexpected page color %v", page, img.At(10, 780))
		}
	}
}
