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

package font

import (
	"testing"

	"seehuhn.de/go/pdfguide/pdf"
)

func TestFonts(t *testing.T) {
	names := map[pdf.Name]bool{}
	for _, f := range All {
		name := f.ResourceName()
		if names[name] {
			t.Errorf("duplicate resource name %s", name)
		}
		names[name] = true

		dict := f.Dict()
		if dict["BaseFont"] != pdf.Name(f.BaseFont()) {
			t.Errorf("%s: wrong /BaseFont %v", f, dict["BaseFont"])
		}
	}
}

func TestWidthFactor(t *testing.T) {
	cases := []struct {
		f   Font
		out float64
	}{
		{Regular, 0.53},
		{Bold, 0.56},
		{Monospace, 0.60},
	}
	for _, test := range cases {
		if got := test.f.WidthFactor(); got != test.out {
			t.Errorf("%s: wrong width factor %g != %g", test.f, got, test.out)
		}
	}
}

func TestString(t *testing.T) {
	if s := Font(7).String(); s != "font.Font(7)" {
		t.Errorf("wrong string %q", s)
	}
}
