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

package pdf

import "testing"

func TestVersion(t *testing.T) {
	cases := []struct {
		in  Version
		out string
	}{
		{V1_0, "1.0"},
		{V1_4, "1.4"},
		{V1_7, "1.7"},
		{V2_0, "2.0"},
	}
	for _, test := range cases {
		s, err := test.in.ToString()
		if err != nil {
			t.Error(err)
			continue
		}
		if s != test.out {
			t.Errorf("wrong version %q != %q", s, test.out)
		}
	}

	for _, v := range []Version{0, V2_0 + 1, 42} {
		if _, err := v.ToString(); err == nil {
			t.Errorf("%d: missing error", int(v))
		}
	}
	if s := Version(42).String(); s != "pdf.Version(42)" {
		t.Errorf("wrong string for invalid version: %q", s)
	}
}
