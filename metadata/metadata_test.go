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

package metadata

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
	"seehuhn.de/go/pdfguide/pdf"
	"seehuhn.de/go/xmp"
)

func TestRoundTrip(t *testing.T) {
	info := &pdf.Info{
		Title:        "Song Analyzer - Getting Started Guide",
		Author:       "365 Tool Drop",
		Subject:      "Buyer-ready setup guide",
		Keywords:     "guide, setup",
		Producer:     "seehuhn.de/go/pdfguide",
		CreationDate: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
	}
	original, err := FromInfo(info, pdf.V1_4, language.AmericanEnglish)
	if err != nil {
		t.Fatal(err)
	}

	stm, err := original.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if stm.Dict["Type"] != pdf.Name("Metadata") || stm.Dict["Subtype"] != pdf.Name("XML") {
		t.Errorf("wrong stream dictionary %v", stm.Dict)
	}

	extracted, err := Decode(stm.Data)
	if err != nil {
		t.Fatal(err)
	}

	var originalDC, extractedDC xmp.DublinCore
	original.Data.Get(&originalDC)
	extracted.Data.Get(&extractedDC)

	if diff := cmp.Diff(extractedDC, originalDC); diff != "" {
		t.Errorf("round trip failed (-got +want):\n%s", diff)
	}
	if !original.Equal(extracted) {
		t.Error("decoded packet differs")
	}
}

func TestEqualNil(t *testing.T) {
	var s *Stream
	if !s.Equal(nil) {
		t.Error("nil streams should be equal")
	}
	other, err := FromInfo(&pdf.Info{Title: "x"}, pdf.V1_4, language.Und)
	if err != nil {
		t.Fatal(err)
	}
	if s.Equal(other) || other.Equal(nil) {
		t.Error("nil stream equal to non-nil stream")
	}
}
