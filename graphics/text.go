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

package graphics

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
	"seehuhn.de/go/pdfguide/pdf"
)

// EncodeText converts s to WinAnsiEncoding, the encoding declared for all
// fonts.  The text is normalized to NFC first, so that combining
// sequences like "a" + U+0308 map to precomposed characters.  Characters
// which cannot be represented are replaced by "?".
func EncodeText(s string) []byte {
	s = norm.NFC.String(s)
	res := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		res = append(res, c)
	}
	return res
}

// writeString writes s as a PDF literal string.  Backslashes and
// parentheses are escaped.
func writeString(buf *bytes.Buffer, s string) {
	// writing to a bytes.Buffer cannot fail
	_ = pdf.String(EncodeText(s)).PDF(buf)
}
