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

import (
	"fmt"
	"io"
)

// xRefEntryLen is the length of one line of the cross-reference table,
// including the two-byte end-of-line marker.
const xRefEntryLen = 20

// writeXRefTable writes the classic (uncompressed) cross-reference table,
// followed by the trailer dictionary.  Every allocated object must have
// been written.
func (pdf *Writer) writeXRefTable(trailer Dict) error {
	for i := 1; i < pdf.nextRef; i++ {
		if pdf.pos[i] < 0 {
			return &ObjectError{Ref: Reference(i), Err: errNotWritten}
		}
	}

	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "0000000000 65535 f \n")
	if err != nil {
		return err
	}
	for i := 1; i < pdf.nextRef; i++ {
		_, err = fmt.Fprintf(pdf.w, "%010d %05d n \n", pdf.pos[i], 0)
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(pdf.w, "trailer\n")
	if err != nil {
		return err
	}
	return trailer.PDF(pdf.w)
}
