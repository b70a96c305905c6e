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
	"errors"
	"fmt"
	"io"
)

// Writer represents a PDF file open for writing.
//
// Objects are identified by consecutive numbers starting at 1, handed out
// by [Writer.Alloc].  Every allocated object must be written exactly once
// before [Writer.Close] is called.
type Writer struct {
	Version Version

	w       *posWriter
	pos     []int64 // pos[i] is the file offset of object i, or -1
	nextRef int
}

// NewWriter prepares a PDF file for writing.  The file header, including
// the binary marker comment, is written immediately.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	verString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	pdf := &Writer{
		Version: ver,
		w:       &posWriter{w: w},
		pos:     []int64{-1},
		nextRef: 1,
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\xe2\xe3\xcf\xd3\n", verString)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := Reference(pdf.nextRef)
	pdf.nextRef++
	pdf.pos = append(pdf.pos, -1)
	return ref
}

// WriteIndirect writes obj to the file as the indirect object ref.
// The file offset of the "N 0 obj" token is recorded for the
// cross-reference table.
func (pdf *Writer) WriteIndirect(ref Reference, obj Object) error {
	if pdf.w == nil {
		return errClosed
	}
	if ref <= 0 || int(ref) >= pdf.nextRef {
		return &ObjectError{Ref: ref, Err: errNotAllocated}
	}
	if pdf.pos[ref] >= 0 {
		return &ObjectError{Ref: ref, Err: errAlreadyWritten}
	}
	if obj == nil {
		return &ObjectError{Ref: ref, Err: errNilObject}
	}

	pos := pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d 0 obj\n", int(ref))
	if err != nil {
		return err
	}
	err = obj.PDF(pdf.w)
	if err != nil {
		return &ObjectError{Ref: ref, Err: err}
	}
	_, err = io.WriteString(pdf.w, "\nendobj\n")
	if err != nil {
		return err
	}

	pdf.pos[ref] = pos
	return nil
}

// Close writes the cross-reference table and the trailer.
// The catalog reference is required, info may be 0.
//
// If the underlying io.Writer has a Close() method, it is closed as well.
func (pdf *Writer) Close(catalog, info Reference) error {
	if pdf.w == nil {
		return errClosed
	}
	if catalog == 0 {
		return errors.New("missing /Catalog")
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalog,
	}
	if info != 0 {
		trailer["Info"] = info
	}

	xRefPos := pdf.w.pos
	err := pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	closer, ok := pdf.w.w.(io.Closer)
	pdf.w = nil
	if ok {
		return closer.Close()
	}
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
