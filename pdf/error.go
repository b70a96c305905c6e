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
	"strconv"
)

var (
	errClosed         = errors.New("PDF writer already closed")
	errNotAllocated   = errors.New("object number not allocated")
	errAlreadyWritten = errors.New("object already written")
	errNotWritten     = errors.New("object allocated but never written")
	errNilObject      = errors.New("cannot write nil object")
)

// ObjectError is returned when an indirect object cannot be written, or
// when the cross-reference table would not account for an object.
type ObjectError struct {
	Ref Reference
	Err error
}

func (err *ObjectError) Error() string {
	return "object " + strconv.Itoa(int(err.Ref)) + ": " + err.Err.Error()
}

func (err *ObjectError) Unwrap() error {
	return err.Err
}
