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

// Package font describes the three standard fonts used for guide
// documents.  The fonts are referenced by name and are never embedded.
package font

import (
	"fmt"

	"seehuhn.de/go/pdfguide/pdf"
)

// Font identifies one of the fonts available on every page.
type Font int

// These are the fonts used in guide documents.
const (
	Regular   Font = iota // Helvetica
	Bold                  // Helvetica-Bold
	Monospace             // Courier
)

// All lists the fonts in the order their font dictionaries are written.
var All = []Font{Regular, Bold, Monospace}

// BaseFont returns the PostScript name of the font.
func (f Font) BaseFont() string {
	switch f {
	case Regular:
		return "Helvetica"
	case Bold:
		return "Helvetica-Bold"
	case Monospace:
		return "Courier"
	}
	panic(fmt.Sprintf("invalid font %d", int(f)))
}

// ResourceName returns the name used to select the font in content
// streams.  The same names are used on every page.
func (f Font) ResourceName() pdf.Name {
	switch f {
	case Regular:
		return "F1"
	case Bold:
		return "F2"
	case Monospace:
		return "F3"
	}
	panic(fmt.Sprintf("invalid font %d", int(f)))
}

// WidthFactor gives the average glyph advance as a fraction of the font
// size.  This stands in for real glyph metrics when wrapping text.
func (f Font) WidthFactor() float64 {
	switch f {
	case Bold:
		return 0.56
	case Monospace:
		return 0.60
	default:
		return 0.53
	}
}

// Dict returns the font dictionary for f.
func (f Font) Dict() pdf.Dict {
	return pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(f.BaseFont()),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
}

func (f Font) String() string {
	switch f {
	case Regular, Bold, Monospace:
		return f.BaseFont()
	}
	return fmt.Sprintf("font.Font(%d)", int(f))
}
