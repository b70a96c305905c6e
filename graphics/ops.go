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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Op is one drawing operation on a page.  The concrete types are
// *FillRect, *Line and *Text.
type Op interface {
	isOp()
}

// FillRect fills an axis-parallel rectangle.
type FillRect struct {
	Rect  rect.Rect
	Color Color
}

// Line strokes a straight line segment.
type Line struct {
	From, To vec.Vec2
	Color    Color
	Width    float64
}

// Text shows a single line of text.  At is the start of the baseline.
type Text struct {
	At    vec.Vec2
	Text  string
	Style Style
}

func (*FillRect) isOp() {}
func (*Line) isOp()     {}
func (*Text) isOp()     {}
