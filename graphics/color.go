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

import "fmt"

// Color is a color in the DeviceRGB color space.
// Each component is in the range [0, 1].
type Color struct {
	R, G, B float64
}

// RGB returns a new color.  It panics if a component is outside [0, 1].
func RGB(r, g, b float64) Color {
	c := Color{R: r, G: g, B: b}
	c.check()
	return c
}

// White is the color of the paper.
var White = Color{1, 1, 1}

func (c Color) check() {
	for _, x := range []float64{c.R, c.G, c.B} {
		if !(x >= 0 && x <= 1) {
			panic(fmt.Sprintf("graphics: invalid color component %g", x))
		}
	}
}

// operands returns the three color components, formatted for use in a
// content stream.
func (c Color) operands() string {
	return fmt.Sprintf("%.3f %.3f %.3f", c.R, c.G, c.B)
}
