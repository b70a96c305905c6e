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
	"fmt"
	"math"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Page collects the drawing operations for one page.
//
// The zero value is an empty, open page.
type Page struct {
	ops    []Op
	closed bool
}

// NewPage returns a new, empty page.
func NewPage() *Page {
	return &Page{}
}

// FillRect fills the rectangle with lower-left corner (x, y), the given
// width and height, using color c.
//
// This uses the PDF graphics operators "rg", "re" and "f".
func (p *Page) FillRect(x, y, width, height float64, c Color) {
	checkCoord("FillRect", x, y)
	if !(width >= 0 && height >= 0) {
		panic(fmt.Sprintf("graphics: FillRect: invalid size %gx%g", width, height))
	}
	c.check()
	p.add(&FillRect{
		Rect:  rect.Rect{LLx: x, LLy: y, URx: x + width, URy: y + height},
		Color: c,
	})
}

// Line strokes the straight line from (x1, y1) to (x2, y2).
//
// This uses the PDF graphics operators "RG", "w", "m", "l" and "S".
func (p *Page) Line(x1, y1, x2, y2 float64, c Color, width float64) {
	checkCoord("Line", x1, y1)
	checkCoord("Line", x2, y2)
	if !(width >= 0) {
		panic(fmt.Sprintf("graphics: Line: invalid line width %g", width))
	}
	c.check()
	p.add(&Line{
		From:  vec.Vec2{X: x1, Y: y1},
		To:    vec.Vec2{X: x2, Y: y2},
		Color: c,
		Width: width,
	})
}

// Text shows s, starting at baseline position (x, y).
// The text must fit on a single line; no wrapping is done here.
//
// This uses the PDF graphics operators "BT", "Tf", "rg", "Tm", "Tj" and "ET".
func (p *Page) Text(x, y float64, s string, style Style) {
	checkCoord("Text", x, y)
	if !(style.Size > 0) {
		panic(fmt.Sprintf("graphics: Text: invalid font size %g", style.Size))
	}
	style.Color.check()
	p.add(&Text{
		At:    vec.Vec2{X: x, Y: y},
		Text:  s,
		Style: style,
	})
}

func (p *Page) add(op Op) {
	if p.closed {
		panic("graphics: page already closed")
	}
	p.ops = append(p.ops, op)
}

// Ops returns a copy of the operations recorded so far, in paint order.
func (p *Page) Ops() []Op {
	return slices.Clone(p.ops)
}

// Close marks the page as finished.  Adding operations to a closed page
// panics.
func (p *Page) Close() {
	p.closed = true
}

// Closed reports whether the page has been closed, either by [Page.Close]
// or by [Page.Content].
func (p *Page) Closed() bool {
	return p.closed
}

// Content returns the content stream for the page.  Each operation is
// written on a line of its own.  After Content has been called, no more
// operations can be added to the page.
func (p *Page) Content() []byte {
	p.closed = true

	buf := &bytes.Buffer{}
	for i, op := range p.ops {
		if i > 0 {
			buf.WriteByte('\n')
		}
		writeOp(buf, op)
	}
	buf.WriteByte('\n')
	return buf.Bytes()
}

func writeOp(buf *bytes.Buffer, op Op) {
	switch op := op.(type) {
	case *FillRect:
		r := op.Rect
		fmt.Fprintf(buf, "%s rg %.2f %.2f %.2f %.2f re f",
			op.Color.operands(), r.LLx, r.LLy, r.Dx(), r.Dy())
	case *Line:
		fmt.Fprintf(buf, "%s RG %.2f w %.2f %.2f m %.2f %.2f l S",
			op.Color.operands(), op.Width,
			op.From.X, op.From.Y, op.To.X, op.To.Y)
	case *Text:
		st := op.Style
		fmt.Fprintf(buf, "BT /%s %.2f Tf %s rg %s Tm ",
			st.Font.ResourceName(), st.Size, st.Color.operands(),
			textMatrix(matrix.Translate(op.At.X, op.At.Y)))
		writeString(buf, op.Text)
		buf.WriteString(" Tj ET")
	default:
		panic(fmt.Sprintf("graphics: unexpected operation %T", op))
	}
}

// textMatrix formats the operands of the "Tm" operator.  The translation
// part is rounded to two decimals, like all other coordinates.
func textMatrix(m matrix.Matrix) string {
	return fmt.Sprintf("%s %s %s %s %.2f %.2f",
		formatNum(m[0]), formatNum(m[1]), formatNum(m[2]), formatNum(m[3]),
		m[4], m[5])
}

func formatNum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func checkCoord(op string, x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		panic(fmt.Sprintf("graphics: %s: invalid position (%g, %g)", op, x, y))
	}
}
