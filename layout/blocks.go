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

package layout

import (
	"strings"

	"seehuhn.de/go/pdfguide/graphics"
	"seehuhn.de/go/pdfguide/wrap"
)

const (
	paragraphGap = 4

	bulletIndent = 14 // start of the bullet text, relative to the margin
	bulletWidth  = BodyWidth - 18

	codePadding = 8 // above and below the text inside a code block
	codeInset   = 8 // left of the text inside a code block
	codeWidth   = BodyWidth - 2*codeInset
)

var codeBackground = graphics.RGB(0.93, 0.95, 0.98)

// Heading1 adds a top-level heading.  The text is not wrapped.
func (c *Composer) Heading1(text string) {
	c.heading(text, c.H1, 8, 2)
}

// Heading2 adds a second-level heading.  The text is not wrapped.
func (c *Composer) Heading2(text string) {
	c.heading(text, c.H2, 6, 0)
}

func (c *Composer) heading(text string, style graphics.Style, space, gap float64) {
	if strings.TrimSpace(text) == "" {
		return
	}
	c.ensureSpace(style.Leading + space)
	c.current.Text(Margin, c.y, text, style)
	c.y -= style.Leading + gap
}

// Paragraph adds a paragraph of body text.
func (c *Composer) Paragraph(text string) {
	c.ParagraphStyle(text, c.Body)
}

// ParagraphStyle adds a paragraph of text, using the given style.
// The text is wrapped to the body width.  Text without any words
// produces no output.
func (c *Composer) ParagraphStyle(text string, style graphics.Style) {
	lines := wrap.Lines(text, BodyWidth, style.Font, style.Size)
	if len(lines) == 0 {
		return
	}

	needed := max(style.Leading, float64(len(lines))*style.Leading+paragraphGap)
	whole := c.reserve(needed)
	for _, line := range lines {
		if !whole {
			c.ensureSpace(style.Leading)
		}
		c.current.Text(Margin, c.y, line, style)
		c.y -= style.Leading
	}
	c.y -= paragraphGap
}

// Bullet adds a bullet point.  A dash is drawn at the margin, the text is
// indented and wrapped to the remaining width.
func (c *Composer) Bullet(text string) {
	style := c.Body
	lines := wrap.Lines(text, bulletWidth, style.Font, style.Size)
	if len(lines) == 0 {
		return
	}

	needed := max(style.Leading, float64(len(lines))*style.Leading+2)
	whole := c.reserve(needed)
	for i, line := range lines {
		if i > 0 {
			c.y -= style.Leading
		}
		if !whole {
			c.ensureSpace(style.Leading)
		}
		if i == 0 {
			c.current.Text(Margin, c.y, "-", style)
		}
		c.current.Text(Margin+bulletIndent, c.y, line, style)
	}
	c.y -= style.Leading
}

// CodeBlock adds lines of program code, set in the monospace font on a
// shaded background.  Every line is wrapped on its own.
func (c *Composer) CodeBlock(lines []string) {
	rows := c.codeRows(lines)
	if len(rows) == 0 {
		return
	}

	// A block of n rows needs 2*codePadding + n*leading, plus 8 units of
	// space below.  Larger blocks are split into page-sized pieces.
	maxRows := max(1, int((bodyHeight-2*codePadding-8)/c.Code.Leading))
	for len(rows) > 0 {
		n := min(len(rows), maxRows)
		c.codeChunk(rows[:n])
		rows = rows[n:]
	}
}

func (c *Composer) codeChunk(rows []string) {
	style := c.Code
	blockHeight := 2*codePadding + float64(len(rows))*style.Leading
	c.ensureSpace(blockHeight + 8)

	bottom := c.y - blockHeight + 10
	c.current.FillRect(Margin, bottom, BodyWidth, blockHeight, codeBackground)
	y := c.y - codePadding
	for _, row := range rows {
		c.current.Text(Margin+codeInset, y, row, style)
		y -= style.Leading
	}
	c.y = bottom - 10
}

// codeRows wraps every code line to the inner width of a code block.
// Like all wrapped text, rows lose their leading white space.  Blank
// lines produce no rows.
func (c *Composer) codeRows(lines []string) []string {
	style := c.Code
	var rows []string
	for _, line := range lines {
		rows = append(rows, wrap.Lines(line, codeWidth, style.Font, style.Size)...)
	}
	return rows
}

// Spacer moves the cursor down by the given amount.  This never starts a
// new page.
func (c *Composer) Spacer(amount float64) {
	c.y -= amount
}
