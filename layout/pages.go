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

// Package layout arranges headings, paragraphs, bullet lists and code
// blocks on US Letter pages.
//
// A [Composer] keeps a single vertical cursor.  Every block is placed
// below the previous one; when a block does not fit above the bottom
// margin, a new page is started first.  Blocks are never split across
// pages, unless they are taller than the body area of an empty page.
package layout

import (
	"fmt"
	"slices"

	"seehuhn.de/go/pdfguide/font"
	"seehuhn.de/go/pdfguide/graphics"
)

// Page geometry, in PDF units (1/72 inch).
const (
	PageWidth  = 612.0
	PageHeight = 792.0
	Margin     = 54.0

	// BottomLimit is the lowest position at which body content may be
	// placed.  Only the footer is drawn below this line.
	BottomLimit = 72.0

	// BodyWidth is the width available for text between the margins.
	BodyWidth = PageWidth - 2*Margin

	firstPageTop = PageHeight - 96
	bodyTop      = PageHeight - 84

	// bodyHeight is the largest block which fits on a page.
	bodyHeight = bodyTop - BottomLimit

	// The header and footer labels on the right start at fixed positions,
	// leaving room for a product name of about 40 characters and for
	// page numbers up to 999.
	productLabelX = PageWidth - 244
	pageLabelX    = PageWidth - Margin - 40
)

var (
	headerColor   = graphics.RGB(0.09, 0.15, 0.29)
	ruleColor     = graphics.RGB(0.85, 0.88, 0.93)
	headerBrand   = graphics.Style{Font: font.Bold, Size: 12, Leading: 14, Color: graphics.White}
	headerProduct = graphics.Style{Font: font.Regular, Size: 10, Leading: 12, Color: graphics.RGB(0.90, 0.94, 1.0)}
	pageNumber    = graphics.Style{Font: font.Regular, Size: 9, Leading: 12, Color: graphics.RGB(0.35, 0.39, 0.46)}
)

// Branding holds the texts shown in the header bar of every body page.
type Branding struct {
	// Brand is shown on the left of the header bar.
	Brand string

	// Product is shown on the right of the header bar.
	Product string
}

// Composer lays out a document.
//
// A new Composer has a single, empty page which is meant for the cover.
// Body pages are started with [Composer.NewPage].
type Composer struct {
	// Styles used by the block methods.  They can be changed before
	// adding content.
	Title, H1, H2, Body, Small, Code graphics.Style

	brand   Branding
	pages   []*graphics.Page
	current *graphics.Page
	y       float64
	pageNo  int
	cover   bool
}

// New returns a Composer with one empty page.
func New(brand Branding) *Composer {
	c := &Composer{
		Title: graphics.Style{Font: font.Bold, Size: 28, Leading: 32, Color: graphics.White},
		H1:    graphics.Style{Font: font.Bold, Size: 18, Leading: 24, Color: graphics.RGB(0.08, 0.12, 0.17)},
		H2:    graphics.Style{Font: font.Bold, Size: 13, Leading: 18, Color: graphics.RGB(0.08, 0.12, 0.17)},
		Body:  graphics.Style{Font: font.Regular, Size: 11, Leading: 15, Color: graphics.RGB(0.14, 0.17, 0.22)},
		Small: graphics.Style{Font: font.Regular, Size: 9, Leading: 12, Color: graphics.RGB(0.28, 0.32, 0.38)},
		Code:  graphics.Style{Font: font.Monospace, Size: 9.5, Leading: 13, Color: graphics.RGB(0.10, 0.13, 0.18)},

		brand:  brand,
		y:      firstPageTop,
		pageNo: 1,
	}
	c.current = graphics.NewPage()
	c.pages = append(c.pages, c.current)
	return c
}

// NewPage closes the current page and starts a new one.  The cursor is
// moved to the top of the body area and the page header and footer are
// drawn.
func (c *Composer) NewPage() {
	c.current.Close()

	c.current = graphics.NewPage()
	c.pages = append(c.pages, c.current)
	c.pageNo++
	c.y = bodyTop
	c.drawChrome()
}

func (c *Composer) drawChrome() {
	p := c.current

	p.FillRect(0, PageHeight-42, PageWidth, 42, headerColor)
	if c.brand.Brand != "" {
		p.Text(Margin, PageHeight-28, c.brand.Brand, headerBrand)
	}
	if c.brand.Product != "" {
		p.Text(productLabelX, PageHeight-28, c.brand.Product, headerProduct)
	}

	p.Line(Margin, 52, PageWidth-Margin, 52, ruleColor, 0.8)
	label := fmt.Sprintf("Page %d", c.pageNo)
	p.Text(pageLabelX, 36, label, pageNumber)
}

// ensureSpace starts a new page if a block of the given height would
// extend below BottomLimit.
func (c *Composer) ensureSpace(needed float64) {
	if c.y-needed < BottomLimit {
		c.NewPage()
	}
}

// reserve makes room for a block of the given height.  If the block is
// taller than the body area of an empty page, nothing is done and false
// is returned; the caller must then place the block line by line.
func (c *Composer) reserve(needed float64) bool {
	if needed > bodyHeight {
		return false
	}
	c.ensureSpace(needed)
	return true
}

// Y returns the current vertical position, measured from the bottom of
// the page.
func (c *Composer) Y() float64 {
	return c.y
}

// PageNumber returns the number of the current page.
func (c *Composer) PageNumber() int {
	return c.pageNo
}

// Pages returns all pages started so far, including the current one.
func (c *Composer) Pages() []*graphics.Page {
	return slices.Clone(c.pages)
}

// Contents returns the content streams of all pages.  This closes all
// pages; no more content can be added afterwards.
func (c *Composer) Contents() [][]byte {
	res := make([][]byte, len(c.pages))
	for i, p := range c.pages {
		res[i] = p.Content()
	}
	return res
}
