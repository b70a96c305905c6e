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
	"fmt"

	"seehuhn.de/go/pdfguide/font"
	"seehuhn.de/go/pdfguide/graphics"
	"seehuhn.de/go/pdfguide/wrap"
)

// Cover holds the texts shown on the cover page.
type Cover struct {
	// Tag is printed on the accent bar at the top.
	Tag string

	// Title is set in large type, one entry per line.
	Title []string

	Subtitle string

	// PanelHeading and Features make up the summary panel.
	PanelHeading string
	Features     []string

	// Version and Date are shown at the bottom, together with Brand.
	Version string
	Date    string
	Brand   string
}

var (
	coverBackground = graphics.RGB(0.97, 0.98, 1.0)
	coverAccent     = graphics.RGB(0.97, 0.64, 0.17)
	panelRule       = graphics.RGB(0.83, 0.87, 0.94)
	coverTag        = graphics.Style{Font: font.Bold, Size: 12, Leading: 14, Color: headerColor}
	coverSubtitle   = graphics.Style{Font: font.Regular, Size: 14, Leading: 18, Color: graphics.RGB(0.87, 0.92, 1.0)}
	panelHeading    = graphics.Style{Font: font.Bold, Size: 13, Leading: 16, Color: graphics.RGB(0.11, 0.15, 0.22)}
	coverBrand      = graphics.Style{Font: font.Bold, Size: 10, Leading: 12, Color: graphics.RGB(0.15, 0.2, 0.33)}
)

// CoverPage draws the cover onto the first page.  The cover uses a fixed
// layout of its own; the cursor is not used and not changed.
//
// CoverPage must be called at most once, before the first page is closed.
func (c *Composer) CoverPage(cover *Cover) {
	if c.cover {
		panic("layout: cover page already drawn")
	}
	c.cover = true
	p := c.pages[0]

	p.FillRect(0, 0, PageWidth, PageHeight, coverBackground)
	p.FillRect(0, PageHeight-280, PageWidth, 280, headerColor)

	if cover.Tag != "" {
		tagWidth := max(188, wrap.Width(cover.Tag, coverTag.Font, coverTag.Size)+28)
		p.FillRect(Margin, PageHeight-258, tagWidth, 26, coverAccent)
		p.Text(Margin+14, PageHeight-240, cover.Tag, coverTag)
	}

	y := PageHeight - 332
	for _, line := range cover.Title {
		p.Text(Margin, y, line, c.Title)
		y -= c.Title.Leading + 2
	}
	if cover.Subtitle != "" {
		p.Text(Margin, y-12, cover.Subtitle, coverSubtitle)
	}

	// The panel grows downwards from a fixed top edge.
	const panelTop = 344.0
	featureY := panelTop - 52
	panelBottom := featureY - 18*float64(max(len(cover.Features), 1)-1) - 34
	p.FillRect(Margin, panelBottom, PageWidth-2*Margin, panelTop-panelBottom, graphics.White)
	p.Line(Margin, panelTop, PageWidth-Margin, panelTop, panelRule, 1)
	if cover.PanelHeading != "" {
		p.Text(Margin+18, panelTop-28, cover.PanelHeading, panelHeading)
	}
	for _, feature := range cover.Features {
		p.Text(Margin+18, featureY, "- "+feature, c.Body)
		featureY -= 18
	}

	if cover.Version != "" || cover.Date != "" {
		p.Text(Margin, 120, fmt.Sprintf("Version: %s    Date: %s", cover.Version, cover.Date), c.Small)
	}
	if cover.Brand != "" {
		p.Text(Margin, 102, "Brand: "+cover.Brand, coverBrand)
	}
}
