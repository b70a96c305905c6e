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

// Package graphics records the drawing operations of a page and encodes
// them as a PDF content stream.
//
// A [Page] is an append-only log of three kinds of operations: filled
// rectangles ([FillRect]), straight lines ([Line]) and single-line text
// runs ([Text]).  Later operations paint over earlier ones.  Calling
// [Page.Content] produces the content stream and closes the page.
//
// Coordinates are in PDF user space units (1/72 inch), with the origin
// in the bottom-left corner of the page.
package graphics
