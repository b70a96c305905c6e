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

// Package document assembles page content streams into a PDF file.
//
// Objects are numbered in a fixed order: the three font dictionaries,
// then one content stream per page, then one page dictionary per page,
// then the page tree root and finally the document catalog.  The optional
// information dictionary and XMP metadata stream follow the catalog.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdfguide/font"
	"seehuhn.de/go/pdfguide/metadata"
	"seehuhn.de/go/pdfguide/pdf"
)

// Version is the PDF version written into the file header.
const Version = pdf.V1_4

// Options control the optional parts of the output file.
// The zero value writes only the objects needed to display the pages.
type Options struct {
	// Info, if set, is written as the document information dictionary.
	Info *pdf.Info

	// Lang is the natural language of the document, stored in the
	// catalog.
	Lang language.Tag

	// Metadata adds an XMP metadata stream, built from Info.
	Metadata bool
}

var errNoPages = errors.New("document has no pages")

// Serialize returns the complete PDF file for the given page content
// streams.  All pages have the same size.
func Serialize(contents [][]byte, width, height float64, opt *Options) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := Write(buf, contents, width, height, opt)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes the complete PDF file for the given page content streams
// to w.
func Write(w io.Writer, contents [][]byte, width, height float64, opt *Options) error {
	if len(contents) == 0 {
		return errNoPages
	}
	if !(width > 0 && height > 0) {
		return fmt.Errorf("invalid page size %gx%g", width, height)
	}
	if opt == nil {
		opt = &Options{}
	}
	if opt.Metadata && opt.Info == nil {
		return errors.New("XMP metadata requires an information dictionary")
	}

	out, err := pdf.NewWriter(w, Version)
	if err != nil {
		return err
	}

	l := allocate(out, len(contents), opt)

	fonts := pdf.Dict{}
	for i, f := range font.All {
		err = out.WriteIndirect(l.fonts[i], f.Dict())
		if err != nil {
			return err
		}
		fonts[f.ResourceName()] = l.fonts[i]
	}

	for i, content := range contents {
		err = out.WriteIndirect(l.contents[i], &pdf.Stream{Data: content})
		if err != nil {
			return err
		}
	}

	mediaBox := pdf.Rectangle(rect.Rect{URx: width, URy: height})
	kids := make(pdf.Array, len(contents))
	for i := range contents {
		err = out.WriteIndirect(l.pages[i], pdf.Dict{
			"Type":      pdf.Name("Page"),
			"Parent":    l.tree,
			"MediaBox":  mediaBox,
			"Resources": pdf.Dict{"Font": fonts},
			"Contents":  l.contents[i],
		})
		if err != nil {
			return err
		}
		kids[i] = l.pages[i]
	}

	err = out.WriteIndirect(l.tree, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(contents)),
	})
	if err != nil {
		return err
	}

	catalog := &pdf.Catalog{
		Pages:    l.tree,
		Metadata: l.metadata,
		Lang:     opt.Lang,
	}
	err = out.WriteIndirect(l.catalog, catalog.AsDict())
	if err != nil {
		return err
	}

	if opt.Info != nil {
		err = out.WriteIndirect(l.info, opt.Info.AsDict())
		if err != nil {
			return err
		}
	}
	if opt.Metadata {
		meta, err := metadata.FromInfo(opt.Info, Version, opt.Lang)
		if err != nil {
			return fmt.Errorf("XMP metadata: %w", err)
		}
		stm, err := meta.Encode()
		if err != nil {
			return fmt.Errorf("XMP metadata: %w", err)
		}
		err = out.WriteIndirect(l.metadata, stm)
		if err != nil {
			return err
		}
	}

	return out.Close(l.catalog, l.info)
}

// objectLayout holds the object numbers of all objects in the file.
type objectLayout struct {
	fonts    []pdf.Reference
	contents []pdf.Reference
	pages    []pdf.Reference
	tree     pdf.Reference
	catalog  pdf.Reference
	info     pdf.Reference
	metadata pdf.Reference
}

// allocate assigns object numbers in the order the objects are written.
func allocate(out *pdf.Writer, numPages int, opt *Options) *objectLayout {
	l := &objectLayout{
		fonts:    make([]pdf.Reference, len(font.All)),
		contents: make([]pdf.Reference, numPages),
		pages:    make([]pdf.Reference, numPages),
	}
	for i := range l.fonts {
		l.fonts[i] = out.Alloc()
	}
	for i := range l.contents {
		l.contents[i] = out.Alloc()
	}
	for i := range l.pages {
		l.pages[i] = out.Alloc()
	}
	l.tree = out.Alloc()
	l.catalog = out.Alloc()
	if opt.Info != nil {
		l.info = out.Alloc()
	}
	if opt.Metadata {
		l.metadata = out.Alloc()
	}
	return l
}
