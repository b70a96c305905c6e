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

// Package metadata creates XMP metadata streams for guide documents.
package metadata

import (
	"bytes"

	"golang.org/x/text/language"
	"seehuhn.de/go/pdfguide/pdf"
	"seehuhn.de/go/xmp"
)

// PDF 2.0 sections: 14.3

// Stream represents an XMP metadata stream for the document as a whole.
type Stream struct {
	Data *xmp.Packet
}

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	PDFVersion xmp.Text
	Producer   xmp.AgentName
}

// FromInfo returns an XMP packet which holds the same information as the
// document information dictionary.  If lang is not [language.Und], the
// title and description are also stored for this language.
func FromInfo(info *pdf.Info, ver pdf.Version, lang language.Tag) (*Stream, error) {
	xDefault := language.MustParse("x-default")

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, info.Title)
		if lang != language.Und {
			dc.Title.Set(lang, info.Title)
		}
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
		if lang != language.Und {
			dc.Description.Set(lang, info.Subject)
		}
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}

	basic := &xmp.Basic{}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(info.ModDate)
	}

	pdfInfo := &PDF{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}
	if v, err := ver.ToString(); err == nil {
		pdfInfo.PDFVersion = xmp.NewText(v)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// Encode returns the metadata as an uncompressed PDF stream object.
func (s *Stream) Encode() (*pdf.Stream, error) {
	buf := &bytes.Buffer{}
	err := s.Data.Write(buf, nil)
	if err != nil {
		return nil, err
	}
	return &pdf.Stream{
		Dict: pdf.Dict{
			"Type":    pdf.Name("Metadata"),
			"Subtype": pdf.Name("XML"),
		},
		Data: buf.Bytes(),
	}, nil
}

// Decode reads an XMP packet from the data of a metadata stream.
func Decode(data []byte) (*Stream, error) {
	packet, err := xmp.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// Equal reports whether s and other represent the same XMP metadata.
func (s *Stream) Equal(other *Stream) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Data.Equal(other.Data)
}
