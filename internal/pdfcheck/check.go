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

// Package pdfcheck verifies the file structure of PDF files written by
// this module.  It checks the cross-reference table against the actual
// object positions, the /Length of every stream, and the page tree.
//
// The checker only understands the plain, uncompressed layout produced
// by the pdf package.  It is not a general PDF parser.
package pdfcheck

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Summary describes a structurally valid file.
type Summary struct {
	Version string

	// Size is the /Size entry of the trailer.
	Size int

	Root int
	Info int // 0 if the trailer has no /Info entry

	// Offsets lists the byte offset of every object, indexed by object
	// number.  Offsets[0] is unused.
	Offsets []int64

	// Objects holds the text between "N 0 obj\n" and "\nendobj" for every
	// object.  For streams, Streams holds the stream data.
	Objects []string
	Streams map[int][]byte

	// Pages lists the object numbers of the page dictionaries, in the
	// order given by the /Kids array of the page tree root.
	Pages []int
}

var (
	headerRe    = regexp.MustCompile(`^%PDF-(\d\.\d)\n`)
	tailRe      = regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n?$`)
	xrefStartRe = regexp.MustCompile(`^xref\n0 (\d+)\n`)
	entryRe     = regexp.MustCompile(`^(\d{10}) (\d{5}) ([nf]) \n$`)
	trailerRe   = regexp.MustCompile(`^trailer\n(<<.*?>>)\nstartxref\n`)
	refRe       = func(key string) *regexp.Regexp {
		return regexp.MustCompile(`/` + key + ` (\d+) 0 R\b`)
	}
	sizeRe   = regexp.MustCompile(`/Size (\d+)\b`)
	lengthRe = regexp.MustCompile(`/Length (\d+)\b`)
	typeRe   = regexp.MustCompile(`/Type /(\w+)\b`)
	kidsRe   = regexp.MustCompile(`/Kids \[([^\]]*)\]`)
	kidRe    = regexp.MustCompile(`(\d+) 0 R`)
	countRe  = regexp.MustCompile(`/Count (\d+)\b`)

	rootRe     = refRe("Root")
	infoRe     = refRe("Info")
	pagesRe    = refRe("Pages")
	parentRe   = refRe("Parent")
	contentsRe = refRe("Contents")
)

// Check verifies the structure of a PDF file.
func Check(data []byte) (*Summary, error) {
	m := headerRe.FindSubmatch(data)
	if m == nil {
		return nil, errors.New("missing PDF header")
	}
	s := &Summary{
		Version: string(m[1]),
		Streams: make(map[int][]byte),
	}

	m = tailRe.FindSubmatch(data)
	if m == nil {
		return nil, errors.New("missing startxref")
	}
	xrefPos, err := strconv.ParseInt(string(m[1]), 10, 64)
	if err != nil || xrefPos >= int64(len(data)) {
		return nil, fmt.Errorf("invalid startxref offset %q", m[1])
	}

	rest := data[xrefPos:]
	m = xrefStartRe.FindSubmatch(rest)
	if m == nil {
		return nil, fmt.Errorf("no xref table at offset %d", xrefPos)
	}
	n, _ := strconv.Atoi(string(m[1]))
	rest = rest[len(m[0]):]
	if len(rest) < 20*n {
		return nil, errors.New("truncated xref table")
	}
	s.Offsets = make([]int64, n)
	for i := range n {
		entry := rest[20*i : 20*i+20]
		em := entryRe.FindSubmatch(entry)
		if em == nil {
			return nil, fmt.Errorf("malformed xref entry %d: %q", i, entry)
		}
		if i == 0 {
			if string(entry) != "0000000000 65535 f \n" {
				return nil, fmt.Errorf("bad free list head %q", entry)
			}
			continue
		}
		if string(em[3]) != "n" || string(em[2]) != "00000" {
			return nil, fmt.Errorf("object %d: unexpected xref entry %q", i, entry)
		}
		s.Offsets[i], _ = strconv.ParseInt(string(em[1]), 10, 64)
	}
	rest = rest[20*n:]

	m = trailerRe.FindSubmatch(rest)
	if m == nil {
		return nil, errors.New("malformed trailer")
	}
	trailer := m[1]
	if sm := sizeRe.FindSubmatch(trailer); sm != nil {
		s.Size, _ = strconv.Atoi(string(sm[1]))
	}
	if s.Size != n {
		return nil, fmt.Errorf("trailer /Size %d, xref has %d entries", s.Size, n)
	}
	s.Root = refNum(rootRe, trailer)
	s.Info = refNum(infoRe, trailer)

	s.Objects = make([]string, n)
	for i := 1; i < n; i++ {
		body, stm, err := readObject(data, i, s.Offsets[i])
		if err != nil {
			return nil, err
		}
		s.Objects[i] = body
		if stm != nil {
			s.Streams[i] = stm
		}
	}

	err = s.checkPageTree()
	if err != nil {
		return nil, err
	}
	return s, nil
}

func readObject(data []byte, num int, pos int64) (string, []byte, error) {
	if pos <= 0 || pos >= int64(len(data)) {
		return "", nil, fmt.Errorf("object %d: offset %d out of range", num, pos)
	}
	head := fmt.Sprintf("%d 0 obj\n", num)
	if !bytes.HasPrefix(data[pos:], []byte(head)) {
		return "", nil, fmt.Errorf("object %d: xref offset %d does not point to %q",
			num, pos, head[:len(head)-1])
	}
	start := pos + int64(len(head))

	idx := bytes.Index(data[start:], []byte("\nstream\n"))
	end := bytes.Index(data[start:], []byte("\nendobj"))
	if end < 0 {
		return "", nil, fmt.Errorf("object %d: missing endobj", num)
	}
	if idx < 0 || idx > end {
		return string(data[start : start+int64(end)]), nil, nil
	}

	// stream object: the data may itself contain "\nendobj"
	dict := data[start : start+int64(idx)]
	lm := lengthRe.FindSubmatch(dict)
	if lm == nil {
		return "", nil, fmt.Errorf("object %d: stream without /Length", num)
	}
	length, _ := strconv.ParseInt(string(lm[1]), 10, 64)
	dataStart := start + int64(idx) + int64(len("\nstream\n"))
	dataEnd := dataStart + length
	if dataEnd > int64(len(data)) {
		return "", nil, fmt.Errorf("object %d: /Length %d runs past end of file", num, length)
	}
	tail := data[dataEnd:]
	switch {
	case bytes.HasPrefix(tail, []byte("endstream\nendobj")):
		// data ends in a line feed
		if length == 0 || data[dataEnd-1] != '\n' {
			return "", nil, fmt.Errorf("object %d: /Length %d does not match stream data", num, length)
		}
	case bytes.HasPrefix(tail, []byte("\nendstream\nendobj")),
		bytes.HasPrefix(tail, []byte("\r\nendstream\nendobj")):
		// ok
	default:
		return "", nil, fmt.Errorf("object %d: /Length %d does not match stream data", num, length)
	}
	return string(dict), data[dataStart:dataEnd], nil
}

func (s *Summary) checkPageTree() error {
	if s.Root <= 0 || s.Root >= len(s.Objects) {
		return fmt.Errorf("invalid /Root %d", s.Root)
	}
	catalog := s.Objects[s.Root]
	if typeOf(catalog) != "Catalog" {
		return fmt.Errorf("object %d is not a catalog", s.Root)
	}
	tree := refNum(pagesRe, []byte(catalog))
	if tree <= 0 || tree >= len(s.Objects) {
		return errors.New("catalog has no valid /Pages entry")
	}
	node := s.Objects[tree]
	if typeOf(node) != "Pages" {
		return fmt.Errorf("object %d is not a page tree node", tree)
	}
	km := kidsRe.FindStringSubmatch(node)
	if km == nil {
		return errors.New("page tree without /Kids")
	}
	for _, k := range kidRe.FindAllStringSubmatch(km[1], -1) {
		num, _ := strconv.Atoi(k[1])
		if num <= 0 || num >= len(s.Objects) {
			return fmt.Errorf("page reference %d out of range", num)
		}
		page := s.Objects[num]
		if typeOf(page) != "Page" {
			return fmt.Errorf("object %d is not a page", num)
		}
		if refNum(parentRe, []byte(page)) != tree {
			return fmt.Errorf("page %d: wrong /Parent", num)
		}
		c := refNum(contentsRe, []byte(page))
		if _, ok := s.Streams[c]; !ok {
			return fmt.Errorf("page %d: /Contents is not a stream", num)
		}
		s.Pages = append(s.Pages, num)
	}
	cm := countRe.FindStringSubmatch(node)
	if cm == nil {
		return errors.New("page tree without /Count")
	}
	count, _ := strconv.Atoi(cm[1])
	if count != len(s.Pages) {
		return fmt.Errorf("/Count %d, but %d kids", count, len(s.Pages))
	}
	return nil
}

// Content returns the content stream of the given page, counting from 0.
func (s *Summary) Content(page int) []byte {
	c := refNum(contentsRe, []byte(s.Objects[s.Pages[page]]))
	return s.Streams[c]
}

func typeOf(obj string) string {
	m := typeRe.FindStringSubmatch(obj)
	if m == nil {
		return ""
	}
	return m[1]
}

func refNum(re *regexp.Regexp, b []byte) int {
	m := re.FindSubmatch(b)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(string(m[1]))
	return n
}
