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

// Package wrap breaks text into lines of approximately equal width.
//
// Glyph widths are not measured.  Instead, every character is assumed to
// have the average advance of its font (see [font.Font.WidthFactor]),
// which makes the line breaks depend only on the character count.
package wrap

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/pdfguide/font"
)

// MinCapacity is the smallest number of characters allowed on a line,
// regardless of the available width.
const MinCapacity = 8

// Capacity returns the number of characters which fit into width, when
// set in font f at the given size.
func Capacity(width float64, f font.Font, size float64) int {
	if size <= 0 {
		panic(fmt.Sprintf("wrap: invalid font size %g", size))
	}
	charWidth := size * f.WidthFactor()
	c := math.Floor(width / charWidth)
	if c < MinCapacity {
		return MinCapacity
	}
	return int(c)
}

// Width returns the approximate width of text when set in font f at the
// given size.
func Width(text string, f font.Font, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * f.WidthFactor()
}

// Lines splits text at white space and greedily fills the words into
// lines of at most [Capacity] characters.  Words are separated by a single
// space.  A word which is longer than the capacity is placed on a line by
// itself and is not broken.
//
// If text contains no words, the result is nil.
func Lines(text string, width float64, f font.Font, size float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	capacity := Capacity(width, f, size)

	var lines []string
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= capacity {
			current += " " + word
			currentLen += 1 + wordLen
		} else {
			lines = append(lines, current)
			current = word
			currentLen = wordLen
		}
	}
	lines = append(lines, current)
	return lines
}
