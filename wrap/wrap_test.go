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

package wrap

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/pdfguide/font"
)

func TestCapacity(t *testing.T) {
	cases := []struct {
		width float64
		f     font.Font
		size  float64
		out   int
	}{
		{504, font.Regular, 11, 86},
		{504, font.Bold, 13, 69},
		{488, font.Monospace, 9.5, 85},
		{486, font.Regular, 11, 83},
		{10, font.Regular, 11, MinCapacity},
		{0, font.Bold, 12, MinCapacity},
	}
	for _, test := range cases {
		got := Capacity(test.width, test.f, test.size)
		if got != test.out {
			t.Errorf("Capacity(%g, %s, %g) = %d, want %d",
				test.width, test.f, test.size, got, test.out)
		}
	}
}

func TestLines(t *testing.T) {
	cases := []struct {
		text  string
		width float64
		out   []string
	}{
		{"", 100, nil},
		{" \t\n ", 100, nil},
		{"hello", 100, []string{"hello"}},
		{"  hello   world  ", 500, []string{"hello world"}},
		{"hello world foo", 60, []string{"hello world", "foo"}},
		{"a verylongword b", 0, []string{"a", "verylongword", "b"}},
		{"Grüße aus Köln", 45, []string{"Grüße", "aus Köln"}},
	}
	for _, test := range cases {
		got := Lines(test.text, test.width, font.Regular, 10)
		if d := cmp.Diff(test.out, got); d != "" {
			t.Errorf("Lines(%q, %g) (-want +got):\n%s", test.text, test.width, d)
		}
	}
}

func TestLinesProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	letters := "abcdefghijklmnopqrstuvwxyzäöü"
	letterRunes := []rune(letters)

	for range 200 {
		var words []string
		numWords := rng.Intn(40)
		for range numWords {
			n := 1 + rng.Intn(20)
			w := make([]rune, n)
			for i := range w {
				w[i] = letterRunes[rng.Intn(len(letterRunes))]
			}
			words = append(words, string(w))
		}
		text := strings.Join(words, strings.Repeat(" ", 1+rng.Intn(3)))
		width := rng.Float64() * 300
		f := font.All[rng.Intn(len(font.All))]
		size := 6 + rng.Float64()*12
		capacity := Capacity(width, f, size)

		lines := Lines(text, width, f, size)
		if len(words) == 0 {
			if lines != nil {
				t.Fatalf("expected no lines for %q, got %q", text, lines)
			}
			continue
		}

		for _, line := range lines {
			n := utf8.RuneCountInString(line)
			if n > capacity && strings.Contains(line, " ") {
				t.Errorf("line %q has %d > %d characters", line, n, capacity)
			}
		}

		if d := cmp.Diff(words, strings.Fields(strings.Join(lines, " "))); d != "" {
			t.Errorf("words changed (-want +got):\n%s", d)
		}

		again := Lines(strings.Join(lines, " "), width, f, size)
		if d := cmp.Diff(lines, again); d != "" {
			t.Errorf("re-wrapping changed line breaks (-want +got):\n%s", d)
		}
	}
}

func TestWidth(t *testing.T) {
	got := Width("Page 12", font.Regular, 10)
	want := 37.1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Width = %g, want %g", got, want)
	}
}
