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

// Package ghostscript renders PDF files with the Ghostscript command-line
// tool, so that unit tests can check that Ghostscript's idea of our output
// matches our own.
package ghostscript

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
)

var keepTempFiles = false

// Resolution is the rendering resolution in pixels per inch.  At 72 dpi
// one pixel corresponds to one PDF unit.
const Resolution = 72

// Render can be used in unit tests to render one page of a PDF file to an
// image.  Pages are numbered starting from 1.  The test is skipped if
// Ghostscript is not installed.
//
// In the returned image, the PDF point (x, y) is found at pixel
// (x, height-y), where height is the page height.
func Render(t *testing.T, data []byte, page int) image.Image {
	t.Helper()

	if !isAvailable() {
		t.Skip("ghostscript not found")
	}

	img, err := RenderPage(data, page)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

// RenderPage renders one page of a PDF file to an image.
// If Ghostscript is not installed, [ErrNoGhostscript] is returned.
func RenderPage(data []byte, page int) (image.Image, error) {
	if !isAvailable() {
		return nil, ErrNoGhostscript
	}

	dir, err := tempDir()
	if err != nil {
		return nil, err
	}

	idx := <-gsIndex
	gsIndex <- idx + 1

	pdfName := filepath.Join(dir, fmt.Sprintf("test%03d.pdf", idx))
	pngName := filepath.Join(dir, fmt.Sprintf("test%03d.png", idx))
	err = os.WriteFile(pdfName, data, 0o644)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(
		"gs", "-q", "-dSAFER",
		"-sDEVICE=png16m", fmt.Sprintf("-r%d", Resolution),
		fmt.Sprintf("-dFirstPage=%d", page), fmt.Sprintf("-dLastPage=%d", page),
		"-o", pngName,
		pdfName)
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.Stderr = nil
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	if len(out) > 0 {
		fmt.Println("unexpected ghostscript output:")
		fmt.Println(string(out))
	}

	fd, err := os.Open(pngName)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, err := png.Decode(fd)
	if err != nil {
		return nil, err
	}

	if !keepTempFiles {
		err = os.RemoveAll(dir)
		if err != nil {
			return nil, err
		}
	}

	return img, nil
}

func tempDir() (string, error) {
	if !keepTempFiles {
		return os.MkdirTemp("", "pdfguide")
	}

	const dirName = "./render-files"
	err := os.Mkdir(dirName, 0755)
	if err != nil && !os.IsExist(err) {
		return "", err
	}
	return filepath.Abs(dirName)
}

// isAvailable returns true if the ghostscript command-line tool is available.
func isAvailable() bool {
	gsScriptOnce.Do(func() {
		out, err := exec.Command("gs", "-h").Output()
		if err != nil {
			gsScriptFound = false
			return
		}
		gsScriptFound = gsScriptPNGRe.Match(out)
		gsIndex <- 1
	})
	return gsScriptFound
}

// ErrNoGhostscript is returned if the ghostscript command-line tool is not
// available.
var ErrNoGhostscript = errors.New("cannot run ghostscript")

var (
	gsScriptOnce  sync.Once
	gsScriptPNGRe = regexp.MustCompile(`\bpng16m\b`)
	gsScriptFound bool
	gsIndex       = make(chan int, 1)
)
