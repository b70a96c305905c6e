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

package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes a complete PDF file to the named file.  Missing parent
// directories are created first.  An existing file is overwritten.
func WriteFile(name string, data []byte) error {
	dir := filepath.Dir(name)
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	err = os.WriteFile(name, data, 0o644)
	if err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}
