// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package easyterm

import (
	"fmt"
	"os"
)

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// Terminal is not supported on windows.
type Terminal struct{}

// Initialise always returns an error on windows.
func (pt *Terminal) Initialise(_, _ *os.File) error {
	return fmt.Errorf("easyterm: not supported on windows")
}

// CleanUp does nothing on windows.
func (pt *Terminal) CleanUp() {}

// Print does nothing on windows.
func (pt *Terminal) Print(_ string, _ ...interface{}) {}

// Geometry returns the zero value on windows.
func (pt *Terminal) Geometry() Geometry {
	return Geometry{}
}

// CanonicalMode does nothing on windows.
func (pt *Terminal) CanonicalMode() {}

// CBreakMode does nothing on windows.
func (pt *Terminal) CBreakMode() {}

// Flush does nothing on windows.
func (pt *Terminal) Flush() error {
	return nil
}

// ReadKey always returns an error on windows.
func (pt *Terminal) ReadKey() (byte, error) {
	return 0, fmt.Errorf("easyterm: not supported on windows")
}
