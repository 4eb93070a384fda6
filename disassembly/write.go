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

package disassembly

import (
	"fmt"
	"io"
)

// Write the disassembly of the byte stream to io.Writer. Each line is
// prefixed with the address of the instruction, starting at origin, and the
// instruction bytes.
func Write(output io.Writer, data []byte, origin uint32) error {
	for _, e := range Disassemble(data) {
		_, err := fmt.Fprintf(output, "%04x  %-9s %s\n", origin+e.Address, e.Bytecode(), e.String())
		if err != nil {
			return err
		}
	}
	return nil
}
