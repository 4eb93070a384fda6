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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// Result records information about the most recently executed instruction.
type Result struct {
	// address of the opcode
	Address uint16

	// definition of the instruction. will be nil if Final is false
	Defn *instructions.Definition

	// the operand of the instruction (if it has one). 16bit operands have
	// been assembled from the little-endian bytes in the instruction stream
	InstructionData uint16

	// whether the instruction set the program counter directly. always false
	// for instructions that aren't control transfers
	Taken bool

	// the result is of a completed instruction
	Final bool
}

func (r Result) String() string {
	if !r.Final || r.Defn == nil {
		return "no instruction"
	}
	return fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic)
}
