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

package instructions

// Condition is the condition code test encoded in conditional jump, call and
// return instructions.
type Condition int

// List of valid Condition values. The values from NotZero to Minus are in the
// order that they are encoded in bits 3 to 5 of the opcode.
const (
	NotZero Condition = iota
	Zero
	NoCarry
	Carry
	ParityOdd
	ParityEven
	Plus
	Minus

	// the instruction is unconditional
	Always
)

// Suffix returns the mnemonic suffix for the condition.
func (c Condition) Suffix() string {
	switch c {
	case NotZero:
		return "NZ"
	case Zero:
		return "Z"
	case NoCarry:
		return "NC"
	case Carry:
		return "C"
	case ParityOdd:
		return "PO"
	case ParityEven:
		return "PE"
	case Plus:
		return "P"
	case Minus:
		return "M"
	}
	return ""
}

func (c Condition) String() string {
	if c == Always {
		return "always"
	}
	return c.Suffix()
}
