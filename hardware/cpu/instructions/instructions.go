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

// Package instructions defines the table of 8080 instruction definitions. The
// table describes each opcode (its mnemonic, length and the kind of operand
// that follows it in the instruction stream) and is used by both the CPU and
// the disassembly package.
//
// The undocumented opcodes of the 8080 have no definition. The entry in the
// table for those opcodes is nil.
package instructions

import "fmt"

// Operand describes the bytes that follow the opcode in the instruction
// stream.
type Operand int

// List of valid Operand values.
const (
	NoOperand Operand = iota

	// a single byte of immediate data
	Data8

	// two bytes of immediate data, low byte first
	Data16

	// a two byte address, low byte first
	Address

	// a single byte port number
	Port
)

// Category classifies an instruction by its effect.
type Category int

// List of valid Category values.
const (
	Move Category = iota
	Load
	Store
	Arithmetic
	Logical
	Rotate
	Flow
	Subroutine
	Stack
	Interrupt
	IO
	Control
)

func (c Category) String() string {
	switch c {
	case Move:
		return "Move"
	case Load:
		return "Load"
	case Store:
		return "Store"
	case Arithmetic:
		return "Arithmetic"
	case Logical:
		return "Logical"
	case Rotate:
		return "Rotate"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Stack:
		return "Stack"
	case Interrupt:
		return "Interrupt"
	case IO:
		return "IO"
	case Control:
		return "Control"
	}
	return "unknown category"
}

// Definition defines each instruction in the instruction set.
type Definition struct {
	OpCode   uint8
	Mnemonic string

	// the register or register pair operands that are encoded in the opcode.
	// for example, "B" for "INR B" or "A,M" for "MOV A,M"
	Operator string

	// number of bytes including the opcode
	Bytes int

	Operand   Operand
	Effect    Category
	Condition Condition
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s %s +%dbytes [effect=%s]", defn.OpCode, defn.Mnemonic, defn.Operator, defn.Bytes, defn.Effect)
}

// IsConditional returns true if the instruction depends on a condition code.
func (defn Definition) IsConditional() bool {
	return defn.Condition != Always
}

// IsFlow returns true if the instruction can change the program counter by
// something other than its own length.
func (defn Definition) IsFlow() bool {
	return defn.Effect == Flow || defn.Effect == Subroutine || defn.Effect == Interrupt
}
