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
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// Unknown is the mnemonic used for bytes that are not instructions.
const Unknown = "unknown"

// Entry is a disassembled instruction.
type Entry struct {
	// offset of the instruction from the start of the stream, or the address
	// of the instruction in the case of FormatResult()
	Address uint32

	// the bytes that make up the instruction
	Bytes []byte

	// definition of the instruction. nil if the entry is unknown
	Defn *instructions.Definition

	Mnemonic string
	Operands string
}

func (e Entry) String() string {
	return strings.TrimRight(fmt.Sprintf("%-8s%s", e.Mnemonic, e.Operands), " ")
}

// Bytecode returns the bytes of the instruction as hex values.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// operands combines the operator of the definition with the formatted
// instruction data
func operands(defn *instructions.Definition, data uint16) string {
	var operand string
	switch defn.Operand {
	case instructions.Data8, instructions.Port:
		operand = fmt.Sprintf("$%02x", data)
	case instructions.Data16, instructions.Address:
		operand = fmt.Sprintf("$%04x", data)
	}

	if defn.Operator == "" {
		return operand
	}
	if operand == "" {
		return defn.Operator
	}
	return fmt.Sprintf("%s,%s", defn.Operator, operand)
}

func unknown(address uint32, b byte) Entry {
	return Entry{
		Address:  address,
		Bytes:    []byte{b},
		Mnemonic: Unknown,
	}
}

// Disassemble the byte stream. There is one entry for every instruction.
func Disassemble(data []byte) []Entry {
	defns := instructions.GetDefinitions()

	var entries []Entry

	for i := 0; i < len(data); {
		defn := defns[data[i]]

		if defn == nil || i+defn.Bytes > len(data) {
			entries = append(entries, unknown(uint32(i), data[i]))
			i++
			continue
		}

		var v uint16
		switch defn.Bytes {
		case 2:
			v = uint16(data[i+1])
		case 3:
			v = uint16(data[i+2])<<8 | uint16(data[i+1])
		}

		entries = append(entries, Entry{
			Address:  uint32(i),
			Bytes:    data[i : i+defn.Bytes],
			Defn:     defn,
			Mnemonic: defn.Mnemonic,
			Operands: operands(defn, v),
		})

		i += defn.Bytes
	}

	return entries
}

// FormatResult creates an Entry for the result of an executed instruction.
// The Bytes field is not set.
func FormatResult(result cpu.Result) Entry {
	if !result.Final || result.Defn == nil {
		return Entry{Mnemonic: Unknown}
	}
	return Entry{
		Address:  uint32(result.Address),
		Defn:     result.Defn,
		Mnemonic: result.Defn.Mnemonic,
		Operands: operands(result.Defn, result.InstructionData),
	}
}
