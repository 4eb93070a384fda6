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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/test"
)

func TestTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var count int
	for i, d := range defs {
		if d == nil {
			continue
		}
		count++
		test.ExpectEquality(t, d.OpCode, uint8(i))
	}

	// 256 opcodes less the twelve undocumented opcodes
	test.ExpectEquality(t, count, 244)

	for _, opcode := range []uint8{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xcb, 0xd9, 0xdd, 0xed, 0xfd} {
		test.ExpectEquality(t, defs[opcode] == nil, true, opcode)
	}
}

func TestSpotChecks(t *testing.T) {
	defs := instructions.GetDefinitions()

	d := defs[0x01]
	test.ExpectEquality(t, d.Mnemonic, "LXI")
	test.ExpectEquality(t, d.Operator, "B")
	test.ExpectEquality(t, d.Bytes, 3)
	test.ExpectEquality(t, d.Operand, instructions.Data16)

	d = defs[0x3e]
	test.ExpectEquality(t, d.Mnemonic, "MVI")
	test.ExpectEquality(t, d.Operator, "A")
	test.ExpectEquality(t, d.Bytes, 2)

	d = defs[0x77]
	test.ExpectEquality(t, d.Mnemonic, "MOV")
	test.ExpectEquality(t, d.Operator, "M,A")
	test.ExpectEquality(t, d.Bytes, 1)

	d = defs[0x76]
	test.ExpectEquality(t, d.Mnemonic, "HLT")

	d = defs[0xc2]
	test.ExpectEquality(t, d.Mnemonic, "JNZ")
	test.ExpectEquality(t, d.Condition, instructions.NotZero)
	test.ExpectSuccess(t, d.IsConditional())
	test.ExpectSuccess(t, d.IsFlow())

	d = defs[0xf8]
	test.ExpectEquality(t, d.Mnemonic, "RM")
	test.ExpectEquality(t, d.Condition, instructions.Minus)

	d = defs[0xf5]
	test.ExpectEquality(t, d.Mnemonic, "PUSH")
	test.ExpectEquality(t, d.Operator, "PSW")

	d = defs[0x31]
	test.ExpectEquality(t, d.Operator, "SP")

	d = defs[0xcf]
	test.ExpectEquality(t, d.Mnemonic, "RST")
	test.ExpectEquality(t, d.Operator, "1")

	d = defs[0xdb]
	test.ExpectEquality(t, d.Mnemonic, "IN")
	test.ExpectEquality(t, d.Operand, instructions.Port)
	test.ExpectEquality(t, d.Bytes, 2)

	d = defs[0xaf]
	test.ExpectEquality(t, d.Mnemonic, "XRA")
	test.ExpectEquality(t, d.Effect, instructions.Logical)
	test.ExpectFailure(t, d.IsConditional())
}
