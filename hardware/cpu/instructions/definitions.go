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

import "fmt"

// register names in the order they are encoded in the opcode. the value 6
// indicates the memory location pointed to by HL
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// register pair names in the order they are encoded in bits 4 and 5 of the
// opcode. PUSH and POP replace SP with PSW
var pairNames = [4]string{"B", "D", "H", "SP"}
var stackPairNames = [4]string{"B", "D", "H", "PSW"}

// arithmetic and logical operations in the order they are encoded in bits 3
// to 5 of the opcode
var aluRegister = [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
var aluImmediate = [8]string{"ADI", "ACI", "SUI", "SBI", "ANI", "XRI", "ORI", "CPI"}

// RegisterName returns the name of the register encoded by the three bit
// value. The value 6 is the memory location pointed to by HL and is named "M".
func RegisterName(r uint8) string {
	return registerNames[r&0x07]
}

// PairName returns the name of the register pair encoded by the two bit value.
// If stack is true then the fourth pair is PSW rather than SP.
func PairName(p uint8, stack bool) string {
	if stack {
		return stackPairNames[p&0x03]
	}
	return pairNames[p&0x03]
}

var definitions []*Definition

// GetDefinitions returns the table of instruction definitions. The table has
// 256 entries, one for every opcode. Undocumented opcodes have a nil entry.
//
// The same table is returned on every call. It should not be modified.
func GetDefinitions() []*Definition {
	return definitions
}

func define(opcode uint8, mnemonic string, operator string, operand Operand, effect Category, condition Condition) {
	if definitions[opcode] != nil {
		panic(fmt.Sprintf("instructions: duplicate definition for opcode %#02x", opcode))
	}

	bytes := 1
	switch operand {
	case Data8, Port:
		bytes = 2
	case Data16, Address:
		bytes = 3
	}

	definitions[opcode] = &Definition{
		OpCode:    opcode,
		Mnemonic:  mnemonic,
		Operator:  operator,
		Bytes:     bytes,
		Operand:   operand,
		Effect:    effect,
		Condition: condition,
	}
}

func init() {
	definitions = make([]*Definition, 256)

	define(0x00, "NOP", "", NoOperand, Control, Always)

	// the regular 00-3f block
	for p := uint8(0); p < 4; p++ {
		pair := PairName(p, false)
		define(0x01|p<<4, "LXI", pair, Data16, Load, Always)
		define(0x03|p<<4, "INX", pair, NoOperand, Arithmetic, Always)
		define(0x09|p<<4, "DAD", pair, NoOperand, Arithmetic, Always)
		define(0x0b|p<<4, "DCX", pair, NoOperand, Arithmetic, Always)
	}

	define(0x02, "STAX", "B", NoOperand, Store, Always)
	define(0x12, "STAX", "D", NoOperand, Store, Always)
	define(0x22, "SHLD", "", Address, Store, Always)
	define(0x32, "STA", "", Address, Store, Always)
	define(0x0a, "LDAX", "B", NoOperand, Load, Always)
	define(0x1a, "LDAX", "D", NoOperand, Load, Always)
	define(0x2a, "LHLD", "", Address, Load, Always)
	define(0x3a, "LDA", "", Address, Load, Always)

	for r := uint8(0); r < 8; r++ {
		reg := RegisterName(r)
		define(0x04|r<<3, "INR", reg, NoOperand, Arithmetic, Always)
		define(0x05|r<<3, "DCR", reg, NoOperand, Arithmetic, Always)
		define(0x06|r<<3, "MVI", reg, Data8, Load, Always)
	}

	define(0x07, "RLC", "", NoOperand, Rotate, Always)
	define(0x0f, "RRC", "", NoOperand, Rotate, Always)
	define(0x17, "RAL", "", NoOperand, Rotate, Always)
	define(0x1f, "RAR", "", NoOperand, Rotate, Always)
	define(0x27, "DAA", "", NoOperand, Arithmetic, Always)
	define(0x2f, "CMA", "", NoOperand, Logical, Always)
	define(0x37, "STC", "", NoOperand, Control, Always)
	define(0x3f, "CMC", "", NoOperand, Control, Always)

	// register to register moves. MOV M,M is HLT
	for d := uint8(0); d < 8; d++ {
		for s := uint8(0); s < 8; s++ {
			opcode := 0x40 | d<<3 | s
			if opcode == 0x76 {
				define(opcode, "HLT", "", NoOperand, Control, Always)
				continue
			}
			define(opcode, "MOV", fmt.Sprintf("%s,%s", RegisterName(d), RegisterName(s)), NoOperand, Move, Always)
		}
	}

	// arithmetic and logical operations on the accumulator
	for op := uint8(0); op < 8; op++ {
		effect := Arithmetic
		if op >= 4 && op < 7 {
			effect = Logical
		}
		for r := uint8(0); r < 8; r++ {
			define(0x80|op<<3|r, aluRegister[op], RegisterName(r), NoOperand, effect, Always)
		}
		define(0xc6|op<<3, aluImmediate[op], "", Data8, effect, Always)
	}

	// conditional flow
	for c := Condition(0); c < Always; c++ {
		cc := uint8(c) << 3
		define(0xc0|cc, fmt.Sprintf("R%s", c.Suffix()), "", NoOperand, Subroutine, c)
		define(0xc2|cc, fmt.Sprintf("J%s", c.Suffix()), "", Address, Flow, c)
		define(0xc4|cc, fmt.Sprintf("C%s", c.Suffix()), "", Address, Subroutine, c)
	}

	define(0xc3, "JMP", "", Address, Flow, Always)
	define(0xc9, "RET", "", NoOperand, Subroutine, Always)
	define(0xcd, "CALL", "", Address, Subroutine, Always)
	define(0xe9, "PCHL", "", NoOperand, Flow, Always)

	for n := uint8(0); n < 8; n++ {
		define(0xc7|n<<3, "RST", fmt.Sprintf("%d", n), NoOperand, Interrupt, Always)
	}

	for p := uint8(0); p < 4; p++ {
		pair := PairName(p, true)
		define(0xc1|p<<4, "POP", pair, NoOperand, Stack, Always)
		define(0xc5|p<<4, "PUSH", pair, NoOperand, Stack, Always)
	}

	define(0xe3, "XTHL", "", NoOperand, Stack, Always)
	define(0xf9, "SPHL", "", NoOperand, Stack, Always)
	define(0xeb, "XCHG", "", NoOperand, Move, Always)

	define(0xd3, "OUT", "", Port, IO, Always)
	define(0xdb, "IN", "", Port, IO, Always)

	define(0xf3, "DI", "", NoOperand, Control, Always)
	define(0xfb, "EI", "", NoOperand, Control, Always)
}
