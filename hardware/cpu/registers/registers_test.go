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

package registers_test

import (
	"math/bits"
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/test"
)

func TestPairs(t *testing.T) {
	var r registers.Registers

	r.SetBC(0x1234)
	test.ExpectEquality(t, r.B, uint8(0x12))
	test.ExpectEquality(t, r.C, uint8(0x34))
	test.ExpectEquality(t, r.BC(), uint16(0x1234))

	r.SetDE(0xabcd)
	test.ExpectEquality(t, r.D, uint8(0xab))
	test.ExpectEquality(t, r.E, uint8(0xcd))
	test.ExpectEquality(t, r.DE(), uint16(0xabcd))

	r.H = 0x20
	r.L = 0x01
	test.ExpectEquality(t, r.HL(), uint16(0x2001))
}

func TestPackedFlags(t *testing.T) {
	var f registers.Flags

	f.Zero = true
	test.ExpectEquality(t, f.Pack(), uint8(0x01))

	f = registers.Flags{Sign: true}
	test.ExpectEquality(t, f.Pack(), uint8(0x02))

	f = registers.Flags{Parity: true}
	test.ExpectEquality(t, f.Pack(), uint8(0x04))

	f = registers.Flags{Carry: true}
	test.ExpectEquality(t, f.Pack(), uint8(0x08))

	f = registers.Flags{AuxCarry: true}
	test.ExpectEquality(t, f.Pack(), uint8(0x10))

	// every combination of the five flags round trips
	for v := 0; v < 0x20; v++ {
		var g registers.Flags
		g.Unpack(uint8(v))
		test.ExpectEquality(t, g.Pack(), uint8(v))
	}

	// bits outside the flag positions are ignored
	f.Unpack(0xe0)
	test.ExpectEquality(t, f, registers.Flags{})
}

func TestParity(t *testing.T) {
	for v := 0; v <= 0xff; v++ {
		test.ExpectEquality(t, registers.Parity(uint8(v)), bits.OnesCount8(uint8(v))%2 == 0, v)
	}

	test.ExpectSuccess(t, registers.Parity(0x00))
	test.ExpectSuccess(t, registers.Parity(0x03))
	test.ExpectFailure(t, registers.Parity(0x01))
	test.ExpectFailure(t, registers.Parity(0x80))
}

func TestSetZSP(t *testing.T) {
	var f registers.Flags
	f.Carry = true

	f.SetZSP(0x00)
	test.ExpectEquality(t, f.String(), "ZsPCa")

	f.SetZSP(0x80)
	test.ExpectEquality(t, f.String(), "zSpCa")
}

func TestString(t *testing.T) {
	r := registers.Registers{A: 0x05, SP: 0x2400, PC: 0x0002}
	r.Flags.Carry = true

	test.ExpectEquality(t, r.String(), "a: 05\nb: 00\nc: 00\nd: 00\ne: 00\nh: 00\nl: 00\n"+
		"sp: 2400\npc: 0002\nint_enable: 00\ncondition_codes:\n"+
		"  z: 00\n  s: 00\n  p: 00\n  cy: 01\n  ac: 00\n")

	test.ExpectEquality(t, r.Summary(), "PC=0002 SP=2400 A=05 BC=0000 DE=0000 HL=0000 CC=zspCa IE=false")
}
