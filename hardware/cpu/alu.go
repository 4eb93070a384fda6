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

import "github.com/jetsetilly/gopher8080/hardware/cpu/registers"

// add returns a+b (plus one if carry is true). The zero, sign, parity and
// carry flags are set according to the result.
func add(f *registers.Flags, a uint8, b uint8, carry bool) uint8 {
	r := uint16(a) + uint16(b)
	if carry {
		r++
	}
	f.SetZSP(uint8(r))
	f.Carry = r > 0xff
	return uint8(r)
}

// subtract returns a-b (minus one if borrow is true). The carry flag is set
// if the subtrahend, including the borrow, is larger than a.
func subtract(f *registers.Flags, a uint8, b uint8, borrow bool) uint8 {
	s := uint16(b)
	if borrow {
		s++
	}
	r := uint8(uint16(a) - s)
	f.SetZSP(r)
	f.Carry = uint16(a) < s
	return r
}

// logical sets the flags for the result of ANA, XRA and ORA. Carry and
// auxiliary carry are always cleared.
func logical(f *registers.Flags, r uint8) uint8 {
	f.SetZSP(r)
	f.Carry = false
	f.AuxCarry = false
	return r
}

// accumulate performs the arithmetic or logical operation encoded in bits 3
// to 5 of the opcode. CMP does not change the accumulator.
func accumulate(reg *registers.Registers, op uint8, v uint8) {
	f := &reg.Flags
	switch op & 0x07 {
	case 0:
		reg.A = add(f, reg.A, v, false)
	case 1:
		reg.A = add(f, reg.A, v, f.Carry)
	case 2:
		reg.A = subtract(f, reg.A, v, false)
	case 3:
		reg.A = subtract(f, reg.A, v, f.Carry)
	case 4:
		reg.A = logical(f, reg.A&v)
	case 5:
		reg.A = logical(f, reg.A^v)
	case 6:
		reg.A = logical(f, reg.A|v)
	case 7:
		_ = subtract(f, reg.A, v, false)
	}
}
