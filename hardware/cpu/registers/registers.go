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

package registers

import (
	"fmt"
	"strings"
)

// Registers is the complete register file of the 8080. The zero value is a
// register file in its reset state.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	SP uint16
	PC uint16

	InterruptEnable bool

	Flags Flags
}

// BC returns the B and C registers as a 16bit value.
func (r Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// DE returns the D and E registers as a 16bit value.
func (r Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// HL returns the H and L registers as a 16bit value.
func (r Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetBC loads the B and C registers from a 16bit value.
func (r *Registers) SetBC(v uint16) {
	r.B = uint8(v >> 8)
	r.C = uint8(v)
}

// SetDE loads the D and E registers from a 16bit value.
func (r *Registers) SetDE(v uint16) {
	r.D = uint8(v >> 8)
	r.E = uint8(v)
}

// SetHL loads the H and L registers from a 16bit value.
func (r *Registers) SetHL(v uint16) {
	r.H = uint8(v >> 8)
	r.L = uint8(v)
}

// Reset all registers to zero. Interrupts are disabled.
func (r *Registers) Reset() {
	*r = Registers{}
}

func boolToHex(b bool) string {
	if b {
		return "01"
	}
	return "00"
}

// String returns the register file in the form expected by the state
// renderer. One field per line, in a fixed order. 8bit values are two hex
// digits and 16bit values are four hex digits.
func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("a: %02x\n", r.A))
	s.WriteString(fmt.Sprintf("b: %02x\n", r.B))
	s.WriteString(fmt.Sprintf("c: %02x\n", r.C))
	s.WriteString(fmt.Sprintf("d: %02x\n", r.D))
	s.WriteString(fmt.Sprintf("e: %02x\n", r.E))
	s.WriteString(fmt.Sprintf("h: %02x\n", r.H))
	s.WriteString(fmt.Sprintf("l: %02x\n", r.L))
	s.WriteString(fmt.Sprintf("sp: %04x\n", r.SP))
	s.WriteString(fmt.Sprintf("pc: %04x\n", r.PC))
	s.WriteString(fmt.Sprintf("int_enable: %s\n", boolToHex(r.InterruptEnable)))
	s.WriteString("condition_codes:\n")
	s.WriteString(fmt.Sprintf("  z: %s\n", boolToHex(r.Flags.Zero)))
	s.WriteString(fmt.Sprintf("  s: %s\n", boolToHex(r.Flags.Sign)))
	s.WriteString(fmt.Sprintf("  p: %s\n", boolToHex(r.Flags.Parity)))
	s.WriteString(fmt.Sprintf("  cy: %s\n", boolToHex(r.Flags.Carry)))
	s.WriteString(fmt.Sprintf("  ac: %s\n", boolToHex(r.Flags.AuxCarry)))
	return s.String()
}

// Summary returns the register file on a single line.
func (r Registers) Summary() string {
	return fmt.Sprintf("PC=%04x SP=%04x A=%02x BC=%04x DE=%04x HL=%04x %s=%s IE=%v",
		r.PC, r.SP, r.A, r.BC(), r.DE(), r.HL(), r.Flags.Label(), r.Flags, r.InterruptEnable)
}
