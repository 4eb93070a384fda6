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
	"math/bits"
	"strings"
)

// Flags are the condition codes of the 8080.
type Flags struct {
	Zero     bool
	Sign     bool
	Parity   bool
	Carry    bool
	AuxCarry bool
}

// Bit positions of the flags when packed into a single byte.
const (
	ZeroBit     = 0x01
	SignBit     = 0x02
	ParityBit   = 0x04
	CarryBit    = 0x08
	AuxCarryBit = 0x10
)

// Label returns the canonical name for the flags.
func (f Flags) Label() string {
	return "CC"
}

// String returns the flags as a string of letters. Upper case letters indicate
// that the flag is set.
func (f Flags) String() string {
	s := strings.Builder{}

	if f.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if f.Sign {
		s.WriteRune('S')
	} else {
		s.WriteRune('s')
	}
	if f.Parity {
		s.WriteRune('P')
	} else {
		s.WriteRune('p')
	}
	if f.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if f.AuxCarry {
		s.WriteRune('A')
	} else {
		s.WriteRune('a')
	}

	return s.String()
}

// Pack the flags into a single byte.
func (f Flags) Pack() uint8 {
	var v uint8

	if f.Zero {
		v |= ZeroBit
	}
	if f.Sign {
		v |= SignBit
	}
	if f.Parity {
		v |= ParityBit
	}
	if f.Carry {
		v |= CarryBit
	}
	if f.AuxCarry {
		v |= AuxCarryBit
	}

	return v
}

// Unpack the flags from a single byte. Bits outside of the flag positions
// are ignored.
func (f *Flags) Unpack(v uint8) {
	f.Zero = v&ZeroBit == ZeroBit
	f.Sign = v&SignBit == SignBit
	f.Parity = v&ParityBit == ParityBit
	f.Carry = v&CarryBit == CarryBit
	f.AuxCarry = v&AuxCarryBit == AuxCarryBit
}

// SetZSP sets the Zero, Sign and Parity flags according to the value. The
// other flags are unaffected.
func (f *Flags) SetZSP(v uint8) {
	f.Zero = v == 0
	f.Sign = v&0x80 == 0x80
	f.Parity = Parity(v)
}

// Parity returns true if the number of set bits in v is even.
func Parity(v uint8) bool {
	return bits.OnesCount8(v)&0x01 == 0
}
