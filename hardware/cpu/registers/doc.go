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

// Package registers implements the register file of the 8080: the seven 8bit
// registers, the stack pointer, the program counter, the interrupt enable
// flip-flop and the condition codes.
//
// The B/C, D/E and H/L registers can be treated as 16bit register pairs. The
// first register in each pair is the high byte.
//
// The Flags type packs to and from a single byte for the PUSH PSW and POP PSW
// instructions. The bit positions are fixed:
//
//	bit 0	Zero
//	bit 1	Sign
//	bit 2	Parity
//	bit 3	Carry
//	bit 4	Auxiliary Carry
//
// Note that this is not the bit layout of the real 8080 status byte. Programs
// that inspect the packed byte directly will see different values to what
// they would see on real hardware. Programs that only PUSH and POP the PSW
// will behave correctly.
package registers
