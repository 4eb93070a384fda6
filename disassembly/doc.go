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

// Package disassembly renders a stream of bytes as 8080 instructions. The
// instruction definitions are taken from the instructions package.
//
// Each instruction is rendered as the mnemonic padded to eight characters,
// followed by the operands. 8bit operands are rendered as two digit hex
// values and 16bit operands as four digit hex values, high byte first:
//
//	LXI     B,$1234
//	MVI     A,$05
//	RST     1
//
// An opcode with no definition is rendered as "unknown" and consumes a
// single byte. An instruction that is cut short by the end of the stream is
// also rendered as "unknown", once for each of the remaining bytes.
package disassembly
