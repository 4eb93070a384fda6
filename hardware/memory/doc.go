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

// Package memory implements the flat address space of the machine. There is no
// banking, no mirroring and no protection. The ROM image is copied to the
// bottom of memory when the machine is created and the remainder of the
// address space is zeroed. What the program does with the memory after that
// is entirely up to the program.
//
// Accesses to addresses outside of the capacity of the memory result in an
// OutOfRange error. The address is never wrapped or clamped.
//
// The video RAM window, as used by the Space Invaders hardware, is defined by
// the VideoOrigin and VideoMemtop constants. ExportVideoRAM() writes the window
// verbatim to an io.Writer.
package memory
