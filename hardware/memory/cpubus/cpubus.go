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

// Package cpubus defines the view of memory as seen by the CPU.
package cpubus

// Memtop is the highest address on the 16bit address bus. Memory beyond this
// address can exist but it is never reachable by the CPU.
const Memtop = uint32(0xffff)

// OutOfRange is the error pattern for accesses outside of the address bus or
// outside of the memory that backs it.
const OutOfRange = "memory: out of range access (0x%04x)"

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// Addresses are wider than the 16bit address bus of the CPU. This is so that
// address arithmetic that would otherwise wrap around the top (or bottom) of
// the address space is instead presented to the memory system as an address
// that is out of range. The memory implementation is expected to return an
// error in that case and never to wrap or clamp the address.
type Memory interface {
	Read(address uint32) (uint8, error)
	Write(address uint32, data uint8) error

	// Check returns the same error that Read() or Write() would return for
	// the address. It has no other side-effect.
	Check(address uint32) error
}
