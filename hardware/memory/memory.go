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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
)

// Sentinal error patterns.
const (
	OutOfRange       = cpubus.OutOfRange
	ROMTooLarge      = "memory: rom too large (%d bytes) for memory capacity (%d bytes)"
	CapacityTooSmall = "memory: capacity too small (%d bytes)"
)

// MinimumCapacity is the smallest amount of memory that can be created. It is
// the full range of the 16bit address bus.
const MinimumCapacity = 0x10000

// The video RAM window.
const (
	VideoOrigin = uint32(0x2400)
	VideoMemtop = uint32(0x3fff)
)

// Memory is the entire address space of the machine.
type Memory struct {
	data []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(capacity int) (*Memory, error) {
	if capacity < MinimumCapacity {
		return nil, curated.Errorf(CapacityTooSmall, capacity)
	}
	return &Memory{
		data: make([]uint8, capacity),
	}, nil
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes", len(mem.data))
}

// Capacity returns the number of addressable bytes.
func (mem *Memory) Capacity() int {
	return len(mem.data)
}

// Check implements the cpubus.Memory interface.
func (mem *Memory) Check(address uint32) error {
	if uint64(address) >= uint64(len(mem.data)) {
		return curated.Errorf(OutOfRange, address)
	}
	return nil
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint32) (uint8, error) {
	if err := mem.Check(address); err != nil {
		return 0, err
	}
	return mem.data[address], nil
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint32, data uint8) error {
	if err := mem.Check(address); err != nil {
		return err
	}
	mem.data[address] = data
	return nil
}

// Load copies data verbatim to the bottom of memory. The remainder of memory
// is zeroed.
func (mem *Memory) Load(data []byte) error {
	if len(data) > len(mem.data) {
		return curated.Errorf(ROMTooLarge, len(data), len(mem.data))
	}
	n := copy(mem.data, data)
	clear(mem.data[n:])
	return nil
}

// ExportVideoRAM writes the video RAM window to the io.Writer.
func (mem *Memory) ExportVideoRAM(w io.Writer) error {
	if err := mem.Check(VideoMemtop); err != nil {
		return err
	}
	_, err := w.Write(mem.data[VideoOrigin : VideoMemtop+1])
	if err != nil {
		return curated.Errorf("memory: %v", err)
	}
	return nil
}

// Dump returns a hex listing of the memory between the two addresses
// (inclusive). Sixteen bytes per line, prefixed with the address of the first
// byte on the line.
func (mem *Memory) Dump(from uint32, to uint32) (string, error) {
	if err := mem.Check(from); err != nil {
		return "", err
	}
	if err := mem.Check(to); err != nil {
		return "", err
	}

	s := strings.Builder{}
	for a := from; a <= to; a++ {
		if (a-from)%16 == 0 {
			if a != from {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x ", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", mem.data[a]))
	}

	return s.String(), nil
}
