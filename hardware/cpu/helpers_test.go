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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, memory.MinimumCapacity),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[int(origin)+i] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint32, value uint8) {
	t.Helper()
	d, _ := mem.Read(address)
	if d != value {
		t.Errorf("memory assertion failed (%02x  - wanted %02x at address %04x)", d, value, address)
	}
}

func (mem *mockMem) Clear() {
	clear(mem.internal)
}

func (mem *mockMem) Check(address uint32) error {
	if address >= uint32(len(mem.internal)) {
		return curated.Errorf(memory.OutOfRange, address)
	}
	return nil
}

func (mem *mockMem) Read(address uint32) (uint8, error) {
	if err := mem.Check(address); err != nil {
		return 0, err
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint32, data uint8) error {
	if err := mem.Check(address); err != nil {
		return err
	}
	mem.internal[address] = data
	return nil
}

type mockPorts struct {
	in  uint8
	out []uint8
}

func (p *mockPorts) In(_ uint8) uint8 {
	return p.in
}

func (p *mockPorts) Out(port uint8, data uint8) {
	p.out = append(p.out, port, data)
}

func step(t *testing.T, mc *cpu.CPU) cpu.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}
