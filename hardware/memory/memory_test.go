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

package memory_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/test"
)

func TestCapacity(t *testing.T) {
	_, err := memory.NewMemory(0x1000)
	test.ExpectSuccess(t, curated.Is(err, memory.CapacityTooSmall))

	mem, err := memory.NewMemory(memory.MinimumCapacity)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mem.Capacity(), memory.MinimumCapacity)
}

func TestReadWrite(t *testing.T) {
	mem, err := memory.NewMemory(memory.MinimumCapacity)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, mem.Write(0x0000, 0x12))
	test.ExpectSuccess(t, mem.Write(0xffff, 0x34))

	v, err := mem.Read(0x0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))

	v, err = mem.Read(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x34))
}

func TestOutOfRange(t *testing.T) {
	mem, err := memory.NewMemory(memory.MinimumCapacity)
	test.DemandSuccess(t, err)

	_, err = mem.Read(0x10000)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))
	test.ExpectEquality(t, err.Error(), "memory: out of range access (0x10000)")

	err = mem.Write(0xffffffff, 0x01)
	test.ExpectSuccess(t, curated.Is(err, memory.OutOfRange))

	vals, ok := curated.Values(err, memory.OutOfRange)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, vals[0].(uint32), uint32(0xffffffff))

	// out of range address is not wrapped into memory
	v, err := mem.Read(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0))
}

func TestLoad(t *testing.T) {
	mem, err := memory.NewMemory(memory.MinimumCapacity)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, mem.Write(0x0010, 0xff))
	test.DemandSuccess(t, mem.Load([]byte{0x3e, 0x05}))

	v, _ := mem.Read(0)
	test.ExpectEquality(t, v, uint8(0x3e))
	v, _ = mem.Read(1)
	test.ExpectEquality(t, v, uint8(0x05))

	// remainder of memory is zeroed
	v, _ = mem.Read(0x0010)
	test.ExpectEquality(t, v, uint8(0x00))

	err = mem.Load(make([]byte, memory.MinimumCapacity+1))
	test.ExpectSuccess(t, curated.Is(err, memory.ROMTooLarge))
}

func TestExportVideoRAM(t *testing.T) {
	mem, err := memory.NewMemory(memory.MinimumCapacity)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, mem.Write(memory.VideoOrigin-1, 0xaa))
	test.DemandSuccess(t, mem.Write(memory.VideoOrigin, 0x01))
	test.DemandSuccess(t, mem.Write(memory.VideoMemtop, 0x02))
	test.DemandSuccess(t, mem.Write(memory.VideoMemtop+1, 0xbb))

	var b bytes.Buffer
	test.DemandSuccess(t, mem.ExportVideoRAM(&b))

	fb := b.Bytes()
	test.DemandEquality(t, len(fb), int(memory.VideoMemtop-memory.VideoOrigin+1))
	test.ExpectEquality(t, fb[0], uint8(0x01))
	test.ExpectEquality(t, fb[len(fb)-1], uint8(0x02))
}

func TestDump(t *testing.T) {
	mem, err := memory.NewMemory(memory.MinimumCapacity)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Load([]byte{0x01, 0x34, 0x12}))

	s, err := mem.Dump(0, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "0000  01 34 12")

	_, err = mem.Dump(0, 0x10000)
	test.ExpectFailure(t, err)
}
