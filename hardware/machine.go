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

package hardware

import (
	"io"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/interrupt"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/hardware/preferences"
	"github.com/jetsetilly/gopher8080/logger"
)

// Machine is the root of the emulation.
type Machine struct {
	Prefs *preferences.Preferences

	CPU       *cpu.CPU
	Mem       *memory.Memory
	Ports     *ports.Ports
	Interrupt *interrupt.Controller

	rom []byte

	// index into Prefs.Vectors of the next interrupt vector
	vector int

	// number of instructions executed since the last reset
	instructions uint64

	// source of the current time for the interrupt controller
	clock func() time.Time
}

// NewMachine creates a new Machine with the ROM loaded at address zero. The
// prefs argument can be nil, in which case the default preferences are used.
func NewMachine(rom []byte, prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		prefs = preferences.NewPreferences()
	}

	err := prefs.Validate()
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	m := &Machine{
		Prefs:     prefs,
		Ports:     ports.NewPorts(),
		Interrupt: interrupt.NewController(prefs.Period),
		rom:       rom,
		clock:     time.Now,
	}

	m.Mem, err = memory.NewMemory(prefs.MemorySize)
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	m.CPU = cpu.NewCPU(m.Mem, m.Ports)

	err = m.Reset()
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "machine", "%d byte rom in %d bytes of memory", len(rom), m.Mem.Capacity())

	return m, nil
}

// Reset reloads the ROM and resets the CPU and interrupt controller.
func (m *Machine) Reset() error {
	err := m.Mem.Load(m.rom)
	if err != nil {
		return curated.Errorf("machine: %v", err)
	}
	m.CPU.Reset()
	m.Interrupt.Reset(m.clock())
	m.vector = 0
	m.instructions = 0
	return nil
}

// SetClock replaces the source of the current time used by the interrupt
// controller. A nil function restores the system clock. The interrupt period
// restarts from the new clock's current time.
func (m *Machine) SetClock(clock func() time.Time) {
	if clock == nil {
		clock = time.Now
	}
	m.clock = clock
	m.Interrupt.Reset(m.clock())
}

// AttachTap adds an observer to the output ports.
func (m *Machine) AttachTap(tap ports.Tap) {
	m.Ports.AttachTap(tap)
}

// ExportVideoRAM writes the video memory to the io.Writer.
func (m *Machine) ExportVideoRAM(w io.Writer) error {
	err := m.Mem.ExportVideoRAM(w)
	if err != nil {
		return curated.Errorf("machine: %v", err)
	}
	return nil
}

// DumpStack returns a hex listing of the memory at the top of the stack,
// starting at SP. The listing is shortened if it would run past the top of
// the address bus or the end of memory.
func (m *Machine) DumpStack(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	from := uint32(m.CPU.SP)
	to := from + uint32(n) - 1
	if to > cpubus.Memtop {
		to = cpubus.Memtop
	}
	if top := uint32(m.Mem.Capacity() - 1); to > top {
		to = top
	}

	s, err := m.Mem.Dump(from, to)
	if err != nil {
		return "", curated.Errorf("machine: %v", err)
	}
	return s, nil
}

// Visualise writes a graphviz description of the current machine state to
// the io.Writer.
func (m *Machine) Visualise(w io.Writer) {
	s := m.Snapshot()
	memviz.Map(w, &s)
}
