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
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
)

// Snapshot is a copy of the machine state that is of interest to renderers
// and continue checks. It shares no mutable memory with the machine.
type Snapshot struct {
	Registers registers.Registers

	// the most recently executed instruction
	LastResult cpu.Result

	// number of instructions executed since the last reset
	Instructions uint64
}

func (s Snapshot) String() string {
	return s.Registers.String()
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Registers:    m.CPU.Snapshot(),
		LastResult:   m.CPU.LastResult,
		Instructions: m.instructions,
	}
}
