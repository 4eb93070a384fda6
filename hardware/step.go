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
	"github.com/jetsetilly/gopher8080/logger"
)

// Step executes a single instruction and then gives the interrupt controller
// the chance to interrupt the CPU. Interrupts can only happen between
// instructions.
func (m *Machine) Step() error {
	err := m.CPU.ExecuteInstruction()
	if err != nil {
		logger.Log(logger.Allow, "machine", err.Error())
		return err
	}
	m.instructions++

	fired, err := m.Interrupt.MaybeInterrupt(m.CPU, m.Prefs.Vectors[m.vector], m.clock())
	if err != nil {
		logger.Log(logger.Allow, "machine", err.Error())
		return err
	}
	if fired {
		m.vector++
		if m.vector >= len(m.Prefs.Vectors) {
			m.vector = 0
		}
	}

	return nil
}
