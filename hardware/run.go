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
	"time"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/govern"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction, it can still be expensive to do a full continue check every
// time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// the delay between continue checks while the emulation is paused
const pausedDelay = 10 * time.Millisecond

// Run sets the emulation running. The emulation runs as quickly as possible
// unless the Pace preference is set.
//
// The continueCheck function is called after every instruction with a snapshot
// of the machine. Run() returns when continueCheck() returns govern.Ending or
// an error, or when an instruction fails.
func (m *Machine) Run(continueCheck func(Snapshot) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(Snapshot) (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			err = m.Step()
			if err != nil {
				return err
			}
			if m.Prefs.Pace > 0 {
				time.Sleep(m.Prefs.Pace)
			}
		case govern.Paused:
			time.Sleep(pausedDelay)
		default:
			return curated.Errorf("machine: unsupported emulation state (%v) in Run() function", state)
		}

		state, err = continueCheck(m.Snapshot())
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForInstructionCount runs the emulation for the specified number of
// instructions. Useful for tests.
func (m *Machine) RunForInstructionCount(count int) error {
	for i := 0; i < count; i++ {
		err := m.Step()
		if err != nil {
			return err
		}
	}
	return nil
}
