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


package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/hardware"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator by running the machine for the
// specified duration. The number of instructions executed and the rate of
// execution is written to output.
//
// The machine should be freshly created or reset. The Pace preference is
// honoured so it should normally be zero.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf("performance: duration must be positive (%v)", duration)
	}

	var startCount uint64
	var endCount uint64
	var elapsed time.Duration

	runner := func() error {
		// closed when the duration has elapsed
		timesUp := make(chan bool)
		timer := time.AfterFunc(duration, func() {
			close(timesUp)
		})
		defer timer.Stop()

		startTime := time.Now()
		startCount = m.Snapshot().Instructions

		// only check for end of measurement period every PerformanceBrake
		// instructions
		performanceBrake := 0

		err := m.Run(func(s hardware.Snapshot) (govern.State, error) {
			endCount = s.Instructions

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case <-timesUp:
					return govern.Ending, timedOut
				default:
				}
			}

			return govern.Running, nil
		})

		elapsed = time.Since(startTime)

		return err
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	num := endCount - startCount
	output.Write([]byte(fmt.Sprintf("%d instructions in %.2f seconds (%.0f per second)\n",
		num, elapsed.Seconds(), CalcRate(num, elapsed))))

	return nil
}

// CalcRate returns the number of instructions per second.
func CalcRate(numInstructions uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(numInstructions) / elapsed.Seconds()
}
