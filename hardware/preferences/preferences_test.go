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

package preferences_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/interrupt"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/preferences"
	"github.com/jetsetilly/gopher8080/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewPreferences()
	test.ExpectSuccess(t, p.Validate())
	test.ExpectEquality(t, p.MemorySize, memory.MinimumCapacity)
	test.ExpectEquality(t, p.Period, interrupt.DefaultPeriod)
	test.ExpectEquality(t, p.String(), "memory=65536 pace=0s period=16.666666ms vectors=1,2")
}

func TestValidate(t *testing.T) {
	p := preferences.NewPreferences()
	p.MemorySize = 0x100
	test.ExpectSuccess(t, curated.Is(p.Validate(), preferences.InvalidPreference))

	p = preferences.NewPreferences()
	p.Period = 0
	test.ExpectFailure(t, p.Validate())

	p = preferences.NewPreferences()
	p.Vectors = []uint8{8}
	test.ExpectFailure(t, p.Validate())

	p = preferences.NewPreferences()
	p.Vectors = nil
	test.ExpectFailure(t, p.Validate())
}

func TestSetVectors(t *testing.T) {
	p := preferences.NewPreferences()

	test.ExpectSuccess(t, p.SetVectors("2, 1, 7"))
	test.DemandEquality(t, len(p.Vectors), 3)
	test.ExpectEquality(t, p.Vectors[0], uint8(2))
	test.ExpectEquality(t, p.Vectors[2], uint8(7))

	test.ExpectFailure(t, p.SetVectors("8"))
	test.ExpectFailure(t, p.SetVectors("a"))
	test.ExpectFailure(t, p.SetVectors(""))

	// failed parse leaves vectors unchanged
	test.ExpectEquality(t, len(p.Vectors), 3)
}
