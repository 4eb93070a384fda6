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

// Package preferences collates the values that configure the emulated
// machine. The values are set from the command line.
package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/interrupt"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// InvalidPreference is the error pattern returned by Validate() and by the
// functions that parse preference values.
const InvalidPreference = "preferences: %v"

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	// size of memory in bytes
	MemorySize int

	// delay after every instruction. zero means the emulation runs as
	// quickly as possible
	Pace time.Duration

	// minimum time between interrupts
	Period time.Duration

	// interrupt vectors. used in turn every time an interrupt fires
	Vectors []uint8
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The vectors are the same as the Space Invaders hardware:
// RST 1 at mid-screen and RST 2 at vertical blank.
func NewPreferences() *Preferences {
	return &Preferences{
		MemorySize: memory.MinimumCapacity,
		Period:     interrupt.DefaultPeriod,
		Vectors:    []uint8{1, 2},
	}
}

func (p *Preferences) String() string {
	v := make([]string, len(p.Vectors))
	for i := range p.Vectors {
		v[i] = strconv.Itoa(int(p.Vectors[i]))
	}
	return fmt.Sprintf("memory=%d pace=%v period=%v vectors=%s",
		p.MemorySize, p.Pace, p.Period, strings.Join(v, ","))
}

// Validate checks that the preference values are usable.
func (p *Preferences) Validate() error {
	if p.MemorySize < memory.MinimumCapacity {
		return curated.Errorf(InvalidPreference, fmt.Sprintf("memory size must be at least %d bytes", memory.MinimumCapacity))
	}
	if p.Pace < 0 {
		return curated.Errorf(InvalidPreference, "pace cannot be negative")
	}
	if p.Period <= 0 {
		return curated.Errorf(InvalidPreference, "interrupt period must be positive")
	}
	if len(p.Vectors) == 0 {
		return curated.Errorf(InvalidPreference, "at least one interrupt vector is required")
	}
	for _, v := range p.Vectors {
		if v > 7 {
			return curated.Errorf(InvalidPreference, fmt.Sprintf("interrupt vector %d is not in the range 0 to 7", v))
		}
	}
	return nil
}

// SetVectors parses a comma separated list of interrupt vectors.
func (p *Preferences) SetVectors(s string) error {
	var vectors []uint8
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseUint(f, 10, 8)
		if err != nil || v > 7 {
			return curated.Errorf(InvalidPreference, fmt.Sprintf("interrupt vector %q is not in the range 0 to 7", f))
		}
		vectors = append(vectors, uint8(v))
	}
	if len(vectors) == 0 {
		return curated.Errorf(InvalidPreference, "at least one interrupt vector is required")
	}
	p.Vectors = vectors
	return nil
}
