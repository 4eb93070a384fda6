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

package interrupt_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/interrupt"
	"github.com/jetsetilly/gopher8080/test"
)

type target struct {
	enabled bool
	vectors []uint8
	err     error
}

func (t *target) InterruptEnabled() bool {
	return t.enabled
}

func (t *target) Interrupt(vector uint8) error {
	if t.err != nil {
		return t.err
	}
	t.vectors = append(t.vectors, vector)
	t.enabled = false
	return nil
}

func TestDefaultPeriod(t *testing.T) {
	ctrl := interrupt.NewController(0)
	test.ExpectEquality(t, ctrl.Period(), interrupt.DefaultPeriod)
}

func TestGating(t *testing.T) {
	ctrl := interrupt.NewController(interrupt.DefaultPeriod)
	tgt := &target{}
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	// interrupts disabled. the first check starts the period
	fired, err := ctrl.MaybeInterrupt(tgt, 1, now)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, fired)
	test.ExpectEquality(t, ctrl.LastFire(), now)

	// interrupts enabled but the first period has not elapsed
	tgt.enabled = true
	fired, err = ctrl.MaybeInterrupt(tgt, 1, now)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, fired)

	later := now.Add(interrupt.DefaultPeriod - time.Millisecond)
	fired, err = ctrl.MaybeInterrupt(tgt, 1, later)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, fired)
	test.ExpectEquality(t, ctrl.LastFire(), now)

	// first period has elapsed
	later = now.Add(interrupt.DefaultPeriod)
	fired, err = ctrl.MaybeInterrupt(tgt, 1, later)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fired)
	test.ExpectEquality(t, ctrl.LastFire(), later)
	test.ExpectFailure(t, tgt.enabled)

	// period measured from the last fire
	tgt.enabled = true
	fired, err = ctrl.MaybeInterrupt(tgt, 2, later.Add(interrupt.DefaultPeriod-time.Millisecond))
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, fired)

	last := later.Add(interrupt.DefaultPeriod)
	fired, err = ctrl.MaybeInterrupt(tgt, 2, last)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fired)
	test.ExpectEquality(t, ctrl.LastFire(), last)

	test.DemandEquality(t, len(tgt.vectors), 2)
	test.ExpectEquality(t, tgt.vectors[0], uint8(1))
	test.ExpectEquality(t, tgt.vectors[1], uint8(2))

	// period elapsed but interrupts disabled
	fired, err = ctrl.MaybeInterrupt(tgt, 1, last.Add(time.Second))
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, fired)
	test.ExpectEquality(t, ctrl.LastFire(), last)
}

func TestReset(t *testing.T) {
	ctrl := interrupt.NewController(interrupt.DefaultPeriod)
	tgt := &target{enabled: true}
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	// the period starts from the reset and not from the first check
	ctrl.Reset(now)
	fired, err := ctrl.MaybeInterrupt(tgt, 1, now.Add(interrupt.DefaultPeriod/2))
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, fired)

	fired, err = ctrl.MaybeInterrupt(tgt, 1, now.Add(interrupt.DefaultPeriod))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, fired)
}

func TestTargetFault(t *testing.T) {
	ctrl := interrupt.NewController(interrupt.DefaultPeriod)
	tgt := &target{enabled: true, err: curated.Errorf("cpu: stack fault")}
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	ctrl.Reset(now)
	fired, err := ctrl.MaybeInterrupt(tgt, 1, now.Add(interrupt.DefaultPeriod))
	test.ExpectFailure(t, fired)
	test.ExpectSuccess(t, curated.Has(err, "cpu: stack fault"))
	test.ExpectEquality(t, ctrl.LastFire(), now)
}
