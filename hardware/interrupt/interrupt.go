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

// Package interrupt implements the timer that raises interrupts on the CPU.
// The Space Invaders hardware raises an interrupt twice per video frame. The
// controller is polled between instructions and fires when interrupts are
// enabled and the period has elapsed since it last fired.
package interrupt

import (
	"time"

	"github.com/jetsetilly/gopher8080/curated"
)

// DefaultPeriod is the minimum time between interrupts.
const DefaultPeriod = time.Second / 60

// Target is the device that receives interrupts. The cpu.CPU type satisfies
// this interface.
type Target interface {
	InterruptEnabled() bool
	Interrupt(vector uint8) error
}

// Controller decides when an interrupt should fire.
type Controller struct {
	period   time.Duration
	lastFire time.Time
}

// NewController is the preferred method of initialisation for the Controller
// type. A period of zero or less is replaced with DefaultPeriod.
func NewController(period time.Duration) *Controller {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Controller{period: period}
}

// Period returns the minimum time between interrupts.
func (ctrl *Controller) Period() time.Duration {
	return ctrl.period
}

// LastFire returns the time the controller last fired, or the time the
// current period started if it has not fired since being reset.
func (ctrl *Controller) LastFire() time.Time {
	return ctrl.lastFire
}

// Reset starts a new period at the time given. The next interrupt cannot fire
// until a full period after this time.
func (ctrl *Controller) Reset(now time.Time) {
	ctrl.lastFire = now
}

// MaybeInterrupt raises the interrupt on the target if interrupts are enabled
// and at least one period has passed since the last interrupt. If the
// controller has never been reset or fired then the first check starts the
// period, so the first interrupt also waits a full period.
//
// Returns true if the interrupt fired. The time of the last interrupt is only
// updated if the interrupt fired.
func (ctrl *Controller) MaybeInterrupt(target Target, vector uint8, now time.Time) (bool, error) {
	if ctrl.lastFire.IsZero() {
		ctrl.lastFire = now
	}

	if !target.InterruptEnabled() {
		return false, nil
	}

	if now.Sub(ctrl.lastFire) < ctrl.period {
		return false, nil
	}

	err := target.Interrupt(vector)
	if err != nil {
		return false, curated.Errorf("interrupt: %v", err)
	}
	ctrl.lastFire = now

	return true, nil
}
