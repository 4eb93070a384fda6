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

// Package monitor paints snapshots of the emulated machine to an output. It is
// an implementation of the continue check function required by
// hardware.Machine.Run().
//
// When the output is a real terminal the screen is cleared before every paint
// and the keyboard can be used to control the emulation:
//
//	q      quit
//	p      pause/resume
//	space  pause/resume
//	s      step one instruction while paused
//
// When the output is not a terminal, or when plain output is requested, the
// snapshots are written one after the other and the keyboard is not read.
package monitor
