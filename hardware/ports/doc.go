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

// Package ports implements the input/output ports of the machine as seen by
// the IN and OUT instructions of the CPU.
//
// None of the peripherals are emulated. Every IN instruction reads zero. Ports
// 1 and 2 are the ports that a Space Invaders program expects to read the
// player controls from. Reads from any other port are logged.
//
// OUT instructions have no effect on the machine but can be observed by
// attaching a Tap. The wavwriter package is an example of a Tap.
package ports
