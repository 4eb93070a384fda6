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

// Package logger is the central log for the emulator. Log entries are
// tagged with the name of the package or subsystem making the entry.
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count.
//
// There is only one log for the entire application so there is no need to
// pass a logger around. Entries are made with Log() and Logf(). Both require a
// Permission implementation, which gives the environment making the entry a
// chance to veto it. The Allow value can be used when an entry should always
// be made.
//
// The log can be echoed as entries are made with SetEcho(). Useful for
// running in a plain terminal.
package logger
