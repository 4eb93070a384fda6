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

// Package curated is a helper package for the error type. Errors created with
// curated.Errorf() keep hold of the pattern string and the values that were
// used to create them. This means that an error can be identified by its
// pattern rather than by the formatted message, which will usually contain
// information specific to the moment the error was created (an address or an
// opcode value, for example).
//
// For example, the memory package defines the OutOfRange pattern:
//
//	const OutOfRange = "memory: out of range access (0x%04x)"
//
// and code that receives an error from a memory access can test for it:
//
//	if curated.Is(err, memory.OutOfRange) {
//		...
//	}
//
// The Has() function is similar but will search the chain of wrapped errors
// for the pattern. Errors are wrapped simply by passing them as a value to
// Errorf():
//
//	return curated.Errorf("machine: %v", err)
//
// Adjacent duplicate parts of the message are removed when the message is
// formatted. So if err in the example above was itself prefixed with
// "machine: " then the prefix will only appear once.
//
// Curated errors also implement Unwrap() so the standard errors.Is() and
// errors.As() functions continue to work as expected.
package curated
