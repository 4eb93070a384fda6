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

// Package test bundles a handful of functions that remove common boilerplate
// from test files.
//
// The Expect*() functions report a failure with t.Errorf() and let the test
// continue. The Demand*() functions report with t.Fatalf() and are useful when
// the values being tested are needed by later parts of the test. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
//
// It is worth describing how ExpectSuccess() and ExpectFailure() handle the
// nil type because it is not obvious. The nil type is considered a success.
// Because of how errors usually work (nil to indicate no error) we need to
// interpret nil in this way.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The Compare() function can then be used to test for
// equality. The RingWriter is similar but only keeps the most recent output.
package test
