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

package test_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/test"
)

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, tw.Compare(""))

	tw.Write([]byte("hello "))
	tw.Write([]byte("world"))
	test.ExpectSuccess(t, tw.Compare("hello world"))

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(5)
	test.DemandSuccess(t, err)

	r.Write([]byte("abc"))
	test.ExpectEquality(t, r.String(), "abc")

	r.Write([]byte("de"))
	test.ExpectEquality(t, r.String(), "abcde")

	r.Write([]byte("fg"))
	test.ExpectEquality(t, r.String(), "cdefg")

	r.Write([]byte("0123456789"))
	test.ExpectEquality(t, r.String(), "56789")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
	test.ExpectFailure(t, false)
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectInequality(t, 11, 5+5)
}
