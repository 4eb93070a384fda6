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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/test"
)

const testPattern = "test: %v"
const testPatternB = "test b: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testPattern, e)
	test.ExpectEquality(t, f.Error(), "test: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.IsAny(e))

	f := curated.Errorf(testPatternB, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Is(f, testPatternB))

	// plain errors are not curated errors
	p := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.Has(e, testPattern))

	f := curated.Errorf(testPatternB, e)
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPatternB))
	test.ExpectFailure(t, curated.Has(e, testPatternB))
}

func TestValues(t *testing.T) {
	e := curated.Errorf("value: %d %d", 10, 20)
	f := curated.Errorf(testPattern, e)

	v, ok := curated.Values(f, "value: %d %d")
	test.DemandSuccess(t, ok)
	test.DemandEquality(t, len(v), 2)
	test.ExpectEquality(t, v[0].(int), 10)
	test.ExpectEquality(t, v[1].(int), 20)

	_, ok = curated.Values(f, testPatternB)
	test.ExpectFailure(t, ok)
}

func TestUnwrap(t *testing.T) {
	p := errors.New("plain error")
	e := curated.Errorf(testPattern, p)
	test.ExpectSuccess(t, errors.Is(e, p))
	test.ExpectEquality(t, e.Error(), "test: plain error")
}
