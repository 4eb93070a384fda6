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

package modalflag_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-plain", "-pace", "5ms", "invaders.rom", "extra"})
	plain := md.AddBool("plain", false, "plain output")
	pace := md.AddDuration("pace", 0, "pace")
	memsize := md.AddInt("memsize", 65536, "memory size")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *plain)
	test.ExpectEquality(t, *pace, 5*time.Millisecond)
	test.ExpectEquality(t, *memsize, 65536)
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "invaders.rom")
	test.ExpectEquality(t, md.GetArg(2), "")

	var set []string
	md.Visit(func(name string) { set = append(set, name) })
	test.ExpectEquality(t, len(set), 2)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-echo", "disasm", "-origin", "256", "invaders.rom"})
	echo := md.AddBool("echo", false, "echo log")
	md.AddSubModes("run", "disasm")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *echo)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	origin := md.AddInt("origin", 0, "origin")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *origin, 256)
	test.ExpectEquality(t, md.Path(), "DISASM")
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "invaders.rom")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"invaders.rom"})
	md.AddSubModes("run", "disasm")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "invaders.rom")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-bogus"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	w := &test.CompareWriter{}
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("No help available\n"))
}

func TestHelpFlagsAndModes(t *testing.T) {
	w := &test.CompareWriter{}
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddBool("plain", false, "plain output")
	md.AddSubModes("run", "disasm")
	md.AdditionalHelp("ROM files are raw binary images")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)

	expected := "Usage:\n" +
		"  -plain\n" +
		"    \tplain output\n" +
		"\n" +
		"  available sub-modes: RUN, DISASM\n" +
		"    default: RUN\n" +
		"\n" +
		"ROM files are raw binary images\n"
	test.ExpectEquality(t, w.String(), expected)
}
