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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes, where the first argument after the flags
// selects a mode of operation and each mode has its own set of flags.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments. If sub-modes have been added then Mode() reports the selected
// mode after parsing:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "disasm")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		pace := md.AddDuration("pace", 0, "delay after each instruction")
//		...
//	}
//
// The first sub-mode is the default mode. Sub-mode comparisons are case
// insensitive and modes are always reported in upper case.
package modalflag
