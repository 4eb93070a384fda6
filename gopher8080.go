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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/debugger/monitor"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/preferences"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/performance"
	"github.com/jetsetilly/gopher8080/romloader"
	"github.com/jetsetilly/gopher8080/statsview"
	"github.com/jetsetilly/gopher8080/version"
	"github.com/jetsetilly/gopher8080/wavwriter"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit()
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

func run(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	echo := md.AddBool("echo", false, "echo log to stderr")
	plain := md.AddBool("plain", false, "plain monitor output")
	hash := md.AddString("hash", "", "expected sha1 hash of the ROM")
	wav := md.AddString("wav", "", "record sound port writes to wav file")
	framebuffer := md.AddString("framebuffer", "", "write video RAM to file on exit")
	memviz := md.AddString("memviz", "", "write graphviz rendering of the machine state to file on exit")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available=%v)", statsview.Available()))
	limit := md.AddUint64("instructions", 0, "stop after number of instructions (0 for no limit)")

	prefs := preferences.NewPreferences()
	memsize := md.AddInt("memsize", prefs.MemorySize, "memory size in bytes")
	pace := md.AddDuration("pace", prefs.Pace, "delay after every instruction")
	period := md.AddDuration("period", prefs.Period, "minimum time between interrupts")
	vectors := md.AddString("vectors", "1,2", "interrupt vectors used in turn")

	md.AdditionalHelp("keys when running in a terminal: q quit, p pause, s step (when paused)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *echo {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	rl := romloader.NewLoader(md.GetArg(0))
	rl.Hash = *hash
	err = rl.Load()
	if err != nil {
		return err
	}

	prefs.MemorySize = *memsize
	prefs.Pace = *pace
	prefs.Period = *period
	err = prefs.SetVectors(*vectors)
	if err != nil {
		return err
	}

	m, err := hardware.NewMachine(rl.Data, prefs)
	if err != nil {
		return err
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		m.AttachTap(aw)
		defer func() {
			err := aw.Close()
			if err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	var mon *monitor.Monitor
	if f, ok := md.Output.(*os.File); ok {
		mon, err = monitor.NewMonitor(os.Stdin, f, *plain)
		if err != nil {
			return err
		}
	} else {
		mon = monitor.NewPlainMonitor(md.Output)
	}
	mon.AttachMachine(m)

	runErr := m.Run(func(s hardware.Snapshot) (govern.State, error) {
		if *limit > 0 && s.Instructions >= *limit {
			mon.Paint(s)
			return govern.Ending, nil
		}
		return mon.Check(s)
	})

	mon.CleanUp()

	// exports are written even if the emulation ended with an error
	if *framebuffer != "" {
		err = writeFile(*framebuffer, m.ExportVideoRAM)
		if err != nil {
			return err
		}
	}

	if *memviz != "" {
		err = writeFile(*memviz, func(w io.Writer) error {
			m.Visualise(w)
			return nil
		})
		if err != nil {
			return err
		}
	}

	return runErr
}

func writeFile(filename string, fn func(io.Writer) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = fn(f)
	if err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddInt("origin", 0, "address of the first byte of the ROM")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		rl := romloader.NewLoader(md.GetArg(0))
		err = rl.Load()
		if err != nil {
			return err
		}
		err = disassembly.Write(md.Output, rl.Data, uint32(*origin))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: NONE, CPU, MEM or ALL")

	prefs := preferences.NewPreferences()
	memsize := md.AddInt("memsize", prefs.MemorySize, "memory size in bytes")
	period := md.AddDuration("period", prefs.Period, "minimum time between interrupts")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	rl := romloader.NewLoader(md.GetArg(0))
	err = rl.Load()
	if err != nil {
		return err
	}

	prefs.MemorySize = *memsize
	prefs.Period = *period

	m, err := hardware.NewMachine(rl.Data, prefs)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, *duration)
}
