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

package monitor

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher8080/debugger/easyterm"
	"github.com/jetsetilly/gopher8080/debugger/govern"
	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/logger"
	"golang.org/x/term"
)

// number of log entries shown at the foot of the painted snapshot when the
// size of the terminal is not known
const logTail = 5

// number of bytes of the stack shown when a machine is attached
const stackBytes = 16

// Monitor paints snapshots of the machine.
type Monitor struct {
	output io.Writer

	// output is a real terminal and ANSI sequences can be used
	ansi bool

	// only used if the monitor is interactive
	term *easyterm.Terminal
	keys chan byte

	// paint after this many continue checks
	Every int
	filter int

	paused   bool
	stepOnce bool
	quit     bool

	// instruction count of the most recently painted snapshot
	painted uint64

	// optional source of the port and stack information
	machine *hardware.Machine
}

// NewMonitor creates a monitor that paints to the output file. If the output
// and input files are both real terminals the monitor is interactive, unless
// plain is true.
func NewMonitor(input *os.File, output *os.File, plain bool) (*Monitor, error) {
	mon := &Monitor{
		output: output,
		Every:  hardware.PerformanceBrake,
	}

	if plain || input == nil {
		return mon, nil
	}

	if !term.IsTerminal(int(output.Fd())) || !term.IsTerminal(int(input.Fd())) {
		logger.Log(logger.Allow, "monitor", "not a terminal. using plain output")
		return mon, nil
	}

	mon.term = &easyterm.Terminal{}
	err := mon.term.Initialise(input, output)
	if err != nil {
		logger.Logf(logger.Allow, "monitor", "%v. using plain output", err)
		mon.term = nil
		return mon, nil
	}

	mon.ansi = true
	mon.term.CBreakMode()
	mon.term.Print(easyterm.HideCursor)

	// keys are read in their own goroutine and drained by Check()
	mon.keys = make(chan byte, 16)
	go func() {
		for {
			k, err := mon.term.ReadKey()
			if err != nil {
				return
			}
			mon.keys <- k
		}
	}()

	return mon, nil
}

// NewPlainMonitor creates a non-interactive monitor that paints to the
// io.Writer.
func NewPlainMonitor(output io.Writer) *Monitor {
	return &Monitor{
		output: output,
		Every:  hardware.PerformanceBrake,
	}
}

// AttachMachine adds the most recent output port values and the top of the
// stack to the painted snapshot. The machine must only be changed by the
// goroutine that calls Check() and Paint().
func (mon *Monitor) AttachMachine(m *hardware.Machine) {
	mon.machine = m
}

// CleanUp restores the terminal if the monitor is interactive.
func (mon *Monitor) CleanUp() {
	if mon.term != nil {
		mon.term.Print(easyterm.ShowCursor)

		// key presses that were never read are not passed on to the shell
		_ = mon.term.Flush()

		mon.term.CleanUp()
	}
}

// Key handles a single key press.
func (mon *Monitor) Key(k byte) {
	switch k {
	case 'q', 'Q', easyterm.KeyInterrupt:
		mon.quit = true
	case 'p', 'P', ' ':
		mon.paused = !mon.paused
	case 's', 'S':
		if mon.paused {
			mon.stepOnce = true
		}
	}
}

func (mon *Monitor) drain() {
	if mon.keys == nil {
		return
	}
	for {
		select {
		case k := <-mon.keys:
			mon.Key(k)
		default:
			return
		}
	}
}

// Check implements the continue check function required by
// hardware.Machine.Run().
func (mon *Monitor) Check(s hardware.Snapshot) (govern.State, error) {
	mon.drain()

	if mon.quit {
		mon.Paint(s)
		return govern.Ending, nil
	}

	if mon.paused {
		if s.Instructions != mon.painted {
			mon.Paint(s)
		}
		if mon.stepOnce {
			mon.stepOnce = false
			return govern.Running, nil
		}
		return govern.Paused, nil
	}

	mon.filter++
	if mon.filter >= mon.Every {
		mon.filter = 0
		mon.Paint(s)
	}

	return govern.Running, nil
}

// Paint the snapshot to the output.
func (mon *Monitor) Paint(s hardware.Snapshot) {
	b := strings.Builder{}

	if mon.ansi {
		b.WriteString(easyterm.ClearScreen)
		b.WriteString(easyterm.CursorHome)
		b.WriteString(easyterm.PenBold)
	} else if mon.painted > 0 {
		b.WriteString("----\n")
	}

	b.WriteString(fmt.Sprintf("instructions: %d", s.Instructions))
	if mon.paused {
		b.WriteString(" (paused)")
	}
	b.WriteString("\n")

	if mon.ansi {
		b.WriteString(easyterm.PenNormal)
	}

	b.WriteString(s.Registers.String())

	if s.LastResult.Final {
		e := disassembly.FormatResult(s.LastResult)
		b.WriteString(fmt.Sprintf("last: %04x  %s", e.Address, e.String()))
		if d := s.LastResult.Defn; d.IsFlow() && d.IsConditional() {
			if s.LastResult.Taken {
				b.WriteString(" (taken)")
			} else {
				b.WriteString(" (not taken)")
			}
		}
		b.WriteString("\n")
	}

	if mon.machine != nil {
		b.WriteString(mon.machine.Ports.Summary())
		b.WriteString("\n")
		if stack, err := mon.machine.DumpStack(stackBytes); err == nil {
			b.WriteString(fmt.Sprintf("stack: %s\n", stack))
		}
	}

	if mon.ansi {
		rows := 0
		if mon.term != nil {
			rows = mon.term.Geometry().Rows
		}
		b.WriteString(easyterm.PenDim)
		logger.Tail(&b, tailLength(rows, strings.Count(b.String(), "\n")))
		b.WriteString(easyterm.PenNormal)
	}

	_, _ = io.WriteString(mon.output, b.String())
	mon.painted = s.Instructions
}

// tailLength returns the number of log entries that fit in a terminal of the
// given number of rows when the number of lines have already been used. A
// rows value of zero or less means the size of the terminal is unknown.
func tailLength(rows int, used int) int {
	if rows <= 0 {
		return logTail
	}
	n := rows - used - 1
	if n < 0 {
		return 0
	}
	return n
}
