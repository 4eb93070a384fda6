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

package ports

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/logger"
)

// Tap implementations are told of every value written to a port.
type Tap interface {
	PortWrite(port uint8, data uint8)
}

// the ports that are expected to be read from
const (
	inputPort1 = 1
	inputPort2 = 2
)

// OutputPorts are the ports written to by the Space Invaders program. Shift
// amount, sound, shift data, sound and watchdog.
var OutputPorts = []uint8{2, 3, 4, 5, 6}

// Ports implements the cpu.Ports interface.
type Ports struct {
	tap Tap

	// last value written to each port
	written [256]uint8
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	return &Ports{}
}

// AttachTap adds an observer of OUT writes. A nil Tap removes any existing
// observer.
func (p *Ports) AttachTap(tap Tap) {
	p.tap = tap
}

// In implements the cpu.Ports interface. Always returns zero.
func (p *Ports) In(port uint8) uint8 {
	switch port {
	case inputPort1, inputPort2:
	default:
		logger.Logf(logger.Allow, "ports", "read from unmodelled port %d", port)
	}
	return 0
}

// Out implements the cpu.Ports interface.
func (p *Ports) Out(port uint8, data uint8) {
	p.written[port] = data
	if p.tap != nil {
		p.tap.PortWrite(port, data)
	}
}

// LastWrite returns the most recent value written to the port.
func (p *Ports) LastWrite(port uint8) uint8 {
	return p.written[port]
}

// Summary returns the most recent value written to each of the OutputPorts.
// For example:
//
//	out: 02=00 03=10 04=00 05=00 06=00
func (p *Ports) Summary() string {
	s := strings.Builder{}
	s.WriteString("out:")
	for _, port := range OutputPorts {
		s.WriteString(fmt.Sprintf(" %02x=%02x", port, p.LastWrite(port)))
	}
	return s.String()
}
