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

package cpu

import (
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
)

// UnimplementedOpcode is the error pattern returned when the opcode at the
// program counter has no handler. The values are the opcode and the address
// of the opcode.
const UnimplementedOpcode = "cpu: unimplemented opcode (0x%02x) at (0x%04x)"

// Ports defines the IN and OUT instructions' view of the outside world.
type Ports interface {
	In(port uint8) uint8
	Out(port uint8, data uint8)
}

// nullPorts is used when NewCPU() is called without a Ports implementation.
type nullPorts struct{}

func (nullPorts) In(_ uint8) uint8 {
	return 0
}

func (nullPorts) Out(_ uint8, _ uint8) {
}

// CPU implements the 8080. Register logic is implemented by the Registers type
// in the registers sub-package.
type CPU struct {
	registers.Registers

	mem          cpubus.Memory
	ports        Ports
	instructions []*instructions.Definition

	// LastResult is the result of the most recently executed instruction.
	// Final is false if no instruction has been executed since the last
	// Reset()
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// ports argument can be nil.
func NewCPU(mem cpubus.Memory, ports Ports) *CPU {
	if ports == nil {
		ports = nullPorts{}
	}
	return &CPU{
		mem:          mem,
		ports:        ports,
		instructions: instructions.GetDefinitions(),
	}
}

func (mc *CPU) String() string {
	return mc.Registers.Summary()
}

// Reset reinitialises all registers.
func (mc *CPU) Reset() {
	mc.Registers.Reset()
	mc.LastResult = Result{}
}

// Snapshot returns a copy of the register file.
func (mc *CPU) Snapshot() registers.Registers {
	return mc.Registers
}

// ExecuteInstruction executes the instruction at the program counter.
func (mc *CPU) ExecuteInstruction() error {
	opcode, err := mc.mem.Read(uint32(mc.PC))
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}

	defn := mc.instructions[opcode]
	handler := handlers[opcode]
	if defn == nil || handler == nil {
		return curated.Errorf(UnimplementedOpcode, opcode, mc.PC)
	}

	ex := newExecution(mc, defn)

	err = handler(ex)
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}

	// control transfers that were taken have set the program counter
	// explicitly. for everything else, including control transfers that were
	// not taken, the program counter moves past the instruction
	if !ex.jumped {
		ex.reg.PC += uint16(defn.Bytes)
	}

	err = ex.commit()
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}

	mc.LastResult = Result{
		Address:         ex.address,
		Defn:            defn,
		InstructionData: ex.data,
		Taken:           ex.jumped,
		Final:           true,
	}

	return nil
}

// InterruptEnabled returns the state of the interrupt enable flip-flop.
func (mc *CPU) InterruptEnabled() bool {
	return mc.InterruptEnable
}

// Interrupt pushes the program counter onto the stack and loads the program
// counter with the address of the interrupt vector. The vector number is
// multiplied by eight to get the address, the same as the RST instruction.
// Interrupts are disabled and must be re-enabled by the program.
//
// Interrupt() does not check whether interrupts are enabled. That is the
// responsibility of the caller.
func (mc *CPU) Interrupt(vector uint8) error {
	ex := newExecution(mc, nil)

	err := ex.push(ex.reg.PC)
	if err != nil {
		return curated.Errorf("cpu: interrupt: %v", err)
	}
	ex.jump(uint16(vector) * 8)
	ex.reg.InterruptEnable = false

	err = ex.commit()
	if err != nil {
		return curated.Errorf("cpu: interrupt: %v", err)
	}

	return nil
}
