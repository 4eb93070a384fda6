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

// the most memory writes any single instruction makes (PUSH, CALL, SHLD, XTHL)
const maxWrites = 2

type pendingWrite struct {
	address uint32
	data    uint8
}

type pendingOut struct {
	port uint8
	data uint8
}

// execution is the staging area for a single instruction. the register file
// is a copy of the CPU registers and memory writes are queued. nothing is
// visible outside of the execution until commit() is called.
type execution struct {
	mc   *CPU
	defn *instructions.Definition

	reg registers.Registers

	// address of the opcode
	address uint16

	// the assembled operand
	data uint16

	// whether the program counter has been set explicitly
	jumped bool

	writes    [maxWrites]pendingWrite
	numWrites int

	out *pendingOut
}

func newExecution(mc *CPU, defn *instructions.Definition) *execution {
	return &execution{
		mc:      mc,
		defn:    defn,
		reg:     mc.Registers,
		address: mc.PC,
	}
}

// addresses past the top of the address bus do not wrap and are not passed
// on to memory, however large the memory is
func addressable(address uint32) error {
	if address > cpubus.Memtop {
		return curated.Errorf(cpubus.OutOfRange, address)
	}
	return nil
}

// read the byte at the address, honouring any queued writes
func (ex *execution) read(address uint32) (uint8, error) {
	if err := addressable(address); err != nil {
		return 0, err
	}
	for i := ex.numWrites - 1; i >= 0; i-- {
		if ex.writes[i].address == address {
			return ex.writes[i].data, nil
		}
	}
	return ex.mc.mem.Read(address)
}

// write checks that the address is valid and queues the write
func (ex *execution) write(address uint32, data uint8) error {
	if err := addressable(address); err != nil {
		return err
	}
	if err := ex.mc.mem.Check(address); err != nil {
		return err
	}
	if ex.numWrites >= maxWrites {
		panic("cpu: too many memory writes for a single instruction")
	}
	ex.writes[ex.numWrites] = pendingWrite{address: address, data: data}
	ex.numWrites++
	return nil
}

// read16 reads a little-endian 16bit value from the address
func (ex *execution) read16(address uint32) (uint16, error) {
	lo, err := ex.read(address)
	if err != nil {
		return 0, err
	}
	hi, err := ex.read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// operand8 reads the byte following the opcode
func (ex *execution) operand8() (uint8, error) {
	v, err := ex.read(uint32(ex.address) + 1)
	if err != nil {
		return 0, err
	}
	ex.data = uint16(v)
	return v, nil
}

// operand16 reads the two bytes following the opcode. low byte first
func (ex *execution) operand16() (uint16, error) {
	v, err := ex.read16(uint32(ex.address) + 1)
	if err != nil {
		return 0, err
	}
	ex.data = v
	return v, nil
}

// push writes the high byte to SP-1 and the low byte to SP-2, then
// decrements SP by two
func (ex *execution) push(v uint16) error {
	sp := uint32(ex.reg.SP)
	if err := ex.write(sp-1, uint8(v>>8)); err != nil {
		return err
	}
	if err := ex.write(sp-2, uint8(v)); err != nil {
		return err
	}
	ex.reg.SP -= 2
	return nil
}

// pop reads the low byte from SP and the high byte from SP+1, then increments
// SP by two
func (ex *execution) pop() (uint16, error) {
	v, err := ex.read16(uint32(ex.reg.SP))
	if err != nil {
		return 0, err
	}
	ex.reg.SP += 2
	return v, nil
}

// jump sets the program counter explicitly
func (ex *execution) jump(address uint16) {
	ex.reg.PC = address
	ex.jumped = true
}

// hl returns the HL register pair as an address
func (ex *execution) hl() uint32 {
	return uint32(ex.reg.HL())
}

// register returns the value of the register encoded by the three bit value.
// register 6 is the memory location pointed to by HL
func (ex *execution) register(r uint8) (uint8, error) {
	switch r & 0x07 {
	case 0:
		return ex.reg.B, nil
	case 1:
		return ex.reg.C, nil
	case 2:
		return ex.reg.D, nil
	case 3:
		return ex.reg.E, nil
	case 4:
		return ex.reg.H, nil
	case 5:
		return ex.reg.L, nil
	case 6:
		return ex.read(ex.hl())
	}
	return ex.reg.A, nil
}

// setRegister loads the register encoded by the three bit value
func (ex *execution) setRegister(r uint8, v uint8) error {
	switch r & 0x07 {
	case 0:
		ex.reg.B = v
	case 1:
		ex.reg.C = v
	case 2:
		ex.reg.D = v
	case 3:
		ex.reg.E = v
	case 4:
		ex.reg.H = v
	case 5:
		ex.reg.L = v
	case 6:
		return ex.write(ex.hl(), v)
	case 7:
		ex.reg.A = v
	}
	return nil
}

// pair returns the value of the register pair encoded by the two bit value.
// pair 3 is SP
func (ex *execution) pair(p uint8) uint16 {
	switch p & 0x03 {
	case 0:
		return ex.reg.BC()
	case 1:
		return ex.reg.DE()
	case 2:
		return ex.reg.HL()
	}
	return ex.reg.SP
}

// setPair loads the register pair encoded by the two bit value
func (ex *execution) setPair(p uint8, v uint16) {
	switch p & 0x03 {
	case 0:
		ex.reg.SetBC(v)
	case 1:
		ex.reg.SetDE(v)
	case 2:
		ex.reg.SetHL(v)
	case 3:
		ex.reg.SP = v
	}
}

// condition tests the flags for the condition encoded in the instruction
func (ex *execution) condition(c instructions.Condition) bool {
	f := ex.reg.Flags
	switch c {
	case instructions.NotZero:
		return !f.Zero
	case instructions.Zero:
		return f.Zero
	case instructions.NoCarry:
		return !f.Carry
	case instructions.Carry:
		return f.Carry
	case instructions.ParityOdd:
		return !f.Parity
	case instructions.ParityEven:
		return f.Parity
	case instructions.Plus:
		return !f.Sign
	case instructions.Minus:
		return f.Sign
	}
	return true
}

// commit the staged instruction to the CPU and memory. all queued writes have
// already been checked so an error here is unexpected
func (ex *execution) commit() error {
	for i := 0; i < ex.numWrites; i++ {
		if err := ex.mc.mem.Write(ex.writes[i].address, ex.writes[i].data); err != nil {
			return err
		}
	}
	ex.mc.Registers = ex.reg
	if ex.out != nil {
		ex.mc.ports.Out(ex.out.port, ex.out.data)
	}
	return nil
}
