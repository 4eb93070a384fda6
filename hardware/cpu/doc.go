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

// Package cpu emulates the Intel 8080 microprocessor. Like all 8-bit processors
// of the era, the 8080 executes instructions according to the single byte
// value read from the address pointed to by the program counter. This single
// byte is the opcode and is used to look up the handler for the instruction in
// a fixed table. The definition of the instruction, from the instructions
// package, gives the length of the instruction and the kind of operand that
// follows the opcode.
//
// The CPU type requires an implementation of the cpubus.Memory interface and
// an implementation of the Ports interface.
//
//	mc := cpu.NewCPU(mem, ports)
//
//	for {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//	}
//
// Not every opcode has a handler. Executing an opcode without a handler
// results in an UnimplementedOpcode error. The undocumented opcodes, HLT and
// DAA are not implemented. Auxiliary carry is never computed by any
// instruction.
//
// Instructions are applied atomically. The effect of an instruction is staged
// on a copy of the registers and memory writes are queued until the
// instruction has completed without error. An instruction that fails
// (because of a memory access outside of the range of memory, for example)
// leaves the CPU and memory in the state they were in before the instruction
// started.
//
// The LastResult field records information about the most recently executed
// instruction. Useful for debuggers and monitors.
package cpu
