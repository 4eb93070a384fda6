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

import "github.com/jetsetilly/gopher8080/hardware/cpu/registers"

// handler executes the instruction staged in the execution. handlers do not
// advance the program counter unless the instruction is a taken control
// transfer.
type handler func(ex *execution) error

// handlers is indexed by opcode. a nil entry is an unimplemented opcode.
var handlers [256]handler

func init() {
	handlers[0x00] = func(_ *execution) error { return nil }

	for p := uint8(0); p < 4; p++ {
		p := p
		handlers[0x01|p<<4] = func(ex *execution) error {
			v, err := ex.operand16()
			if err != nil {
				return err
			}
			ex.setPair(p, v)
			return nil
		}
		handlers[0x03|p<<4] = func(ex *execution) error {
			ex.setPair(p, ex.pair(p)+1)
			return nil
		}
		handlers[0x0b|p<<4] = func(ex *execution) error {
			ex.setPair(p, ex.pair(p)-1)
			return nil
		}
		handlers[0x09|p<<4] = func(ex *execution) error {
			r := uint32(ex.reg.HL()) + uint32(ex.pair(p))
			ex.reg.SetHL(uint16(r))
			ex.reg.Flags.Carry = r > 0xffff
			return nil
		}

		// PUSH and POP. pair 3 is PSW
		if p == 3 {
			handlers[0xc5|p<<4] = func(ex *execution) error {
				return ex.push(uint16(ex.reg.A)<<8 | uint16(ex.reg.Flags.Pack()))
			}
			handlers[0xc1|p<<4] = func(ex *execution) error {
				v, err := ex.pop()
				if err != nil {
					return err
				}
				ex.reg.Flags.Unpack(uint8(v))
				ex.reg.A = uint8(v >> 8)
				return nil
			}
		} else {
			handlers[0xc5|p<<4] = func(ex *execution) error {
				return ex.push(ex.pair(p))
			}
			handlers[0xc1|p<<4] = func(ex *execution) error {
				v, err := ex.pop()
				if err != nil {
					return err
				}
				ex.setPair(p, v)
				return nil
			}
		}
	}

	// STAX and LDAX. only pairs B and D are valid
	for p := uint8(0); p < 2; p++ {
		p := p
		handlers[0x02|p<<4] = func(ex *execution) error {
			return ex.write(uint32(ex.pair(p)), ex.reg.A)
		}
		handlers[0x0a|p<<4] = func(ex *execution) error {
			v, err := ex.read(uint32(ex.pair(p)))
			if err != nil {
				return err
			}
			ex.reg.A = v
			return nil
		}
	}

	handlers[0x22] = shld
	handlers[0x2a] = lhld
	handlers[0x32] = sta
	handlers[0x3a] = lda

	for r := uint8(0); r < 8; r++ {
		r := r

		// INR and DCR. carry is not affected
		handlers[0x04|r<<3] = func(ex *execution) error {
			v, err := ex.register(r)
			if err != nil {
				return err
			}
			v++
			ex.reg.Flags.SetZSP(v)
			return ex.setRegister(r, v)
		}
		handlers[0x05|r<<3] = func(ex *execution) error {
			v, err := ex.register(r)
			if err != nil {
				return err
			}
			v--
			ex.reg.Flags.SetZSP(v)
			return ex.setRegister(r, v)
		}

		// MVI
		handlers[0x06|r<<3] = func(ex *execution) error {
			v, err := ex.operand8()
			if err != nil {
				return err
			}
			return ex.setRegister(r, v)
		}

		// MOV. MOV M,M is HLT and is not defined here
		for s := uint8(0); s < 8; s++ {
			if r == 6 && s == 6 {
				continue
			}
			s := s
			handlers[0x40|r<<3|s] = func(ex *execution) error {
				v, err := ex.register(s)
				if err != nil {
					return err
				}
				return ex.setRegister(r, v)
			}
		}

		// register arithmetic and logic. r is the operation and s the source
		for s := uint8(0); s < 8; s++ {
			s := s
			handlers[0x80|r<<3|s] = func(ex *execution) error {
				v, err := ex.register(s)
				if err != nil {
					return err
				}
				accumulate(&ex.reg, r, v)
				return nil
			}
		}

		// immediate arithmetic and logic
		handlers[0xc6|r<<3] = func(ex *execution) error {
			v, err := ex.operand8()
			if err != nil {
				return err
			}
			accumulate(&ex.reg, r, v)
			return nil
		}

		// RST
		handlers[0xc7|r<<3] = func(ex *execution) error {
			err := ex.push(ex.reg.PC + 1)
			if err != nil {
				return err
			}
			ex.jump(uint16(r) * 8)
			return nil
		}

		// conditional returns, jumps and calls. the condition is taken from
		// the instruction definition
		handlers[0xc0|r<<3] = ret
		handlers[0xc2|r<<3] = jmp
		handlers[0xc4|r<<3] = call
	}

	handlers[0x07] = func(ex *execution) error {
		cy := ex.reg.A >> 7
		ex.reg.A = ex.reg.A<<1 | cy
		ex.reg.Flags.Carry = cy == 1
		return nil
	}
	handlers[0x0f] = func(ex *execution) error {
		cy := ex.reg.A & 0x01
		ex.reg.A = ex.reg.A>>1 | cy<<7
		ex.reg.Flags.Carry = cy == 1
		return nil
	}
	handlers[0x17] = func(ex *execution) error {
		cy := ex.reg.A >> 7
		ex.reg.A = ex.reg.A<<1 | carryBit(ex.reg.Flags)
		ex.reg.Flags.Carry = cy == 1
		return nil
	}
	handlers[0x1f] = func(ex *execution) error {
		cy := ex.reg.A & 0x01
		ex.reg.A = ex.reg.A>>1 | carryBit(ex.reg.Flags)<<7
		ex.reg.Flags.Carry = cy == 1
		return nil
	}

	// CMA, STC and CMC
	handlers[0x2f] = func(ex *execution) error {
		ex.reg.A = ^ex.reg.A
		return nil
	}
	handlers[0x37] = func(ex *execution) error {
		ex.reg.Flags.Carry = true
		return nil
	}
	handlers[0x3f] = func(ex *execution) error {
		ex.reg.Flags.Carry = !ex.reg.Flags.Carry
		return nil
	}

	// unconditional flow. the definition condition is Always
	handlers[0xc3] = jmp
	handlers[0xc9] = ret
	handlers[0xcd] = call

	handlers[0xe9] = func(ex *execution) error {
		ex.jump(ex.reg.HL())
		return nil
	}
	handlers[0xf9] = func(ex *execution) error {
		ex.reg.SP = ex.reg.HL()
		return nil
	}
	handlers[0xeb] = func(ex *execution) error {
		de := ex.reg.DE()
		ex.reg.SetDE(ex.reg.HL())
		ex.reg.SetHL(de)
		return nil
	}
	handlers[0xe3] = xthl

	handlers[0xd3] = func(ex *execution) error {
		port, err := ex.operand8()
		if err != nil {
			return err
		}
		ex.out = &pendingOut{port: port, data: ex.reg.A}
		return nil
	}
	handlers[0xdb] = func(ex *execution) error {
		port, err := ex.operand8()
		if err != nil {
			return err
		}
		ex.reg.A = ex.mc.ports.In(port)
		return nil
	}

	handlers[0xf3] = func(ex *execution) error {
		ex.reg.InterruptEnable = false
		return nil
	}
	handlers[0xfb] = func(ex *execution) error {
		ex.reg.InterruptEnable = true
		return nil
	}
}

func carryBit(f registers.Flags) uint8 {
	if f.Carry {
		return 1
	}
	return 0
}

func jmp(ex *execution) error {
	address, err := ex.operand16()
	if err != nil {
		return err
	}
	if ex.condition(ex.defn.Condition) {
		ex.jump(address)
	}
	return nil
}

func call(ex *execution) error {
	address, err := ex.operand16()
	if err != nil {
		return err
	}
	if !ex.condition(ex.defn.Condition) {
		return nil
	}
	err = ex.push(ex.reg.PC + 3)
	if err != nil {
		return err
	}
	ex.jump(address)
	return nil
}

func ret(ex *execution) error {
	if !ex.condition(ex.defn.Condition) {
		return nil
	}
	address, err := ex.pop()
	if err != nil {
		return err
	}
	ex.jump(address)
	return nil
}

func sta(ex *execution) error {
	address, err := ex.operand16()
	if err != nil {
		return err
	}
	return ex.write(uint32(address), ex.reg.A)
}

func lda(ex *execution) error {
	address, err := ex.operand16()
	if err != nil {
		return err
	}
	v, err := ex.read(uint32(address))
	if err != nil {
		return err
	}
	ex.reg.A = v
	return nil
}

func shld(ex *execution) error {
	address, err := ex.operand16()
	if err != nil {
		return err
	}
	if err := ex.write(uint32(address), ex.reg.L); err != nil {
		return err
	}
	return ex.write(uint32(address)+1, ex.reg.H)
}

func lhld(ex *execution) error {
	address, err := ex.operand16()
	if err != nil {
		return err
	}
	v, err := ex.read16(uint32(address))
	if err != nil {
		return err
	}
	ex.reg.SetHL(v)
	return nil
}

// exchange L with the byte at SP and H with the byte at SP+1
func xthl(ex *execution) error {
	v, err := ex.read16(uint32(ex.reg.SP))
	if err != nil {
		return err
	}
	sp := uint32(ex.reg.SP)
	if err := ex.write(sp, ex.reg.L); err != nil {
		return err
	}
	if err := ex.write(sp+1, ex.reg.H); err != nil {
		return err
	}
	ex.reg.SetHL(v)
	return nil
}
