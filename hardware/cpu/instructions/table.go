// This file is part of Gbemulator.
//
// Gbemulator is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gbemulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gbemulator.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import (
	"fmt"

	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/bus"
)

// the eight ALU operations in encoding order. shared by the register block
// (0x80 to 0xbf) and the immediate operand column (0xc6 to 0xfe).
var aluNames = [8]string{"ADD A,%s", "ADC A,%s", "SUB %s", "SBC A,%s", "AND %s", "XOR %s", "OR %s", "CP %s"}

var aluOps = [8]func(mc *cpu.CPU, v uint8){
	func(mc *cpu.CPU, v uint8) { add(mc, v, false) },
	func(mc *cpu.CPU, v uint8) { add(mc, v, true) },
	func(mc *cpu.CPU, v uint8) { sub(mc, v, false) },
	func(mc *cpu.CPU, v uint8) { sub(mc, v, true) },
	and,
	xor,
	or,
	compare,
}

// relativeJump sets the PC to the target of a JR instruction: the address of
// the following instruction plus the signed operand.
func relativeJump(mc *cpu.CPU) {
	offset := int8(mc.Operand8())
	mc.PC.Load(mc.PC.Address() + 2 + uint16(offset))
}

// the regular encoding families of the plain opcode space. the 8 bit load
// block, the ALU block and the scattered-but-regular conditional and ALU
// immediate columns are all generated by loop.
func init() {
	// LD r,r' block. opcode 0x76 would be LD (HL),(HL) and is the HALT
	// instruction instead.
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			value := uint8(0x40 + dst*8 + src)
			if value == 0x76 {
				continue
			}

			cycles := 4
			if dst == 6 || src == 6 {
				cycles = 8
			}

			d := dst
			s := src
			define(value, fmt.Sprintf("LD %s,%s", regNames[dst], regNames[src]), 1, cycles, 0,
				func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
					set8(mc, d, get8(mc, s))
					return None
				})
		}
	}

	// ALU block, register operands
	for op := 0; op < 8; op++ {
		for src := 0; src < 8; src++ {
			cycles := 4
			if src == 6 {
				cycles = 8
			}

			o := op
			s := src
			define(uint8(0x80+op*8+src), fmt.Sprintf(aluNames[op], regNames[src]), 1, cycles, 0,
				func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
					aluOps[o](mc, get8(mc, s))
					return None
				})
		}
	}

	// ALU column, immediate operands
	for op := 0; op < 8; op++ {
		o := op
		define(uint8(0xc6+op*8), fmt.Sprintf(aluNames[op], "d8"), 2, 8, 0,
			func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
				aluOps[o](mc, mc.Operand8())
				return None
			})
	}

	// conditional relative jumps
	for c := 0; c < 4; c++ {
		cc := c
		define(uint8(0x20+c*8), fmt.Sprintf("JR %s,r8", condNames[c]), 2, 8, 4,
			func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
				if condition(mc, cc) {
					relativeJump(mc)
					return JumpedActionTaken
				}
				return None
			})
	}

	// conditional absolute jumps
	for c := 0; c < 4; c++ {
		cc := c
		define(uint8(0xc2+c*8), fmt.Sprintf("JP %s,a16", condNames[c]), 3, 12, 4,
			func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
				if condition(mc, cc) {
					mc.PC.Load(mc.Operand16())
					return JumpedActionTaken
				}
				return None
			})
	}

	// conditional calls
	for c := 0; c < 4; c++ {
		cc := c
		define(uint8(0xc4+c*8), fmt.Sprintf("CALL %s,a16", condNames[c]), 3, 12, 12,
			func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
				if condition(mc, cc) {
					mc.Push16(mc.PC.Address() + 3)
					mc.PC.Load(mc.Operand16())
					return JumpedActionTaken
				}
				return None
			})
	}

	// conditional returns
	for c := 0; c < 4; c++ {
		cc := c
		define(uint8(0xc0+c*8), fmt.Sprintf("RET %s", condNames[c]), 1, 8, 12,
			func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
				if condition(mc, cc) {
					mc.PC.Load(mc.Pop16())
					return JumpedActionTaken
				}
				return None
			})
	}

	// restarts
	for t := 0; t < 8; t++ {
		target := uint16(t * 8)
		define(uint8(0xc7+t*8), fmt.Sprintf("RST %02XH", target), 1, 16, 0,
			func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
				mc.Push16(mc.PC.Address() + 1)
				mc.PC.Load(target)
				return Jumped
			})
	}
}

// the irregular instructions of the plain opcode space, defined one by one.
// the eleven holes (0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4,
// 0xfc, 0xfd) have no definition on the SM83 and stay nil in the table.
func init() {
	define(0x00, "NOP", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		return None
	})

	define(0x01, "LD BC,d16", 3, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetBC(mc.Operand16())
		return None
	})

	define(0x02, "LD (BC),A", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(mc.BC(), mc.A)
		return None
	})

	define(0x03, "INC BC", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetBC(mc.BC() + 1)
		return None
	})

	define(0x04, "INC B", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.B = inc8(mc, mc.B)
		return None
	})

	define(0x05, "DEC B", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.B = dec8(mc, mc.B)
		return None
	})

	define(0x06, "LD B,d8", 2, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.B = mc.Operand8()
		return None
	})

	// the four plain accumulator rotates force the zero flag clear, unlike
	// their extended table counterparts
	define(0x07, "RLCA", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = rlc(mc, mc.A)
		mc.F.Zero = false
		return None
	})

	define(0x08, "LD (a16),SP", 3, 20, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.WriteWord(mc.Operand16(), mc.SP.Address())
		return None
	})

	define(0x09, "ADD HL,BC", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		addHL(mc, mc.BC())
		return None
	})

	define(0x0a, "LD A,(BC)", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = mc.Mem.Read(mc.BC())
		return None
	})

	define(0x0b, "DEC BC", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetBC(mc.BC() - 1)
		return None
	})

	define(0x0c, "INC C", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.C = inc8(mc, mc.C)
		return None
	})

	define(0x0d, "DEC C", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.C = dec8(mc, mc.C)
		return None
	})

	define(0x0e, "LD C,d8", 2, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.C = mc.Operand8()
		return None
	})

	define(0x0f, "RRCA", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = rrc(mc, mc.A)
		mc.F.Zero = false
		return None
	})

	// STOP is modelled the same way as HALT. low power mode is outside the
	// scope of this emulation.
	define(0x10, "STOP", 2, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Halted = true
		return None
	})

	define(0x11, "LD DE,d16", 3, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetDE(mc.Operand16())
		return None
	})

	define(0x12, "LD (DE),A", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(mc.DE(), mc.A)
		return None
	})

	define(0x13, "INC DE", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetDE(mc.DE() + 1)
		return None
	})

	define(0x14, "INC D", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.D = inc8(mc, mc.D)
		return None
	})

	define(0x15, "DEC D", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.D = dec8(mc, mc.D)
		return None
	})

	define(0x16, "LD D,d8", 2, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.D = mc.Operand8()
		return None
	})

	define(0x17, "RLA", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = rl(mc, mc.A)
		mc.F.Zero = false
		return None
	})

	define(0x18, "JR r8", 2, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		relativeJump(mc)
		return Jumped
	})

	define(0x19, "ADD HL,DE", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		addHL(mc, mc.DE())
		return None
	})

	define(0x1a, "LD A,(DE)", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = mc.Mem.Read(mc.DE())
		return None
	})

	define(0x1b, "DEC DE", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetDE(mc.DE() - 1)
		return None
	})

	define(0x1c, "INC E", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.E = inc8(mc, mc.E)
		return None
	})

	define(0x1d, "DEC E", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.E = dec8(mc, mc.E)
		return None
	})

	define(0x1e, "LD E,d8", 2, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.E = mc.Operand8()
		return None
	})

	define(0x1f, "RRA", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = rr(mc, mc.A)
		mc.F.Zero = false
		return None
	})

	define(0x21, "LD HL,d16", 3, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetHL(mc.Operand16())
		return None
	})

	define(0x22, "LD (HL+),A", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(mc.HL(), mc.A)
		mc.SetHL(mc.HL() + 1)
		return None
	})

	define(0x23, "INC HL", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetHL(mc.HL() + 1)
		return None
	})

	define(0x24, "INC H", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.H = inc8(mc, mc.H)
		return None
	})

	define(0x25, "DEC H", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.H = dec8(mc, mc.H)
		return None
	})

	define(0x26, "LD H,d8", 2, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.H = mc.Operand8()
		return None
	})

	define(0x27, "DAA", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		daa(mc)
		return None
	})

	define(0x29, "ADD HL,HL", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		addHL(mc, mc.HL())
		return None
	})

	define(0x2a, "LD A,(HL+)", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = mc.Mem.Read(mc.HL())
		mc.SetHL(mc.HL() + 1)
		return None
	})

	define(0x2b, "DEC HL", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetHL(mc.HL() - 1)
		return None
	})

	define(0x2c, "INC L", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.L = inc8(mc, mc.L)
		return None
	})

	define(0x2d, "DEC L", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.L = dec8(mc, mc.L)
		return None
	})

	define(0x2e, "LD L,d8", 2, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.L = mc.Operand8()
		return None
	})

	define(0x2f, "CPL", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = ^mc.A
		mc.F.Subtract = true
		mc.F.HalfCarry = true
		return None
	})

	define(0x31, "LD SP,d16", 3, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SP.Load(mc.Operand16())
		return None
	})

	define(0x32, "LD (HL-),A", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(mc.HL(), mc.A)
		mc.SetHL(mc.HL() - 1)
		return None
	})

	define(0x33, "INC SP", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SP.Increment()
		return None
	})

	define(0x34, "INC (HL)", 1, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(mc.HL(), inc8(mc, mc.Mem.Read(mc.HL())))
		return None
	})

	define(0x35, "DEC (HL)", 1, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(mc.HL(), dec8(mc, mc.Mem.Read(mc.HL())))
		return None
	})

	define(0x36, "LD (HL),d8", 2, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(mc.HL(), mc.Operand8())
		return None
	})

	define(0x37, "SCF", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = true
		return None
	})

	define(0x39, "ADD HL,SP", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		addHL(mc, mc.SP.Address())
		return None
	})

	define(0x3a, "LD A,(HL-)", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = mc.Mem.Read(mc.HL())
		mc.SetHL(mc.HL() - 1)
		return None
	})

	define(0x3b, "DEC SP", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SP.Decrement()
		return None
	})

	define(0x3c, "INC A", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = inc8(mc, mc.A)
		return None
	})

	define(0x3d, "DEC A", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = dec8(mc, mc.A)
		return None
	})

	define(0x3e, "LD A,d8", 2, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = mc.Operand8()
		return None
	})

	define(0x3f, "CCF", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.F.Subtract = false
		mc.F.HalfCarry = false
		mc.F.Carry = !mc.F.Carry
		return None
	})

	define(0x76, "HALT", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Halted = true
		return None
	})

	define(0xc1, "POP BC", 1, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetBC(mc.Pop16())
		return None
	})

	define(0xc3, "JP a16", 3, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.PC.Load(mc.Operand16())
		return Jumped
	})

	define(0xc5, "PUSH BC", 1, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Push16(mc.BC())
		return None
	})

	define(0xc9, "RET", 1, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.PC.Load(mc.Pop16())
		return Jumped
	})

	define(0xcd, "CALL a16", 3, 24, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Push16(mc.PC.Address() + 3)
		mc.PC.Load(mc.Operand16())
		return Jumped
	})

	define(0xd1, "POP DE", 1, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetDE(mc.Pop16())
		return None
	})

	define(0xd5, "PUSH DE", 1, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Push16(mc.DE())
		return None
	})

	define(0xd9, "RETI", 1, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.PC.Load(mc.Pop16())
		mc.IME = true
		return Jumped
	})

	define(0xe0, "LDH (a8),A", 2, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(0xff00+uint16(mc.Operand8()), mc.A)
		return None
	})

	define(0xe1, "POP HL", 1, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetHL(mc.Pop16())
		return None
	})

	define(0xe2, "LD (C),A", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(0xff00+uint16(mc.C), mc.A)
		return None
	})

	define(0xe5, "PUSH HL", 1, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Push16(mc.HL())
		return None
	})

	define(0xe8, "ADD SP,r8", 2, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SP.Load(addSPr8(mc, mc.Operand8()))
		return None
	})

	define(0xe9, "JP (HL)", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.PC.Load(mc.HL())
		return Jumped
	})

	define(0xea, "LD (a16),A", 3, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Mem.Write(mc.Operand16(), mc.A)
		return None
	})

	define(0xf0, "LDH A,(a8)", 2, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = mc.Mem.Read(0xff00 + uint16(mc.Operand8()))
		return None
	})

	define(0xf1, "POP AF", 1, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetAF(mc.Pop16())
		return None
	})

	define(0xf2, "LD A,(C)", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = mc.Mem.Read(0xff00 + uint16(mc.C))
		return None
	})

	define(0xf3, "DI", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.IME = false
		mc.EIPending = false
		return None
	})

	define(0xf5, "PUSH AF", 1, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.Push16(mc.AF())
		return None
	})

	define(0xf8, "LD HL,SP+r8", 2, 12, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SetHL(addSPr8(mc, mc.Operand8()))
		return None
	})

	define(0xf9, "LD SP,HL", 1, 8, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.SP.Load(mc.HL())
		return None
	})

	define(0xfa, "LD A,(a16)", 3, 16, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.A = mc.Mem.Read(mc.Operand16())
		return None
	})

	define(0xfb, "EI", 1, 4, 0, func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
		mc.EIPending = true
		return None
	})
}
