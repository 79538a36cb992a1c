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

import "github.com/RustLoverTheCoder/gbemulator/hardware/cpu"

// register index order used throughout the two opcode tables. index 6 is the
// memory operand (HL); the extra cycle cost of its bus access is accounted
// for in the definitions, not here.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func get8(mc *cpu.CPU, idx int) uint8 {
	switch idx {
	case 0:
		return mc.B
	case 1:
		return mc.C
	case 2:
		return mc.D
	case 3:
		return mc.E
	case 4:
		return mc.H
	case 5:
		return mc.L
	case 6:
		return mc.Mem.Read(mc.HL())
	case 7:
		return mc.A
	}
	panic("instructions: register index out of range")
}

func set8(mc *cpu.CPU, idx int, v uint8) {
	switch idx {
	case 0:
		mc.B = v
	case 1:
		mc.C = v
	case 2:
		mc.D = v
	case 3:
		mc.E = v
	case 4:
		mc.H = v
	case 5:
		mc.L = v
	case 6:
		mc.Mem.Write(mc.HL(), v)
	case 7:
		mc.A = v
	default:
		panic("instructions: register index out of range")
	}
}

// condition index order used by the conditional jump, call and return
// families.
var condNames = [4]string{"NZ", "Z", "NC", "C"}

func condition(mc *cpu.CPU, idx int) bool {
	switch idx {
	case 0:
		return !mc.F.Zero
	case 1:
		return mc.F.Zero
	case 2:
		return !mc.F.Carry
	case 3:
		return mc.F.Carry
	}
	panic("instructions: condition index out of range")
}

// 8 bit arithmetic. each helper leaves its result in the accumulator (or
// returns it, for the inc/dec pair which operate on any register) and sets
// all four flags.

func add(mc *cpu.CPU, v uint8, carry bool) {
	c := uint16(0)
	if carry && mc.F.Carry {
		c = 1
	}
	r := uint16(mc.A) + uint16(v) + c
	mc.F.Zero = r&0xff == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = (mc.A&0x0f)+(v&0x0f)+uint8(c) > 0x0f
	mc.F.Carry = r > 0xff
	mc.A = uint8(r)
}

func sub(mc *cpu.CPU, v uint8, carry bool) {
	c := uint16(0)
	if carry && mc.F.Carry {
		c = 1
	}
	r := uint16(mc.A) - uint16(v) - c
	mc.F.Zero = r&0xff == 0
	mc.F.Subtract = true
	mc.F.HalfCarry = uint16(mc.A&0x0f) < uint16(v&0x0f)+c
	mc.F.Carry = r > 0xff
	mc.A = uint8(r)
}

func and(mc *cpu.CPU, v uint8) {
	mc.A &= v
	mc.F.Zero = mc.A == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = true
	mc.F.Carry = false
}

func xor(mc *cpu.CPU, v uint8) {
	mc.A ^= v
	mc.F.Zero = mc.A == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = false
}

func or(mc *cpu.CPU, v uint8) {
	mc.A |= v
	mc.F.Zero = mc.A == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = false
}

// compare is a subtraction that discards the result.
func compare(mc *cpu.CPU, v uint8) {
	a := mc.A
	sub(mc, v, false)
	mc.A = a
}

// inc8 and dec8 do not touch the carry flag.

func inc8(mc *cpu.CPU, v uint8) uint8 {
	r := v + 1
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = v&0x0f == 0x0f
	return r
}

func dec8(mc *cpu.CPU, v uint8) uint8 {
	r := v - 1
	mc.F.Zero = r == 0
	mc.F.Subtract = true
	mc.F.HalfCarry = v&0x0f == 0x00
	return r
}

// addHL adds a 16 bit value to the HL pair. the zero flag is unaffected.
func addHL(mc *cpu.CPU, v uint16) {
	hl := mc.HL()
	r := uint32(hl) + uint32(v)
	mc.F.Subtract = false
	mc.F.HalfCarry = (hl&0x0fff)+(v&0x0fff) > 0x0fff
	mc.F.Carry = r > 0xffff
	mc.SetHL(uint16(r))
}

// addSPr8 adds a signed 8 bit immediate to the stack pointer and returns the
// result. flags are set from the unsigned low-byte addition, which is how
// the silicon does it. used by both ADD SP,r8 and LD HL,SP+r8.
func addSPr8(mc *cpu.CPU, v uint8) uint16 {
	sp := mc.SP.Address()
	r := sp + uint16(int8(v))
	mc.F.Zero = false
	mc.F.Subtract = false
	mc.F.HalfCarry = (sp&0x0f)+(uint16(v)&0x0f) > 0x0f
	mc.F.Carry = (sp&0xff)+(uint16(v)&0xff) > 0xff
	return r
}

// daa adjusts the accumulator after a BCD addition or subtraction.
func daa(mc *cpu.CPU) {
	a := mc.A
	if mc.F.Subtract {
		if mc.F.HalfCarry {
			a -= 0x06
		}
		if mc.F.Carry {
			a -= 0x60
		}
	} else {
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
		if mc.F.Carry || a > 0x99 {
			a += 0x60
			mc.F.Carry = true
		}
	}
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
	mc.A = a
}

// rotates and shifts. these are the workhorses of the extended opcode table
// and, with the zero flag forced clear, of the four plain accumulator
// rotates.

func rlc(mc *cpu.CPU, v uint8) uint8 {
	r := v<<1 | v>>7
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x80 != 0
	return r
}

func rrc(mc *cpu.CPU, v uint8) uint8 {
	r := v>>1 | v<<7
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x01 != 0
	return r
}

func rl(mc *cpu.CPU, v uint8) uint8 {
	r := v << 1
	if mc.F.Carry {
		r |= 0x01
	}
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x80 != 0
	return r
}

func rr(mc *cpu.CPU, v uint8) uint8 {
	r := v >> 1
	if mc.F.Carry {
		r |= 0x80
	}
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x01 != 0
	return r
}

func sla(mc *cpu.CPU, v uint8) uint8 {
	r := v << 1
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x80 != 0
	return r
}

// sra preserves the sign bit.
func sra(mc *cpu.CPU, v uint8) uint8 {
	r := v>>1 | v&0x80
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x01 != 0
	return r
}

func swap(mc *cpu.CPU, v uint8) uint8 {
	r := v<<4 | v>>4
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = false
	return r
}

func srl(mc *cpu.CPU, v uint8) uint8 {
	r := v >> 1
	mc.F.Zero = r == 0
	mc.F.Subtract = false
	mc.F.HalfCarry = false
	mc.F.Carry = v&0x01 != 0
	return r
}
