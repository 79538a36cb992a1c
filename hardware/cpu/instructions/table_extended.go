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

// the eight rotate/shift operations in encoding order. they fill the bottom
// quarter of the extended opcode space.
var rotNames = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

var rotOps = [8]func(mc *cpu.CPU, v uint8) uint8{rlc, rrc, rl, rr, sla, sra, swap, srl}

// the extended opcode space is perfectly regular: every one of the 256
// values is defined and the operand register is always encoded in the low
// three bits. the entire table is generated by loop.
func init() {
	// rotates and shifts
	for op := 0; op < 8; op++ {
		for reg := 0; reg < 8; reg++ {
			cycles := 8
			if reg == 6 {
				cycles = 16
			}

			o := op
			r := reg
			defineExtended(uint8(op*8+reg), fmt.Sprintf("%s %s", rotNames[op], regNames[reg]), cycles,
				func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
					set8(mc, r, rotOps[o](mc, get8(mc, r)))
					return None
				})
		}
	}

	// BIT does not write back, which makes the memory operand four cycles
	// cheaper than in the RES and SET blocks
	for bit := 0; bit < 8; bit++ {
		for reg := 0; reg < 8; reg++ {
			cycles := 8
			if reg == 6 {
				cycles = 12
			}

			mask := uint8(1) << bit
			r := reg
			defineExtended(uint8(0x40+bit*8+reg), fmt.Sprintf("BIT %d,%s", bit, regNames[reg]), cycles,
				func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
					mc.F.Zero = get8(mc, r)&mask == 0
					mc.F.Subtract = false
					mc.F.HalfCarry = true
					return None
				})
		}
	}

	// RES
	for bit := 0; bit < 8; bit++ {
		for reg := 0; reg < 8; reg++ {
			cycles := 8
			if reg == 6 {
				cycles = 16
			}

			mask := uint8(1) << bit
			r := reg
			defineExtended(uint8(0x80+bit*8+reg), fmt.Sprintf("RES %d,%s", bit, regNames[reg]), cycles,
				func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
					set8(mc, r, get8(mc, r)&^mask)
					return None
				})
		}
	}

	// SET
	for bit := 0; bit < 8; bit++ {
		for reg := 0; reg < 8; reg++ {
			cycles := 8
			if reg == 6 {
				cycles = 16
			}

			mask := uint8(1) << bit
			r := reg
			defineExtended(uint8(0xc0+bit*8+reg), fmt.Sprintf("SET %d,%s", bit, regNames[reg]), cycles,
				func(mc *cpu.CPU, _ bus.Opcode) ExecutionType {
					set8(mc, r, get8(mc, r)|mask)
					return None
				})
		}
	}
}
