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

package cpu_test

import (
	"testing"

	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/bus"
	"github.com/RustLoverTheCoder/gbemulator/test"
)

// mockMem is a flat 64k byte store implementing the bus.CPUBus interface,
// with none of the routing or side effects of the real MMU.
type mockMem struct {
	internal [0x10000]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) ReadWord(address uint16) uint16 {
	return uint16(mem.Read(address))<<8 | uint16(mem.Read(address+1))
}

func (mem *mockMem) WriteWord(address uint16, data uint16) {
	mem.Write(address, uint8(data>>8))
	mem.Write(address+1, uint8(data))
}

func (mem *mockMem) ReadOpcode(address uint16) bus.Opcode {
	value := mem.Read(address)
	if value == bus.ExtensionMarker {
		return bus.Extend(mem.Read(address + 1))
	}
	return bus.Plain(value)
}

func (mem *mockMem) putBytes(origin uint16, bytes ...uint8) {
	for i, b := range bytes {
		mem.Write(origin+uint16(i), b)
	}
}

func TestRegisterPairs(t *testing.T) {
	mc := cpu.NewCPU(&mockMem{})

	mc.SetBC(0x1234)
	test.Equate(t, mc.B, 0x12)
	test.Equate(t, mc.C, 0x34)
	test.Equate(t, mc.BC(), 0x1234)

	mc.SetDE(0xabcd)
	test.Equate(t, mc.DE(), 0xabcd)

	mc.SetHL(0x8001)
	test.Equate(t, mc.H, 0x80)
	test.Equate(t, mc.L, 0x01)

	// the low nibble of F is discarded on an AF load
	mc.SetAF(0x55ff)
	test.Equate(t, mc.A, 0x55)
	test.Equate(t, mc.AF(), 0x55f0)
}

func TestOperands(t *testing.T) {
	mem := &mockMem{}
	mc := cpu.NewCPU(mem)

	// immediates are stored low byte first
	mem.putBytes(0x0100, 0x3e, 0x34, 0x12)
	mc.PC.Load(0x0100)

	test.Equate(t, mc.Operand8(), 0x34)
	test.Equate(t, mc.Operand16(), 0x1234)

	// reading operands does not move the PC
	test.Equate(t, mc.PC.Address(), 0x0100)
}

func TestStack(t *testing.T) {
	mem := &mockMem{}
	mc := cpu.NewCPU(mem)
	mc.SP.Load(0xfffe)

	mc.Push16(0x1234)
	test.Equate(t, mc.SP.Address(), 0xfffc)

	// high byte at the higher address
	test.Equate(t, mem.Read(0xfffd), 0x12)
	test.Equate(t, mem.Read(0xfffc), 0x34)

	mc.Push16(0xabcd)
	test.Equate(t, mc.Pop16(), 0xabcd)
	test.Equate(t, mc.Pop16(), 0x1234)
	test.Equate(t, mc.SP.Address(), 0xfffe)
}

func TestReset(t *testing.T) {
	mc := cpu.NewCPU(&mockMem{})

	mc.A = 0x12
	mc.IME = true
	mc.Halted = true
	mc.PC.Load(0x4321)

	mc.Reset()
	test.Equate(t, mc.A, 0x00)
	test.Equate(t, mc.IME, false)
	test.Equate(t, mc.Halted, false)
	test.Equate(t, mc.PC.Address(), 0x0000)

	// the post-boot state is what the real boot ROM leaves behind
	mc.ResetPostBoot()
	test.Equate(t, mc.PC.Address(), 0x0100)
	test.Equate(t, mc.SP.Address(), 0xfffe)
	test.Equate(t, mc.A, 0x01)
	test.Equate(t, mc.AF(), 0x01b0)
}

func TestSnapshot(t *testing.T) {
	mc := cpu.NewCPU(&mockMem{})
	mc.A = 0x42

	n := mc.Snapshot()
	mc.A = 0x00
	test.Equate(t, n.A, 0x42)
}
