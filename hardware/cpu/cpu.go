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

package cpu

import (
	"fmt"

	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu/registers"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/bus"
)

// CPU implements the SM83 core found in the DMG. Instruction semantics are
// not implemented here; the handlers in the instructions sub-package mutate
// the register and flag state directly. The CPU does not fetch, decode or
// advance the program counter by itself - that is the driving loop's job.
type CPU struct {
	PC registers.ProgramCounter
	SP registers.StackPointer

	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F registers.Flags

	// interrupt master enable. not addressable; changed only by the DI, EI
	// and RETI instructions and by interrupt servicing.
	IME bool

	// EI enables IME only after the instruction following it
	EIPending bool

	// set by the HALT instruction. the driving loop idles a halted CPU until
	// an interrupt is raised.
	Halted bool

	// Mem is the one gateway to the address space. instruction handlers
	// perform all their memory access through it.
	Mem bus.CPUBus
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is initialised to the pre-boot state: every register zero, ready to
// execute the boot ROM from address 0x0000.
func NewCPU(mem bus.CPUBus) *CPU {
	return &CPU{
		PC:  registers.NewProgramCounter(0),
		SP:  registers.NewStackPointer(0),
		F:   registers.NewFlags(),
		Mem: mem,
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new CPUBus into the CPU.
func (mc *CPU) Plumb(mem bus.CPUBus) {
	mc.Mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s A=%#02x B=%#02x C=%#02x D=%#02x E=%#02x H=%#02x L=%#02x %s=%s",
		mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP,
		mc.A, mc.B, mc.C, mc.D, mc.E, mc.H, mc.L,
		mc.F.Label(), mc.F)
}

// Reset reinitialises all registers to the pre-boot state.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.SP.Load(0)
	mc.A = 0
	mc.B = 0
	mc.C = 0
	mc.D = 0
	mc.E = 0
	mc.H = 0
	mc.L = 0
	mc.F.Reset()
	mc.IME = false
	mc.EIPending = false
	mc.Halted = false
}

// ResetPostBoot sets all registers to the values the DMG boot ROM leaves
// behind. Used when starting a session without a boot ROM.
func (mc *CPU) ResetPostBoot() {
	mc.Reset()
	mc.PC.Load(0x0100)
	mc.SP.Load(0xfffe)
	mc.A = 0x01
	mc.F.FromValue(0xb0)
	mc.B = 0x00
	mc.C = 0x13
	mc.D = 0x00
	mc.E = 0xd8
	mc.H = 0x01
	mc.L = 0x4d
}

// AF returns the A register paired with the flags register.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A)<<8 | uint16(mc.F.Value())
}

// SetAF loads the A register and the flags register as a pair. The low
// nibble of the flags byte is discarded, as in the silicon.
func (mc *CPU) SetAF(val uint16) {
	mc.A = uint8(val >> 8)
	mc.F.FromValue(uint8(val))
}

// BC returns the B and C registers as a 16 bit pair.
func (mc *CPU) BC() uint16 {
	return uint16(mc.B)<<8 | uint16(mc.C)
}

// SetBC loads the B and C registers as a 16 bit pair.
func (mc *CPU) SetBC(val uint16) {
	mc.B = uint8(val >> 8)
	mc.C = uint8(val)
}

// DE returns the D and E registers as a 16 bit pair.
func (mc *CPU) DE() uint16 {
	return uint16(mc.D)<<8 | uint16(mc.E)
}

// SetDE loads the D and E registers as a 16 bit pair.
func (mc *CPU) SetDE(val uint16) {
	mc.D = uint8(val >> 8)
	mc.E = uint8(val)
}

// HL returns the H and L registers as a 16 bit pair.
func (mc *CPU) HL() uint16 {
	return uint16(mc.H)<<8 | uint16(mc.L)
}

// SetHL loads the H and L registers as a 16 bit pair.
func (mc *CPU) SetHL(val uint16) {
	mc.H = uint8(val >> 8)
	mc.L = uint8(val)
}

// Operand8 reads the byte following the opcode. The PC is not moved;
// advancing it is the driving loop's job.
func (mc *CPU) Operand8() uint8 {
	return mc.Mem.Read(mc.PC.Address() + 1)
}

// Operand16 reads the two bytes following the opcode as a 16 bit value, low
// byte first as the SM83 stores its immediates. The PC is not moved.
func (mc *CPU) Operand16() uint16 {
	lo := mc.Mem.Read(mc.PC.Address() + 1)
	hi := mc.Mem.Read(mc.PC.Address() + 2)
	return uint16(hi)<<8 | uint16(lo)
}

// Push16 pushes a 16 bit value onto the stack: high byte at SP-1, low byte at
// SP-2, leaving SP lowered by two.
func (mc *CPU) Push16(val uint16) {
	mc.SP.Decrement()
	mc.Mem.Write(mc.SP.Address(), uint8(val>>8))
	mc.SP.Decrement()
	mc.Mem.Write(mc.SP.Address(), uint8(val))
}

// Pop16 pops a 16 bit value from the stack, leaving SP raised by two.
func (mc *CPU) Pop16() uint16 {
	lo := mc.Mem.Read(mc.SP.Address())
	mc.SP.Increment()
	hi := mc.Mem.Read(mc.SP.Address())
	mc.SP.Increment()
	return uint16(hi)<<8 | uint16(lo)
}
