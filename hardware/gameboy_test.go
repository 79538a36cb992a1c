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

package hardware_test

import (
	"testing"

	"github.com/RustLoverTheCoder/gbemulator/curated"
	"github.com/RustLoverTheCoder/gbemulator/hardware"
	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu/instructions"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/cartridge"
	"github.com/RustLoverTheCoder/gbemulator/test"
)

// newTestGameBoy creates a GameBoy without a boot ROM, running the supplied
// program from the post-boot entry point 0x0100.
func newTestGameBoy(program ...uint8) *hardware.GameBoy {
	data := make([]uint8, 0x8000)
	copy(data[0x0100:], program)
	return hardware.NewGameBoy(cartridge.NewCartridge(data), nil)
}

// step the emulation by one instruction, insisting on success and on a
// result that is consistent with the instruction definition.
func step(t *testing.T, gb *hardware.GameBoy) {
	t.Helper()

	if err := gb.Step(); err != nil {
		t.Fatal(err)
	}
	if err := gb.LastResult.IsValid(); err != nil {
		t.Fatal(err)
	}
}

func TestPostBootState(t *testing.T) {
	gb := newTestGameBoy(0x00)

	test.Equate(t, gb.Mem.Booted(), true)
	test.Equate(t, gb.CPU.PC.Address(), 0x0100)
	test.Equate(t, gb.CPU.SP.Address(), 0xfffe)
	test.Equate(t, gb.CPU.AF(), 0x01b0)
}

func TestPCAdvance(t *testing.T) {
	gb := newTestGameBoy(
		0x00, // NOP
		0x3e, 0x42, // LD A,d8
	)

	step(t, gb)
	test.Equate(t, gb.CPU.PC.Address(), 0x0101)
	test.Equate(t, gb.LastResult.Address, 0x0100)
	test.Equate(t, gb.LastResult.Cycles, 4)
	test.Equate(t, gb.LastResult.Outcome == instructions.None, true)

	step(t, gb)
	test.Equate(t, gb.CPU.PC.Address(), 0x0103)
	test.Equate(t, gb.CPU.A, 0x42)
	test.Equate(t, gb.LastResult.Cycles, 8)
	test.Equate(t, gb.TotalCycles == 12, true)
}

// a Jumped outcome must leave the PC exactly as the handler set it.
func TestJumpOutcome(t *testing.T) {
	gb := newTestGameBoy(0xc3, 0x50, 0x01) // JP a16

	step(t, gb)
	test.Equate(t, gb.CPU.PC.Address(), 0x0150)
	test.Equate(t, gb.LastResult.Cycles, 16)
	test.Equate(t, gb.LastResult.Outcome == instructions.Jumped, true)
}

func TestConditionalOutcomes(t *testing.T) {
	gb := newTestGameBoy(
		0x20, 0x02, // JR NZ,r8 - not taken, the post-boot zero flag is set
		0xc6, 0x01, // ADD A,d8 - clears the zero flag
		0x20, 0x02, // JR NZ,r8 - taken
	)

	step(t, gb)
	test.Equate(t, gb.CPU.PC.Address(), 0x0102)
	test.Equate(t, gb.LastResult.Cycles, 8)
	test.Equate(t, gb.LastResult.Outcome == instructions.None, true)

	step(t, gb)
	test.Equate(t, gb.CPU.F.Zero, false)

	step(t, gb)
	test.Equate(t, gb.CPU.PC.Address(), 0x0108)
	test.Equate(t, gb.LastResult.Cycles, 12)
	test.Equate(t, gb.LastResult.Outcome == instructions.JumpedActionTaken, true)
}

func TestExtendedInstructions(t *testing.T) {
	gb := newTestGameBoy(
		0x3e, 0xf0, // LD A,d8
		0xcb, 0x37, // SWAP A
		0xcb, 0x7f, // BIT 7,A
	)

	step(t, gb)
	step(t, gb)
	test.Equate(t, gb.CPU.A, 0x0f)
	test.Equate(t, gb.CPU.PC.Address(), 0x0104)
	test.Equate(t, gb.LastResult.Cycles, 8)

	step(t, gb)
	test.Equate(t, gb.CPU.F.Zero, true)
	test.Equate(t, gb.CPU.F.HalfCarry, true)
	test.Equate(t, gb.CPU.PC.Address(), 0x0106)
}

func TestStackInstructions(t *testing.T) {
	gb := newTestGameBoy(
		0x01, 0x34, 0x12, // LD BC,d16
		0xc5, // PUSH BC
		0xd1, // POP DE
	)

	step(t, gb)
	step(t, gb)
	test.Equate(t, gb.CPU.SP.Address(), 0xfffc)

	step(t, gb)
	test.Equate(t, gb.CPU.DE(), 0x1234)
	test.Equate(t, gb.CPU.SP.Address(), 0xfffe)
}

func TestCallAndReturn(t *testing.T) {
	program := make([]uint8, 0x20)
	copy(program, []uint8{0xcd, 0x10, 0x01}) // CALL 0x0110
	program[0x10] = 0xc9                     // RET

	gb := newTestGameBoy(program...)

	step(t, gb)
	test.Equate(t, gb.CPU.PC.Address(), 0x0110)
	test.Equate(t, gb.LastResult.Cycles, 24)

	step(t, gb)
	test.Equate(t, gb.CPU.PC.Address(), 0x0103)
	test.Equate(t, gb.CPU.SP.Address(), 0xfffe)
}

// binary coded decimal: 45 + 38 = 83.
func TestDAA(t *testing.T) {
	gb := newTestGameBoy(
		0x3e, 0x45, // LD A,d8
		0xc6, 0x38, // ADD A,d8
		0x27, // DAA
	)

	step(t, gb)
	step(t, gb)
	test.Equate(t, gb.CPU.A, 0x7d)

	step(t, gb)
	test.Equate(t, gb.CPU.A, 0x83)
	test.Equate(t, gb.CPU.F.Zero, false)
	test.Equate(t, gb.CPU.F.Carry, false)
}

func TestInterruptService(t *testing.T) {
	gb := newTestGameBoy(
		0x3e, 0x01, // LD A,d8
		0xe0, 0xff, // LDH (a8),A - interrupt enable
		0xe0, 0x0f, // LDH (a8),A - raise VBlank in interrupt flags
		0xfb, // EI
		0x00, // NOP - IME is raised after this instruction
	)

	for i := 0; i < 5; i++ {
		step(t, gb)
	}
	test.Equate(t, gb.CPU.PC.Address(), 0x0108)
	test.Equate(t, gb.CPU.IME, true)

	// the pending interrupt pre-empts the instruction at the PC
	before := gb.TotalCycles
	if err := gb.Step(); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, gb.CPU.PC.Address(), 0x0040)
	test.Equate(t, gb.CPU.IME, false)
	test.Equate(t, gb.Mem.Read(0xff0f), 0x00)
	test.Equate(t, gb.TotalCycles-before == 20, true)

	// the pre-empted address is on the stack
	test.Equate(t, gb.CPU.Pop16(), 0x0108)
}

func TestHaltWake(t *testing.T) {
	gb := newTestGameBoy(
		0x76, // HALT
		0x00, // NOP
	)

	step(t, gb)
	test.Equate(t, gb.CPU.Halted, true)
	test.Equate(t, gb.CPU.PC.Address(), 0x0101)

	// nothing pending. the CPU idles
	if err := gb.Step(); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, gb.CPU.PC.Address(), 0x0101)

	// with IME unset a pending interrupt wakes the CPU without being
	// serviced
	gb.Mem.Write(0xffff, 0x01)
	gb.Mem.Write(0xff0f, 0x01)
	step(t, gb)
	test.Equate(t, gb.CPU.Halted, false)
	test.Equate(t, gb.CPU.PC.Address(), 0x0102)
	test.Equate(t, gb.Mem.Read(0xff0f), 0x01)
}

func TestUnknownOpcode(t *testing.T) {
	gb := newTestGameBoy(0xd3)

	err := gb.Step()
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, hardware.UnknownOpcode), true)

	// the result of the failed step is not finalised
	test.ExpectedFailure(t, gb.LastResult.IsValid())
}

func TestRunLoop(t *testing.T) {
	gb := newTestGameBoy(0x18, 0xfe) // JR -2, a tight infinite loop

	instructionCt := 0
	err := gb.Run(func() (bool, error) {
		instructionCt++
		return instructionCt < 10, nil
	})

	test.ExpectedSuccess(t, err)
	test.Equate(t, gb.CPU.PC.Address(), 0x0100)
	test.Equate(t, gb.TotalCycles == 120, true)
}

// with a boot ROM attached, execution begins at 0x0000 in the boot overlay.
// a write to the boot disable register hands the low addresses back to the
// cartridge.
func TestBootROMExecution(t *testing.T) {
	boot := make([]uint8, 0x100)
	copy(boot, []uint8{
		0x3e, 0x01, // LD A,d8
		0xe0, 0x50, // LDH (a8),A - disable the boot ROM
	})

	cartData := make([]uint8, 0x8000)
	cartData[0x0004] = 0x3e // LD A,d8
	cartData[0x0005] = 0x99

	gb := hardware.NewGameBoy(cartridge.NewCartridge(cartData), cartridge.NewCartridge(boot))

	test.Equate(t, gb.Mem.Booted(), false)
	test.Equate(t, gb.CPU.PC.Address(), 0x0000)

	step(t, gb)
	step(t, gb)
	test.Equate(t, gb.Mem.Booted(), true)

	// the next fetch reads through to the cartridge
	step(t, gb)
	test.Equate(t, gb.CPU.A, 0x99)
}
