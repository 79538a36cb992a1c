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

package hardware

import (
	"github.com/RustLoverTheCoder/gbemulator/curated"
	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu/execution"
	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu/instructions"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/memorymap"
)

// UnknownOpcode is the error pattern returned by Step() when the fetched
// opcode has no entry in the instruction table. Continuing past it would
// desynchronise the cycle count and the program counter, so the caller must
// end the session.
const UnknownOpcode = "gameboy: unknown opcode %s at %#04x"

// cycle cost of servicing an interrupt: two idle machine cycles, the push of
// the PC and the load of the vector.
const interruptCycles = 20

// the five interrupt sources in priority order, one bit each in the IE and
// IF registers.
const interruptMask = uint8(0x1f)

// serviceInterrupt checks for a pending, enabled interrupt and dispatches
// the highest priority one. Returns the number of cycles charged; zero if
// nothing was pending.
func (gb *GameBoy) serviceInterrupt() int {
	pending := gb.Mem.Read(memorymap.InterruptEnReg) & gb.Mem.Read(memorymap.InterruptFlags) & interruptMask
	if pending == 0 {
		return 0
	}

	// priority order: VBlank(0), LCD status(1), timer(2), serial(3), joypad(4)
	var bit uint
	for bit = 0; bit < 5; bit++ {
		if pending&(1<<bit) != 0 {
			break
		}
	}

	// acknowledge by clearing the IF bit
	gb.Mem.Write(memorymap.InterruptFlags, gb.Mem.Read(memorymap.InterruptFlags)&^(1<<bit))

	gb.CPU.Halted = false
	gb.CPU.IME = false
	gb.CPU.Push16(gb.CPU.PC.Address())
	gb.CPU.PC.Load(memorymap.InterruptVector + uint16(bit)*8)

	return interruptCycles
}

// Step the emulated machine by one CPU instruction (or one interrupt
// dispatch, which pre-empts the instruction at the PC). Details of what was
// executed are left in the LastResult field.
func (gb *GameBoy) Step() error {
	// apply the delayed effect of a previous EI instruction. the SM83
	// enables interrupts after the instruction that follows EI.
	raiseIME := gb.CPU.EIPending

	// a halted CPU idles until an interrupt is raised. with IME unset the
	// CPU resumes execution without servicing the interrupt.
	if gb.CPU.Halted {
		if gb.CPU.IME {
			if cycles := gb.serviceInterrupt(); cycles > 0 {
				gb.TotalCycles += int64(cycles)
				return nil
			}
		} else if gb.Mem.Read(memorymap.InterruptEnReg)&gb.Mem.Read(memorymap.InterruptFlags)&interruptMask != 0 {
			gb.CPU.Halted = false
		}

		if gb.CPU.Halted {
			gb.TotalCycles += 4
			return nil
		}
	}

	if gb.CPU.IME {
		if cycles := gb.serviceInterrupt(); cycles > 0 {
			gb.TotalCycles += int64(cycles)
			return nil
		}
	}

	opcode := gb.Mem.ReadOpcode(gb.CPU.PC.Address())

	defn := instructions.Lookup(opcode)
	if defn == nil {
		gb.LastResult = execution.Result{
			Address: gb.CPU.PC.Address(),
		}
		return curated.Errorf(UnknownOpcode, opcode, gb.CPU.PC.Address())
	}

	result := execution.Result{
		Address: gb.CPU.PC.Address(),
		Defn:    defn,
	}

	result.Outcome = defn.Handler(gb.CPU, opcode)

	// cycle charge and PC policy follow from the outcome and nothing else
	result.Cycles = defn.Cycles
	if result.Outcome.ActionWasTaken() {
		result.Cycles += defn.ConditionalCycles
	}
	if !result.Outcome.PCWasSet() {
		gb.CPU.PC.Add(uint16(defn.Bytes))
	}

	result.Final = true
	gb.LastResult = result
	gb.TotalCycles += int64(result.Cycles)

	if raiseIME && gb.CPU.EIPending {
		gb.CPU.IME = true
		gb.CPU.EIPending = false
	}

	return nil
}
