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
	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu"
	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu/execution"
	"github.com/RustLoverTheCoder/gbemulator/hardware/gpu"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/bus"
	"github.com/RustLoverTheCoder/gbemulator/logger"
)

// GameBoy is the main container for the emulated components of the DMG.
type GameBoy struct {
	CPU *cpu.CPU
	Mem *memory.MMU
	GPU *gpu.GPU

	// details of the last instruction serviced by Step()
	LastResult execution.Result

	// total number of cycles charged since the session began
	TotalCycles int64
}

// NewGameBoy creates a new GameBoy and everything associated with the
// hardware. The cartridge is read-only and may be shared with other roles;
// the GameBoy keeps the only mutable reference to the GPU, reachable by
// other components only through the MMU.
//
// The boot ROM may be nil. In that case the boot latch is set immediately
// and the CPU begins from the state the real boot ROM would leave behind.
func NewGameBoy(cart bus.CartridgeBus, boot bus.CartridgeBus) *GameBoy {
	gb := &GameBoy{
		GPU: gpu.NewGPU(),
	}

	gb.Mem = memory.NewMMU(cart, gb.GPU, boot)
	gb.CPU = cpu.NewCPU(gb.Mem)

	if boot == nil {
		gb.Mem.SetBooted()
		gb.CPU.ResetPostBoot()
		logger.Log(logger.Allow, "gameboy", "no boot ROM, starting from post-boot state")
	}

	return gb
}

// Reset the emulated machine to its starting state. The boot latch is not
// reverted; a session that has seen the boot ROM disabled restarts from the
// post-boot state.
func (gb *GameBoy) Reset() {
	if gb.Mem.Booted() {
		gb.CPU.ResetPostBoot()
	} else {
		gb.CPU.Reset()
	}
	gb.LastResult = execution.Result{}
	gb.TotalCycles = 0
}
