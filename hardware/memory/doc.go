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

// Package memory implements the DMG memory model. The memorymap and cartridge
// sub-packages help with this.
//
// Memory is viewed differently by different parts of the system. To help with
// this the emulation uses what have been called memory busses. The busses
// have nothing to do with the real hardware; they are purely conceptual and
// are implemented through Go interfaces, defined in the bus sub-package.
//
// The MMU type is the single implementation of the CPUBus interface and the
// only component with a mutable reference to the GPU:
//
//	                          ---- Boot ROM  (until the boot latch is set)
//	                         |
//	                         |-<-- Cartridge
//	                         |
//	   CPU ---- cpu bus ---- *---- WorkingRAM / ExternalRAM / EchoRAM / HighRAM
//	                         |
//	                         |---- IO registers, IE/IF
//	                         |
//	                          ---- video bus ---- GPU (VRAM, OAM, registers)
//
// The arrows pointing away from the boot ROM and cartridge areas indicate
// that the CPU can only read from them.
//
// Every address has exactly one read owner and one write owner, possibly a
// no-op, except in the overlaid low range where the boot latch selects the
// read owner. The memorymap package contains the partition detail.
package memory
