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

// Package cpu emulates the register and flag state of the SM83 core found in
// the DMG. Like all 8-bit processors of the era, the SM83 executes
// instructions according to the byte value read from the address pointed to
// by the program counter. That byte (possibly extended by a prefix byte) is
// looked up in the instruction table and the definition found there is used
// to move execution of the program forward.
//
// Unusually, this package contains no execution loop. The CPU type is a bag
// of mutable register state plus the memory access helpers that the
// instruction handlers in the instructions sub-package share. The driving
// loop in the hardware package ties fetch, lookup, execution and program
// counter policy together.
//
// An instance of the CPU type requires an implementation of the bus.CPUBus
// interface as the sole argument to NewCPU(). See the memory package for the
// canonical implementation.
package cpu
