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

// Package memorymap describes the DMG address space. The MapAddress()
// function classifies a 16bit address into the memory area that owns it and
// the package constants give the origin and top of each area, along with the
// addresses of the IO registers that the MMU taps for side effects.
//
// The read owner and write owner of an address are not always the same; that
// distinction is made by the memory package, not here.
package memorymap
