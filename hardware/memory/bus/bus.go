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

// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
package bus

import "fmt"

// ExtensionMarker is the reserved byte value that introduces the extended
// (two byte) opcode space.
const ExtensionMarker = uint8(0xcb)

// Opcode is the product of fetching and decoding at the program counter. It
// is a tagged value: a plain opcode carries the single byte read at the PC; an
// extended opcode carries the byte following the 0xcb extension marker.
//
// Every byte sequence decodes to a valid Opcode. An opcode with no entry in
// the instruction table is a lookup miss, not a decode failure.
type Opcode struct {
	Value    uint8
	Extended bool
}

// Plain creates an Opcode in the single byte opcode space.
func Plain(value uint8) Opcode {
	return Opcode{Value: value}
}

// Extend creates an Opcode in the 0xcb prefixed opcode space.
func Extend(value uint8) Opcode {
	return Opcode{Value: value, Extended: true}
}

func (oc Opcode) String() string {
	if oc.Extended {
		return fmt.Sprintf("%#02x %#02x", ExtensionMarker, oc.Value)
	}
	return fmt.Sprintf("%#02x", oc.Value)
}

// CPUBus defines the operations for the memory system when accessed from the
// CPU. Only the MMU implements this interface; the CPU and the instruction
// handlers need not care which part of memory they are addressing.
//
// Read and Write return no error. The one unrecoverable condition (a read of
// a boot-sensitive address with no boot ROM attached) terminates the session
// with a panic because there is no valid byte to return and the routing state
// of the whole machine is invalid.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	ReadWord(address uint16) uint16
	WriteWord(address uint16, data uint16)
	ReadOpcode(address uint16) Opcode
}

// CartridgeBus defines the one-function contract for read-only stores mapped
// into the low half of the address space. Both the game ROM and the boot ROM
// satisfy this interface.
type CartridgeBus interface {
	Read(address uint16) uint8
}

// VideoBus defines the operations for the memory system when accessing GPU
// owned state. The MMU holds the only mutable reference to the GPU; every
// other component reaches GPU state through MMU routing.
//
// Addresses passed to the VRAM and OAM functions are absolute bus addresses;
// implementations normalise them to their own storage.
type VideoBus interface {
	ReadVRAM(address uint16) uint8
	WriteVRAM(address uint16, data uint8)
	ReadOAM(address uint16) uint8
	WriteOAM(address uint16, data uint8)

	WriteLCDC(data uint8)
	SetBGPalette(data uint8)
	SetScrollX(data uint8)
	SetScrollY(data uint8)

	LCDC() uint8
	ScrollX() uint8
	ScrollY() uint8
	Scanline() uint8
}
