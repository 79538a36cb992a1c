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

package cartridge

import (
	"fmt"
	"strings"
)

// title of the cartridge is stored in the header at these offsets.
const (
	titleOrigin = 0x0134
	titleMemtop = 0x0143
)

// Cartridge is a read-only byte store constructed from a ROM image. The same
// type serves as the boot (BIOS) store, which is read through the same
// one-function contract.
//
// Bank-switching controllers are beyond the scope of this type. ROM images
// larger than the cartridge area are truncated from the point of view of the
// bus.
type Cartridge struct {
	data []uint8
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data slice is copied so the caller is free to reuse it.
func NewCartridge(data []uint8) *Cartridge {
	cart := &Cartridge{
		data: make([]uint8, len(data)),
	}
	copy(cart.data, data)
	return cart
}

// Read returns the byte at address. Addresses beyond the extent of the ROM
// image read as 0xff, the value of an undriven bus.
func (cart *Cartridge) Read(address uint16) uint8 {
	if int(address) >= len(cart.data) {
		return 0xff
	}
	return cart.data[address]
}

// Size returns the length of the ROM image in bytes.
func (cart *Cartridge) Size() int {
	return len(cart.data)
}

// Title returns the name of the cartridge as stored in the ROM header. The
// empty string if the image is too small to have a header.
func (cart *Cartridge) Title() string {
	if len(cart.data) <= int(titleMemtop) {
		return ""
	}

	s := strings.Builder{}
	for _, b := range cart.data[titleOrigin : titleMemtop+1] {
		if b == 0x00 {
			break
		}
		s.WriteByte(b)
	}
	return s.String()
}

func (cart *Cartridge) String() string {
	title := cart.Title()
	if title == "" {
		title = "unnamed"
	}
	return fmt.Sprintf("%s (%dk)", title, len(cart.data)/1024)
}
