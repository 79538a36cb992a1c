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

package memory

import (
	"encoding/hex"
)

// RAM represents one of the RAM backed areas of the address space: working
// RAM, external RAM, echo RAM, high RAM and the generic IO register block.
type RAM struct {
	label  string
	origin uint16
	ram    []uint8
}

// newRAM is the preferred method of initialisation for the RAM memory areas.
// Contents are zeroed and mutate only through Write().
func newRAM(label string, origin uint16, memtop uint16) *RAM {
	return &RAM{
		label:  label,
		origin: origin,
		ram:    make([]uint8, memtop-origin+1),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (r *RAM) Snapshot() *RAM {
	n := *r
	n.ram = make([]uint8, len(r.ram))
	copy(n.ram, r.ram)
	return &n
}

// Label returns the canonical name of the memory area.
func (r *RAM) Label() string {
	return r.label
}

func (r *RAM) String() string {
	return hex.Dump(r.ram)
}

// Read returns the byte at the absolute bus address. Address must be inside
// the area's range.
func (r *RAM) Read(address uint16) uint8 {
	return r.ram[address-r.origin]
}

// Write stores the byte at the absolute bus address. Address must be inside
// the area's range.
func (r *RAM) Write(address uint16, data uint8) {
	r.ram[address-r.origin] = data
}
