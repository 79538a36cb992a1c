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

package registers

import (
	"strings"
)

// Flags is the F register of the SM83, the special purpose register that
// stores the flags of the CPU.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// NewFlags is the preferred method of initialisation for the flags register.
func NewFlags() Flags {
	return Flags{}
}

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

func (f Flags) String() string {
	s := strings.Builder{}

	if f.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if f.Subtract {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if f.HalfCarry {
		s.WriteRune('H')
	} else {
		s.WriteRune('h')
	}
	if f.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset flags to initial state.
func (f *Flags) Reset() {
	f.FromValue(0)
}

// Value converts the Flags struct into a value suitable for pairing with the
// A register or pushing onto the stack. The low nibble of the F register does
// not exist in the silicon and is always 0.
func (f Flags) Value() uint8 {
	var v uint8

	if f.Zero {
		v |= 0x80
	}
	if f.Subtract {
		v |= 0x40
	}
	if f.HalfCarry {
		v |= 0x20
	}
	if f.Carry {
		v |= 0x10
	}

	return v
}

// FromValue converts an 8 bit integer (popped from the stack, for example) to
// the Flags struct receiver. The low nibble is discarded.
func (f *Flags) FromValue(v uint8) {
	f.Zero = v&0x80 == 0x80
	f.Subtract = v&0x40 == 0x40
	f.HalfCarry = v&0x20 == 0x20
	f.Carry = v&0x10 == 0x10
}
