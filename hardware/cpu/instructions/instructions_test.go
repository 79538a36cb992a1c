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

package instructions_test

import (
	"testing"

	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu/instructions"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/bus"
	"github.com/RustLoverTheCoder/gbemulator/test"
)

// the plain opcode values with no definition on the SM83: the eleven holes
// of the opcode map, plus the extension marker itself.
var undefinedPlain = map[uint8]bool{
	0xcb: true,
	0xd3: true, 0xdb: true, 0xdd: true,
	0xe3: true, 0xe4: true, 0xeb: true, 0xec: true, 0xed: true,
	0xf4: true, 0xfc: true, 0xfd: true,
}

func TestPlainTable(t *testing.T) {
	defined := 0

	for v := 0; v <= 0xff; v++ {
		defn := instructions.Lookup(bus.Plain(uint8(v)))

		if undefinedPlain[uint8(v)] {
			if defn != nil {
				t.Errorf("opcode %#02x should be undefined (%s)", v, defn.Mnemonic)
			}
			continue
		}

		if defn == nil {
			t.Errorf("opcode %#02x has no definition", v)
			continue
		}
		defined++

		if defn.OpCode != bus.Plain(uint8(v)) {
			t.Errorf("opcode %#02x defined under the wrong table slot", v)
		}
		if defn.Bytes < 1 || defn.Bytes > 3 {
			t.Errorf("opcode %#02x [%s] has silly byte length %d", v, defn.Mnemonic, defn.Bytes)
		}
		if defn.Cycles < 4 || defn.Cycles%4 != 0 {
			t.Errorf("opcode %#02x [%s] has silly cycle count %d", v, defn.Mnemonic, defn.Cycles)
		}
		if defn.ConditionalCycles%4 != 0 {
			t.Errorf("opcode %#02x [%s] has silly conditional cycle count %d", v, defn.Mnemonic, defn.ConditionalCycles)
		}
		if defn.Handler == nil {
			t.Errorf("opcode %#02x [%s] has no handler", v, defn.Mnemonic)
		}
		if defn.Mnemonic == "" {
			t.Errorf("opcode %#02x has no mnemonic", v)
		}
	}

	test.Equate(t, defined, 256-len(undefinedPlain))
}

// every value in the extended space is defined and two bytes long.
func TestExtendedTable(t *testing.T) {
	for v := 0; v <= 0xff; v++ {
		defn := instructions.Lookup(bus.Extend(uint8(v)))

		if defn == nil {
			t.Errorf("extended opcode %#02x has no definition", v)
			continue
		}

		if defn.OpCode != bus.Extend(uint8(v)) {
			t.Errorf("extended opcode %#02x defined under the wrong table slot", v)
		}
		test.Equate(t, defn.Bytes, 2)
		if defn.Cycles != 8 && defn.Cycles != 12 && defn.Cycles != 16 {
			t.Errorf("extended opcode %#02x [%s] has silly cycle count %d", v, defn.Mnemonic, defn.Cycles)
		}
		test.Equate(t, defn.ConditionalCycles, 0)
		if defn.Handler == nil {
			t.Errorf("extended opcode %#02x [%s] has no handler", v, defn.Mnemonic)
		}
	}
}

// only the conditional jump, call and return families carry a conditional
// cycle cost.
func TestConditionalCycleCosts(t *testing.T) {
	conditional := map[uint8]bool{
		0x20: true, 0x28: true, 0x30: true, 0x38: true, // JR cc
		0xc2: true, 0xca: true, 0xd2: true, 0xda: true, // JP cc
		0xc4: true, 0xcc: true, 0xd4: true, 0xdc: true, // CALL cc
		0xc0: true, 0xc8: true, 0xd0: true, 0xd8: true, // RET cc
	}

	for v := 0; v <= 0xff; v++ {
		defn := instructions.Lookup(bus.Plain(uint8(v)))
		if defn == nil {
			continue
		}

		if conditional[uint8(v)] {
			if defn.ConditionalCycles == 0 {
				t.Errorf("conditional opcode %#02x [%s] has no conditional cycle cost", v, defn.Mnemonic)
			}
		} else if defn.ConditionalCycles != 0 {
			t.Errorf("opcode %#02x [%s] has an unexpected conditional cycle cost", v, defn.Mnemonic)
		}
	}
}

func TestLookupSpacesAreDistinct(t *testing.T) {
	plain := instructions.Lookup(bus.Plain(0x7c))
	ext := instructions.Lookup(bus.Extend(0x7c))

	test.Equate(t, plain.Mnemonic, "LD A,H")
	test.Equate(t, ext.Mnemonic, "BIT 7,H")
}

func TestExecutionTypePolicies(t *testing.T) {
	test.Equate(t, instructions.None.ActionWasTaken(), false)
	test.Equate(t, instructions.None.PCWasSet(), false)
	test.Equate(t, instructions.ActionTaken.ActionWasTaken(), true)
	test.Equate(t, instructions.ActionTaken.PCWasSet(), false)
	test.Equate(t, instructions.Jumped.ActionWasTaken(), false)
	test.Equate(t, instructions.Jumped.PCWasSet(), true)
	test.Equate(t, instructions.JumpedActionTaken.ActionWasTaken(), true)
	test.Equate(t, instructions.JumpedActionTaken.PCWasSet(), true)
}
