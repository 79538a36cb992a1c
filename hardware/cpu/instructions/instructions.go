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

package instructions

import (
	"fmt"

	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/bus"
)

// ExecutionType classifies what an instruction handler did, for the benefit
// of the driving loop. It is a closed enumeration rather than a pair of
// booleans so that a handler cannot express an invalid combination of cycle
// charge and program counter policy.
type ExecutionType int

// The four possible execution types. The driving loop must apply them
// exactly:
//
//	None              base cycles; advance PC by the definition's Bytes
//	ActionTaken       base+conditional cycles; advance PC by Bytes
//	Jumped            base cycles; PC already set by the handler
//	JumpedActionTaken base+conditional cycles; PC already set by the handler
const (
	None ExecutionType = iota
	ActionTaken
	Jumped
	JumpedActionTaken
)

func (et ExecutionType) String() string {
	switch et {
	case None:
		return "none"
	case ActionTaken:
		return "action taken"
	case Jumped:
		return "jumped"
	case JumpedActionTaken:
		return "jumped, action taken"
	}
	return "invalid"
}

// ActionWasTaken returns true if the conditional cycle cost must be charged.
func (et ExecutionType) ActionWasTaken() bool {
	return et == ActionTaken || et == JumpedActionTaken
}

// PCWasSet returns true if the handler has already set the program counter
// and the driving loop must not advance it.
func (et ExecutionType) PCWasSet() bool {
	return et == Jumped || et == JumpedActionTaken
}

// Handler performs all register, flag and memory mutation implied by one
// instruction. Handlers are infallible at the instruction-semantics level;
// the only fatal conditions surface from the bus.
type Handler func(mc *cpu.CPU, opcode bus.Opcode) ExecutionType

// Definition defines each instruction in the instruction set; one per opcode
// value. Definitions are created once, during package initialisation, and
// never change.
type Definition struct {
	OpCode   bus.Opcode
	Mnemonic string

	// number of bytes the instruction occupies, including the opcode byte
	// (and the extension marker for extended opcodes). the driving loop
	// advances the PC by this amount unless the handler set the PC itself.
	Bytes int

	// base cycle cost, always charged
	Cycles int

	// extra cycle cost, charged only when the handler reports ActionTaken or
	// JumpedActionTaken. zero for instructions with a fixed cost.
	ConditionalCycles int

	Handler Handler
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.ConditionalCycles > 0 {
		return fmt.Sprintf("%s %s +%dbytes (%d/+%d cycles)",
			defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.ConditionalCycles)
	}
	return fmt.Sprintf("%s %s +%dbytes (%d cycles)",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles)
}

// the two instruction tables: the plain space and the 0xcb extended space.
// populated by the init() functions in this package and immutable
// thereafter. a nil entry is an undefined opcode.
var plain [256]*Definition
var extended [256]*Definition

// Lookup returns the definition for the opcode, or nil if the opcode has no
// definition. A nil return is distinct from a no-op instruction: continuing
// execution with an unknown instruction length and cycle cost desynchronises
// the rest of the emulation, so callers must treat it as fatal.
func Lookup(opcode bus.Opcode) *Definition {
	if opcode.Extended {
		return extended[opcode.Value]
	}
	return plain[opcode.Value]
}

// define adds a definition to the plain table during initialisation.
func define(value uint8, mnemonic string, bytes int, cycles int, conditional int, handler Handler) {
	if plain[value] != nil {
		panic(fmt.Sprintf("instructions: opcode %#02x defined twice", value))
	}
	plain[value] = &Definition{
		OpCode:            bus.Plain(value),
		Mnemonic:          mnemonic,
		Bytes:             bytes,
		Cycles:            cycles,
		ConditionalCycles: conditional,
		Handler:           handler,
	}
}

// defineExtended adds a definition to the extended table during
// initialisation.
func defineExtended(value uint8, mnemonic string, cycles int, handler Handler) {
	if extended[value] != nil {
		panic(fmt.Sprintf("instructions: extended opcode %#02x defined twice", value))
	}

	// every extended instruction is two bytes long (the extension marker and
	// the opcode proper) and has a fixed cycle cost
	extended[value] = &Definition{
		OpCode:   bus.Extend(value),
		Mnemonic: mnemonic,
		Bytes:    2,
		Cycles:   cycles,
		Handler:  handler,
	}
}
