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

package execution

import (
	"fmt"

	"github.com/RustLoverTheCoder/gbemulator/curated"
	"github.com/RustLoverTheCoder/gbemulator/hardware/cpu/instructions"
)

// Result records the execution details of the most recent instruction.
type Result struct {
	// the address the opcode was fetched from
	Address uint16

	// a pointer to the instruction definition. a convenient combination of
	// the opcode and the static metadata that was used to execute it.
	Defn *instructions.Definition

	// what the handler reported back
	Outcome instructions.ExecutionType

	// the number of cycles charged for the instruction, conditional cost
	// included
	Cycles int

	// whether the instruction was serviced to completion by the driving loop
	Final bool
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x: no instruction", r.Address)
	}
	return fmt.Sprintf("%#04x: %s (%d cycles)", r.Address, r.Defn.Mnemonic, r.Cycles)
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition. The driving loop doesn't call
// this function because it would introduce an unwanted performance penalty,
// but it's good to use in a debugging or testing context.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: no instruction definition")
	}

	if r.Outcome.ActionWasTaken() {
		if r.Defn.ConditionalCycles == 0 {
			return curated.Errorf("cpu: action taken on %s, which has no conditional cycle cost", r.Defn.Mnemonic)
		}
		if r.Cycles != r.Defn.Cycles+r.Defn.ConditionalCycles {
			return curated.Errorf("cpu: number of cycles wrong for %s (%d instead of %d)",
				r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles+r.Defn.ConditionalCycles)
		}
	} else {
		if r.Cycles != r.Defn.Cycles {
			return curated.Errorf("cpu: number of cycles wrong for %s (%d instead of %d)",
				r.Defn.Mnemonic, r.Cycles, r.Defn.Cycles)
		}
	}

	return nil
}
