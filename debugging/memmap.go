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

package debugging

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/RustLoverTheCoder/gbemulator/hardware"
)

// DumpObjectGraph writes the reachable object graph of the emulated machine
// to w, in graphviz dot format. Useful for checking the ownership discipline
// of the machine: the GPU must appear exactly once, behind the MMU, and the
// cartridge may legitimately appear behind both the cartridge and boot
// roles.
func DumpObjectGraph(w io.Writer, gb *hardware.GameBoy) {
	memviz.Map(w, gb)
}
