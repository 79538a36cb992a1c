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

package gpu_test

import (
	"testing"

	"github.com/RustLoverTheCoder/gbemulator/hardware/gpu"
	"github.com/RustLoverTheCoder/gbemulator/test"
)

func TestVRAM(t *testing.T) {
	g := gpu.NewGPU()

	// zero initialised at construction
	test.Equate(t, g.ReadVRAM(0x8000), 0x00)
	test.Equate(t, g.ReadVRAM(0x9fff), 0x00)

	g.WriteVRAM(0x8000, 0x12)
	g.WriteVRAM(0x9fff, 0x34)
	test.Equate(t, g.ReadVRAM(0x8000), 0x12)
	test.Equate(t, g.ReadVRAM(0x9fff), 0x34)
}

func TestOAM(t *testing.T) {
	g := gpu.NewGPU()

	g.WriteOAM(0xfe00, 0x56)
	g.WriteOAM(0xfe9f, 0x78)
	test.Equate(t, g.ReadOAM(0xfe00), 0x56)
	test.Equate(t, g.ReadOAM(0xfe9f), 0x78)
}

func TestRegisters(t *testing.T) {
	g := gpu.NewGPU()

	g.WriteLCDC(0x91)
	g.SetScrollX(0x12)
	g.SetScrollY(0x34)
	g.SetBGPalette(0xfc)
	g.SetScanline(0x90)

	test.Equate(t, g.LCDC(), 0x91)
	test.Equate(t, g.ScrollX(), 0x12)
	test.Equate(t, g.ScrollY(), 0x34)
	test.Equate(t, g.BGPalette(), 0xfc)
	test.Equate(t, g.Scanline(), 0x90)
}
