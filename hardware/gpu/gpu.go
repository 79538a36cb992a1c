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

package gpu

import (
	"fmt"

	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/memorymap"
)

// size of GPU owned memory. OAM is 40 sprite entries of 4 bytes each.
const (
	vramSize = 0x2000
	oamSize  = 160
)

// GPU is the register and memory surface of the video hardware. It implements
// the bus.VideoBus interface.
//
// The pixel pipeline and scanline state machine do not live here; whatever
// drives them advances the CurrentScanline field through SetScanline(). As
// far as the memory system is concerned the GPU is nothing more than a byte
// addressable store with a handful of registers.
type GPU struct {
	vram [vramSize]uint8
	oam  [oamSize]uint8

	lcdc     uint8
	scrollX  uint8
	scrollY  uint8
	scanline uint8
	bgpal    uint8
}

// NewGPU is the preferred method of initialisation for the GPU type. All
// memory and registers are zeroed.
func NewGPU() *GPU {
	return &GPU{}
}

func (g *GPU) String() string {
	return fmt.Sprintf("LCDC=%#02x SCX=%#02x SCY=%#02x LY=%#02x BGP=%#02x",
		g.lcdc, g.scrollX, g.scrollY, g.scanline, g.bgpal)
}

// ReadVRAM returns the byte at the absolute bus address.
func (g *GPU) ReadVRAM(address uint16) uint8 {
	return g.vram[address-memorymap.OriginVRAM]
}

// WriteVRAM stores the byte at the absolute bus address.
func (g *GPU) WriteVRAM(address uint16, data uint8) {
	g.vram[address-memorymap.OriginVRAM] = data
}

// ReadOAM returns the byte at the absolute bus address.
func (g *GPU) ReadOAM(address uint16) uint8 {
	return g.oam[address-memorymap.OriginOAM]
}

// WriteOAM stores the byte at the absolute bus address. This is the only
// write path into OAM; the DMA routine in the memory package uses it for
// every byte it copies.
func (g *GPU) WriteOAM(address uint16, data uint8) {
	g.oam[address-memorymap.OriginOAM] = data
}

// WriteLCDC sets the LCD control register.
func (g *GPU) WriteLCDC(data uint8) {
	g.lcdc = data
}

// SetBGPalette sets the background palette register.
func (g *GPU) SetBGPalette(data uint8) {
	g.bgpal = data
}

// SetScrollX sets the background scroll-x register.
func (g *GPU) SetScrollX(data uint8) {
	g.scrollX = data
}

// SetScrollY sets the background scroll-y register.
func (g *GPU) SetScrollY(data uint8) {
	g.scrollY = data
}

// SetScanline is for whatever drives the scanline state machine, which is
// outside the scope of this type.
func (g *GPU) SetScanline(data uint8) {
	g.scanline = data
}

// LCDC returns the LCD control register.
func (g *GPU) LCDC() uint8 {
	return g.lcdc
}

// ScrollX returns the background scroll-x register.
func (g *GPU) ScrollX() uint8 {
	return g.scrollX
}

// ScrollY returns the background scroll-y register.
func (g *GPU) ScrollY() uint8 {
	return g.scrollY
}

// Scanline returns the current scanline register.
func (g *GPU) Scanline() uint8 {
	return g.scanline
}

// BGPalette returns the background palette register.
func (g *GPU) BGPalette() uint8 {
	return g.bgpal
}
