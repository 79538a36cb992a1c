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
	"github.com/RustLoverTheCoder/gbemulator/curated"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/bus"
	"github.com/RustLoverTheCoder/gbemulator/hardware/memory/memorymap"
	"github.com/RustLoverTheCoder/gbemulator/logger"
)

// number of bytes copied by a DMA transfer.
const dmaLength = uint16(160)

// idle pattern returned for every joypad read until input is modelled.
const joypadIdle = uint8(0xff)

// MMU is the single authority for every byte access in the address space. It
// owns the RAM backed areas, delegates cartridge and GPU owned addresses to
// the attached collaborators, and models the hardware side effects that are
// triggered purely by the address and value of a write: the boot ROM overlay
// latch and the DMA transfer into OAM.
//
// MMU implements the bus.CPUBus interface.
type MMU struct {
	cart bus.CartridgeBus
	gpu  bus.VideoBus
	boot bus.CartridgeBus

	extRAM  *RAM
	wram    *RAM
	echoRAM *RAM
	hram    *RAM
	io      *RAM

	interruptEnable uint8
	interruptFlags  uint8

	// one-shot latch. false at construction and permanently true after any
	// write to the boot ROM disable register. never reverts for the lifetime
	// of the session.
	booted bool
}

// NewMMU is the preferred method of initialisation for the MMU type. The
// cartridge is read-only and may be shared; the MMU must be given the only
// mutable reference to the GPU. The boot store may be nil, in which case the
// session must begin in the booted state (see SetBooted) or the first read of
// a low address will terminate it.
func NewMMU(cart bus.CartridgeBus, gpu bus.VideoBus, boot bus.CartridgeBus) *MMU {
	return &MMU{
		cart:    cart,
		gpu:     gpu,
		boot:    boot,
		extRAM:  newRAM("ExternalRAM", memorymap.OriginExtRAM, memorymap.MemtopExtRAM),
		wram:    newRAM("WorkingRAM", memorymap.OriginWRAM, memorymap.MemtopWRAM),
		echoRAM: newRAM("EchoRAM", memorymap.OriginEcho, memorymap.MemtopEcho),
		hram:    newRAM("HighRAM", memorymap.OriginHighRAM, memorymap.MemtopHighRAM),
		io:      newRAM("IO", memorymap.OriginIO, memorymap.MemtopIO),
	}
}

// Booted returns the state of the boot latch.
func (m *MMU) Booted() bool {
	return m.booted
}

// SetBooted sets the boot latch, skipping the boot ROM overlay. Used when
// starting a session without a boot ROM. The latch cannot be unset.
func (m *MMU) SetBooted() {
	m.booted = true
}

// Read returns the byte at address, from whichever store owns the address for
// reading. Unusable and unmapped addresses read as 0.
//
// Reading an address in the boot overlay range while the boot latch is unset
// and no boot store is attached is a fatal configuration error; there is no
// valid byte to return and the function panics.
func (m *MMU) Read(address uint16) uint8 {
	if address == memorymap.InterruptFlags {
		return m.interruptFlags
	}

	switch memorymap.MapAddress(address) {
	case memorymap.Cartridge:
		if address <= memorymap.MemtopBoot && !m.booted {
			if m.boot == nil {
				panic(curated.Errorf("mmu: read of %#04x before boot with no boot ROM attached", address))
			}
			return m.boot.Read(address)
		}
		return m.cart.Read(address)

	case memorymap.VRAM:
		return m.gpu.ReadVRAM(address)

	case memorymap.ExternalRAM:
		return m.extRAM.Read(address)

	case memorymap.WorkingRAM:
		return m.wram.Read(address)

	case memorymap.EchoRAM:
		return m.echoRAM.Read(address)

	case memorymap.OAM:
		return m.gpu.ReadOAM(address)

	case memorymap.Unusable:
		return 0

	case memorymap.IO:
		return m.readIO(address)

	case memorymap.HighRAM:
		return m.hram.Read(address)

	case memorymap.InterruptEnable:
		return m.interruptEnable
	}

	return 0
}

// Write stores the byte at address, through whichever store owns the address
// for writing, running the side effect taps on the way. Writes to read-only,
// unusable and unmapped addresses are dropped without signalling an error.
func (m *MMU) Write(address uint16, data uint8) {
	if address == memorymap.BootROMDisable {
		if !m.booted {
			logger.Log(logger.Allow, "mmu", "boot ROM disabled")
		}
		m.booted = true
		return
	}

	if address == memorymap.InterruptFlags {
		m.interruptFlags = data
		return
	}

	switch memorymap.MapAddress(address) {
	case memorymap.VRAM:
		m.gpu.WriteVRAM(address, data)

	case memorymap.ExternalRAM:
		m.extRAM.Write(address, data)

	case memorymap.WorkingRAM:
		m.wram.Write(address, data)

	case memorymap.EchoRAM:
		m.echoRAM.Write(address, data)

	case memorymap.OAM:
		m.gpu.WriteOAM(address, data)

	case memorymap.IO:
		m.writeIO(address, data)

	case memorymap.HighRAM:
		m.hram.Write(address, data)

	case memorymap.InterruptEnable:
		m.interruptEnable = data
	}
}

// readIO handles the IO register block. The named taps bypass the generic
// register block entirely and answer from live GPU state (or, for the joypad,
// with the idle pattern).
func (m *MMU) readIO(address uint16) uint8 {
	switch address {
	case memorymap.Joypad:
		return joypadIdle
	case memorymap.LCDC:
		return m.gpu.LCDC()
	case memorymap.ScrollY:
		return m.gpu.ScrollY()
	case memorymap.ScrollX:
		return m.gpu.ScrollX()
	case memorymap.Scanline:
		return m.gpu.Scanline()
	}

	return m.io.Read(address)
}

// writeIO handles the IO register block. The named taps forward to the GPU or
// trigger the DMA transfer. The raw byte is stored in the generic register
// block in every case, for forward compatibility with unmodelled registers.
func (m *MMU) writeIO(address uint16, data uint8) {
	switch address {
	case memorymap.LCDC:
		m.gpu.WriteLCDC(data)
	case memorymap.ScrollY:
		m.gpu.SetScrollY(data)
	case memorymap.ScrollX:
		m.gpu.SetScrollX(data)
	case memorymap.BGPalette:
		m.gpu.SetBGPalette(data)
	case memorymap.DMA:
		m.dmaTransfer(data)
	}

	m.io.Write(address, data)
}

// dmaTransfer copies 160 bytes into OAM, starting at the source address given
// by the written value multiplied by 256. Every source byte goes through the
// generic Read() path, so the source can be any mapped region, and every
// destination byte goes through the GPU's OAM write path, never a raw store.
//
// The transfer is instantaneous. The ~160 machine cycle stall of the real
// hardware is not charged.
func (m *MMU) dmaTransfer(data uint8) {
	source := uint16(data) << 8
	logger.Logf(logger.Allow, "mmu", "dma transfer from %#04x", source)
	for offset := uint16(0); offset < dmaLength; offset++ {
		m.gpu.WriteOAM(memorymap.OriginOAM+offset, m.Read(source+offset))
	}
}

// ReadWord returns the 16bit value formed from the byte at address (the high
// byte) and the byte at address+1 (the low byte). The byte order mirrors
// WriteWord so that a write followed by a read of the same address
// round-trips.
func (m *MMU) ReadWord(address uint16) uint16 {
	return uint16(m.Read(address))<<8 | uint16(m.Read(address+1))
}

// WriteWord stores a 16bit value as two sequential byte writes: the high byte
// at address first, the low byte at address+1 second. Each byte write passes
// through the side effect taps independently, so the ordering is observable
// whenever a tap address falls inside the word's span and must not change.
func (m *MMU) WriteWord(address uint16, data uint16) {
	m.Write(address, uint8(data>>8))
	m.Write(address+1, uint8(data))
}

// ReadOpcode fetches and decodes the opcode at address. If the byte at
// address is the extension marker the following byte selects from the
// extended opcode space. Decoding never fails.
func (m *MMU) ReadOpcode(address uint16) bus.Opcode {
	value := m.Read(address)
	if value == bus.ExtensionMarker {
		return bus.Extend(m.Read(address + 1))
	}
	return bus.Plain(value)
}
