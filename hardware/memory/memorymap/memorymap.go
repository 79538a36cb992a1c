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

package memorymap

// Area represents the different areas of the address space.
type Area int

func (a Area) String() string {
	switch a {
	case Boot:
		return "Boot"
	case Cartridge:
		return "Cartridge"
	case VRAM:
		return "VRAM"
	case ExternalRAM:
		return "ExternalRAM"
	case WorkingRAM:
		return "WorkingRAM"
	case EchoRAM:
		return "EchoRAM"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HighRAM:
		return "HighRAM"
	case InterruptEnable:
		return "InterruptEnable"
	}

	return "undefined"
}

// The different memory areas in the DMG address space. The Boot area is the
// low 256 bytes of the Cartridge area; whether a read in that range reaches
// the boot ROM or the cartridge depends on the state of the boot latch, which
// is owned by the MMU and not by this package.
const (
	Undefined Area = iota
	Boot
	Cartridge
	VRAM
	ExternalRAM
	WorkingRAM
	EchoRAM
	OAM
	Unusable
	IO
	HighRAM
	InterruptEnable
)

// The origin and memory top for each area of memory. MapAddress() classifies
// an address into the area whose [origin, memtop] range contains it.
//
// Implementations of the different memory areas may need to drag the address
// down into the range of an array. This is done with (address - origin).
const (
	OriginBoot    = uint16(0x0000)
	MemtopBoot    = uint16(0x00ff)
	OriginCart    = uint16(0x0000)
	MemtopCart    = uint16(0x7fff)
	OriginVRAM    = uint16(0x8000)
	MemtopVRAM    = uint16(0x9fff)
	OriginExtRAM  = uint16(0xa000)
	MemtopExtRAM  = uint16(0xbfff)
	OriginWRAM    = uint16(0xc000)
	MemtopWRAM    = uint16(0xdfff)
	OriginEcho    = uint16(0xe000)
	MemtopEcho    = uint16(0xfdfe)
	OriginOAM     = uint16(0xfe00)
	MemtopOAM     = uint16(0xfe9e)
	OriginUnused  = uint16(0xfea0)
	MemtopUnused  = uint16(0xfefe)
	OriginIO      = uint16(0xff00)
	MemtopIO      = uint16(0xff7e)
	OriginHighRAM = uint16(0xff80)
	MemtopHighRAM = uint16(0xfffd)
)

// Memtop is the top most address in the DMG address space. It is also the
// address of the interrupt enable register.
const Memtop = uint16(0xffff)

// Addresses in the IO area with modelled side effects. Reads and writes to
// these addresses are tapped by the MMU rather than reaching the generic IO
// register block. The interrupt flags register is routed to its own backing
// field in the MMU; the interrupt enable register sits alone at the very top
// of the address space.
const (
	Joypad          = uint16(0xff00)
	InterruptFlags  = uint16(0xff0f)
	LCDC            = uint16(0xff40)
	ScrollY         = uint16(0xff42)
	ScrollX         = uint16(0xff43)
	Scanline        = uint16(0xff44)
	DMA             = uint16(0xff46)
	BGPalette       = uint16(0xff47)
	BootROMDisable  = uint16(0xff50)
	InterruptEnReg  = uint16(0xffff)
	InterruptVector = uint16(0x0040)
)

// MapAddress classifies an address into the memory area that owns it. Unlike
// mirror-heavy consoles there is no address translation on the DMG; the areas
// partition the space save for five deliberate one-byte holes (0xfdff,
// 0xfe9f, 0xfeff, 0xff7f, 0xfffe) which map to the Undefined area.
//
// The boot overlay is not decided here. Addresses in the low 256 bytes map to
// the Cartridge area; the MMU redirects them to the boot ROM while the boot
// latch is unset.
func MapAddress(address uint16) Area {
	switch {
	case address <= MemtopCart:
		return Cartridge
	case address <= MemtopVRAM:
		return VRAM
	case address <= MemtopExtRAM:
		return ExternalRAM
	case address <= MemtopWRAM:
		return WorkingRAM
	case address <= MemtopEcho:
		return EchoRAM
	case address >= OriginOAM && address <= MemtopOAM:
		return OAM
	case address >= OriginUnused && address <= MemtopUnused:
		return Unusable
	case address == InterruptFlags:
		return IO
	case address >= OriginIO && address <= MemtopIO:
		return IO
	case address >= OriginHighRAM && address <= MemtopHighRAM:
		return HighRAM
	case address == InterruptEnReg:
		return InterruptEnable
	}

	return Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	return MapAddress(address) == area
}
