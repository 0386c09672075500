// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU/IO"
	case Expansion:
		return "Expansion"
	case PRGRAM:
		return "PRG-RAM"
	case PRGROM:
		return "PRG-ROM"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	Expansion
	PRGRAM
	PRGROM
)

// The origin and memory top for each area of memory.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x1fff)
	OriginPPU       = uint16(0x2000)
	MemtopPPU       = uint16(0x3fff)
	OriginAPU       = uint16(0x4000)
	MemtopAPU       = uint16(0x401f)
	OriginExpansion = uint16(0x4020)
	MemtopExpansion = uint16(0x5fff)
	OriginPRGRAM    = uint16(0x6000)
	MemtopPRGRAM    = uint16(0x7fff)
	OriginPRGROM    = uint16(0x8000)
	MemtopPRGROM    = uint16(0xffff)
)

// Work RAM and the PPU registers are mirrored through their areas. The masks
// keep only the bits that select a primary address.
const (
	MaskRAM = uint16(0x07ff)
	MaskPPU = uint16(0x0007)
)

// Memtop is the top most address of memory.
const Memtop = MemtopPRGROM

// MapAddress translates the address argument from mirror space to primary
// space. Addresses in areas without mirrors are returned unchanged.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return OriginPPU | (address & MaskPPU), PPU
	case address <= MemtopAPU:
		return address, APU
	case address <= MemtopExpansion:
		return address, Expansion
	case address <= MemtopPRGRAM:
		return address, PRGRAM
	}
	return address, PRGROM
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
