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

package cpubus

// Region identifies a coarse area of memory. Code discovered in one region is
// never compiled together with code in a different region.
type Region uint8

// List of fixed regions. ROM regions are numbered from RegionROM upwards,
// one for each bank window.
const (
	RegionRAM Region = iota
	RegionIO
	RegionROM
)

// DefaultBankSize is the size of a ROM bank window for the purposes of
// region allocation.
const DefaultBankSize = 0x2000

// RegionOf returns the region of the address. The bankSize argument divides
// ROM space into windows, each of which is a separate region. A bankSize of
// zero or less is treated as DefaultBankSize.
func RegionOf(address uint16, bankSize int) Region {
	switch {
	case address < RAMTop:
		return RegionRAM
	case address < ROMOrigin:
		return RegionIO
	}
	if bankSize <= 0 {
		bankSize = DefaultBankSize
	}
	return RegionROM + Region(int(address-ROMOrigin)/bankSize)
}
