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

package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/memory/memorymap"
)

// the I/O register file covers primary addresses from the PPU origin to the
// end of the expansion area
const ioSize = int(memorymap.MemtopExpansion-memorymap.OriginPPU) + 1

const prgRAMSize = int(memorymap.MemtopPRGRAM-memorymap.OriginPRGRAM) + 1

// Bus is an NES style implementation of the cpubus.Mapper interface.
type Bus struct {
	// the CPU's memory image. work RAM and PRG-ROM live here
	mem *[0x10000]uint8

	io     [ioSize]uint8
	prgRAM [prgRAMSize]uint8

	// number of accesses (reads and writes) to each primary address
	accesses map[uint16]int
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{
		accesses: make(map[uint16]int),
	}
}

// Plumb the CPU's memory image into the bus. Until the image is plumbed in,
// reads of work RAM and PRG-ROM return zero.
func (bus *Bus) Plumb(mem *[0x10000]uint8) {
	bus.mem = mem
}

// Clear the register file, PRG-RAM and the access counts.
func (bus *Bus) Clear() {
	bus.io = [ioSize]uint8{}
	bus.prgRAM = [prgRAMSize]uint8{}
	bus.accesses = make(map[uint16]int)
}

// Load implements the cpubus.Mapper interface.
func (bus *Bus) Load(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.PPU, memorymap.APU, memorymap.Expansion:
		bus.accesses[ma]++
		return bus.io[ma-memorymap.OriginPPU]
	case memorymap.PRGRAM:
		return bus.prgRAM[ma-memorymap.OriginPRGRAM]
	}

	// work RAM and PRG-ROM are not normally reached through the bus but we
	// satisfy the read for the sake of tools that use the bus directly
	if bus.mem == nil {
		return 0
	}
	return bus.mem[ma]
}

// Write implements the cpubus.Mapper interface.
func (bus *Bus) Write(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.PPU, memorymap.APU, memorymap.Expansion:
		bus.accesses[ma]++
		bus.io[ma-memorymap.OriginPPU] = data
	case memorymap.PRGRAM:
		bus.prgRAM[ma-memorymap.OriginPRGRAM] = data
	case memorymap.RAM:
		if bus.mem != nil {
			bus.mem[ma] = data
		}
	case memorymap.PRGROM:
		bus.accesses[ma]++
	}
}

// AccessCount returns the number of times the primary address of the
// argument has been accessed through the register file (or written to, in the
// case of PRG-ROM).
func (bus *Bus) AccessCount(address uint16) int {
	ma, _ := memorymap.MapAddress(address)
	return bus.accesses[ma]
}

// PRGRAM returns a copy of the PRG-RAM.
func (bus *Bus) PRGRAM() []uint8 {
	d := make([]uint8, prgRAMSize)
	copy(d, bus.prgRAM[:])
	return d
}

// String returns a summary of the register file accesses, ordered by
// address. Named registers are labelled.
func (bus *Bus) String() string {
	addrs := make([]int, 0, len(bus.accesses))
	for a := range bus.accesses {
		addrs = append(addrs, int(a))
	}
	sort.Ints(addrs)

	s := strings.Builder{}
	for _, a := range addrs {
		ma := uint16(a)
		_, area := memorymap.MapAddress(ma)
		label := area.String()
		if r, ok := cpubus.RegisterName(ma); ok {
			label = string(r)
		}
		s.WriteString(fmt.Sprintf("$%04x %-10s %d\n", ma, label, bus.accesses[ma]))
	}
	return s.String()
}
