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

// Mapper defines the operations of the memory mapped peripherals as accessed
// from the CPU. The CPU only calls the Mapper for addresses in the range
// IOOrigin to ROMOrigin-1 when reading and for all addresses above the work
// RAM when writing.
//
// Calls to the Mapper are synchronous and must not call back into the CPU.
//
// Addresses at and above ROMOrigin are read directly from the CPU's memory
// image. An implementation of Mapper that performs bank switching is
// responsible for keeping that image current.
type Mapper interface {
	Load(address uint16) uint8
	Write(address uint16, data uint8)
}

// Interrupt vectors. Each vector is a little-endian address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// Address routing.
const (
	// addresses below RAMTop are mirrors of the 2k work RAM
	RAMTop  = uint16(0x2000)
	RAMMask = uint16(0x07ff)

	// first address of the memory mapped peripherals
	IOOrigin = RAMTop

	// first address of program ROM
	ROMOrigin = uint16(0x8000)

	// the stack is always in page one
	StackPage = uint16(0x0100)
)

// NilMapper is a Mapper with no peripherals. Reads return zero and writes
// are ignored.
type NilMapper struct{}

// Load implements the Mapper interface.
func (NilMapper) Load(_ uint16) uint8 {
	return 0
}

// Write implements the Mapper interface.
func (NilMapper) Write(_ uint16, _ uint8) {}
