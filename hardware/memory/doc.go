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

// Package memory implements an NES style memory bus for use with the CPU.
// The Bus type satisfies the cpubus.Mapper interface and is the external
// collaborator through which the CPU reaches peripheral registers and
// PRG-RAM:
//
//	    CPU ---- cpu bus (cpubus.Mapper) ---- Bus
//	                                           |
//	                                           |---- I/O register file
//	                                           |---- PRG-RAM
//	                                           |
//	                                            -<-- PRG-ROM (CPU memory image)
//
// The arrow pointing away from the PRG-ROM indicates that the CPU can only
// read from program ROM. ROM lives in the CPU's memory image and writes to
// ROM space are counted but otherwise ignored.
//
// The I/O register file is not an emulation of the PPU or APU. Reads return
// the last value written. It exists so that programs which poll registers
// can be run, traced and compared.
//
// The areas of memory are described by the memorymap package.
package memory
