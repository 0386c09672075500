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

// Package cpu emulates the NES variant of the 6502 microprocessor. The
// variant has no decimal mode arithmetic but otherwise executes the full
// instruction set, including the undocumented opcodes.
//
// Like all 8-bit processors of the era, the 6502 executes instructions
// according to the single byte value read from an address pointed to by the
// program counter. This single byte is the opcode and is looked up in the
// instruction table (see the instructions package).
//
// The CPU type requires an implementation of the cpubus.Mapper interface as
// the sole argument to NewCPU(). The Mapper is the route to memory mapped
// peripherals. Work RAM and program ROM are held in the CPU's own memory
// image.
//
//	mc := cpu.NewCPU(mapper)
//	mc.Reset()
//	... load program into mc.Mem ...
//	mc.RequestIRQ(cpu.IRQReset)
//
//	for !mc.Halted {
//		mc.Interpret(29781)
//	}
//
// Interpret() is the reference implementation of the instruction set. It
// executes instructions until at least the requested number of cycles have
// been consumed and returns the number of cycles actually consumed.
//
// The semantics of each instruction are implemented by Execute(). The
// function is also used by the compiled units of the recompiler package,
// which is why it operates on a Registers value supplied by the caller
// rather than on the registers of the CPU directly.
//
// The LastResult field can be probed for information about the last
// instruction executed by the interpreter. See the execution package.
package cpu
