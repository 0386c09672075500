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

package cpu

import (
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Operation is an instruction with its operand resolved, ready for Execute().
type Operation struct {
	Defn *instructions.Definition

	// the address of the instruction and the address of the instruction
	// that follows it
	Address uint16
	Next    uint16

	// the effective address of the operand. for branches and jumps this is
	// the target address
	Operand uint16

	// the value of the operand. only meaningful for the accumulator and
	// immediate addressing modes and for instructions that read memory
	Value uint8

	// cycles remaining in the budget of the caller once the cost of the
	// instruction has been charged. a deferred interrupt is only serviced
	// immediately after CLI, PLP or RTI if Remaining is greater than zero
	Remaining int
}

// EffectiveAddress resolves the effective address of an operand from the
// operand bytes of an instruction and the current state of the registers.
// The next argument is the address of the following instruction and is used
// by the relative addressing mode.
//
// Pointers used by the indirect modes are read directly from the memory
// image.
//
// The pageFault return value is true if an indexed address crossed a page
// boundary. It is the responsibility of the caller to decide if the page
// fault costs an additional cycle (see Definition.PageSensitive()).
func (mc *CPU) EffectiveAddress(r *Registers, mode instructions.AddressingMode, lo uint8, hi uint8, next uint16) (address uint16, pageFault bool, bug execution.Bug) {
	switch mode {
	case instructions.ZeroPage:
		address = uint16(lo)

	case instructions.ZeroPageIndexedX:
		// zero page indexing never leaves the zero page
		address = uint16(lo + r.X)

	case instructions.ZeroPageIndexedY:
		address = uint16(lo + r.Y)

	case instructions.Absolute:
		address = uint16(hi)<<8 | uint16(lo)

	case instructions.AbsoluteIndexedX:
		address = (uint16(hi)<<8 | uint16(lo)) + uint16(r.X)
		pageFault = uint16(lo)+uint16(r.X) > 0xff

	case instructions.AbsoluteIndexedY:
		address = (uint16(hi)<<8 | uint16(lo)) + uint16(r.Y)
		pageFault = uint16(lo)+uint16(r.Y) > 0xff

	case instructions.Indirect:
		// the pointer doesn't cross a page boundary. if the low byte of the
		// pointer is 0xff then the high byte of the target is read from the
		// start of the same page
		ptr := uint16(hi)<<8 | uint16(lo)
		if lo == 0xff {
			address = uint16(mc.Mem[ptr-0xff])<<8 | uint16(mc.Mem[ptr])
			bug = execution.JmpIndirectAddressingBug
		} else {
			address = mc.read16(ptr)
		}

	case instructions.IndexedIndirect:
		ptr := lo + r.X
		address = uint16(mc.Mem[uint8(ptr+1)])<<8 | uint16(mc.Mem[ptr])

	case instructions.IndirectIndexed:
		base := uint16(mc.Mem[uint8(lo+1)])<<8 | uint16(mc.Mem[lo])
		address = base + uint16(r.Y)
		pageFault = (base&0x00ff)+uint16(r.Y) > 0xff

	case instructions.Relative:
		address = next + uint16(int8(lo))
	}

	return address, pageFault, bug
}

// OperandValue returns the value of the operand for the instruction. The
// value is only read from memory if the instruction reads memory.
func (mc *CPU) OperandValue(r *Registers, defn *instructions.Definition, address uint16, lo uint8) uint8 {
	switch defn.AddressingMode {
	case instructions.Accumulator:
		return r.A
	case instructions.Immediate:
		return lo
	case instructions.Implied, instructions.Relative, instructions.Indirect:
		return 0
	}

	if defn.Operator.Details().Is(instructions.Read) {
		return mc.Load(address)
	}
	return 0
}
