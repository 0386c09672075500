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

package instructions

// AddressingMode describes the method by which the operand of an instruction
// is located.
type AddressingMode int

// List of supported addressing modes. The order matches the numbering used
// by the opcode table.
const (
	Accumulator AddressingMode = iota
	Immediate
	ZeroPage         // zpg
	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
	Absolute         // abs
	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y
	Indirect         // ind
	IndexedIndirect  // (ind,X)
	IndirectIndexed  // (ind),Y
	Relative         // relative addressing is used for branch instructions
	Implied
)

var addressingModeBytes = [...]int{1, 2, 2, 2, 2, 3, 3, 3, 3, 2, 2, 2, 1}

// Bytes returns the number of bytes, including the opcode, of an
// instruction using the addressing mode.
func (m AddressingMode) Bytes() int {
	if m < Accumulator || m > Implied {
		return 1
	}
	return addressingModeBytes[m]
}

// IsIndexed returns true if the effective address of the addressing mode can
// cross a page boundary when the index register is added.
func (m AddressingMode) IsIndexed() bool {
	return m == AbsoluteIndexedX || m == AbsoluteIndexedY || m == IndirectIndexed
}

func (m AddressingMode) String() string {
	switch m {
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case Relative:
		return "Relative"
	case Implied:
		return "Implied"
	}
	return "unknown addressing mode"
}
