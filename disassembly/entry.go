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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Bytes   []uint8
	Defn    *instructions.Definition

	// operand formatted according to the addressing mode. empty for the
	// implied addressing mode
	Operand string

	// the address control passes to for branches, absolute JMP and JSR and
	// for indirect JMP. HasTarget is false for all other instructions
	Target    uint16
	HasTarget bool
}

// Disassemble the instruction at the address.
func Disassemble(mem *[0x10000]uint8, address uint16) Entry {
	defn := instructions.Lookup(mem[address])

	e := Entry{
		Address: address,
		Bytes:   make([]uint8, defn.Bytes),
		Defn:    defn,
	}
	for i := range e.Bytes {
		e.Bytes[i] = mem[address+uint16(i)]
	}

	var lo, hi uint8
	if defn.Bytes > 1 {
		lo = e.Bytes[1]
	}
	if defn.Bytes > 2 {
		hi = e.Bytes[2]
	}
	word := uint16(hi)<<8 | uint16(lo)

	switch defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		e.Operand = "A"
	case instructions.Immediate:
		e.Operand = fmt.Sprintf("#$%02X", lo)
	case instructions.ZeroPage:
		e.Operand = fmt.Sprintf("$%02X", lo)
	case instructions.ZeroPageIndexedX:
		e.Operand = fmt.Sprintf("$%02X, X", lo)
	case instructions.ZeroPageIndexedY:
		e.Operand = fmt.Sprintf("$%02X, Y", lo)
	case instructions.Absolute:
		e.Operand = fmt.Sprintf("$%04X", word)
		if defn.IsJump() {
			e.Target = word
			e.HasTarget = true
		}
	case instructions.AbsoluteIndexedX:
		e.Operand = fmt.Sprintf("$%04X, X", word)
	case instructions.AbsoluteIndexedY:
		e.Operand = fmt.Sprintf("$%04X, Y", word)
	case instructions.Indirect:
		e.Operand = fmt.Sprintf("($%04X)", word)

		// the high byte of the target is read from the same page as the low
		// byte
		e.Target = uint16(mem[word&0xff00|uint16(lo+1)])<<8 | uint16(mem[word])
		e.HasTarget = true
	case instructions.IndexedIndirect:
		e.Operand = fmt.Sprintf("($%02X, X)", lo)
	case instructions.IndirectIndexed:
		e.Operand = fmt.Sprintf("($%02X), Y", lo)
	case instructions.Relative:
		e.Target = e.Next() + uint16(int8(lo))
		e.HasTarget = true
		e.Operand = fmt.Sprintf("$%04X", e.Target)
	}

	return e
}

// Next returns the address of the instruction that follows the entry.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytes))
}

// Mnemonic returns the name of the operator.
func (e Entry) Mnemonic() string {
	return e.Defn.Operator.String()
}

// String returns the entry in the standard disassembly format.
func (e Entry) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("$%04X: [ ", e.Address))
	for _, b := range e.Bytes {
		s.WriteString(fmt.Sprintf("$%02X ", b))
	}
	s.WriteString("]")
	s.WriteString(strings.Repeat(" ", 3+(3-len(e.Bytes))*4))

	s.WriteString(e.Mnemonic())
	if e.Operand != "" {
		s.WriteString(" ")
		s.WriteString(e.Operand)
	}

	if e.Defn.AddressingMode == instructions.Indirect {
		s.WriteString(fmt.Sprintf(" ; $%04X", e.Target))
	}

	return s.String()
}
