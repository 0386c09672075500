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

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Bytes          int
	Cycles         int
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s details=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Operator.Details())
}

// IsBranch returns true if instruction is a conditional branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Operator.IsBranch()
}

// IsJump returns true if the instruction can alter the program counter by
// means other than falling through to the next instruction. This includes
// branches, subroutines, interrupts and the HLT instructions.
func (defn Definition) IsJump() bool {
	return defn.Operator.Details().Is(Jump)
}

// IsUndocumented returns true for opcodes that are not part of the
// documented instruction set.
func (defn Definition) IsUndocumented() bool {
	return defn.Operator.Details().Is(Undocumented)
}

// PageSensitive returns true if the instruction takes an additional cycle
// when the indexed effective address crosses a page boundary. Only
// instructions that read memory without writing it are affected.
func (defn Definition) PageSensitive() bool {
	d := defn.Operator.Details()
	return defn.AddressingMode.IsIndexed() && d.Is(Read) && !d.Is(Write)
}

// Changes returns the registers and flags written by the instruction. The
// operator's set is refined by the addressing mode: shifts and rotates in
// accumulator mode change the A register and any instruction that touches
// the stack changes the stack pointer.
func (defn Definition) Changes() Resources {
	r := defn.Operator.Changes()
	if defn.AddressingMode == Accumulator {
		r |= RegA
	}
	switch defn.Operator {
	case PHA, PHP, PLA, PLP, JSR, RTS, RTI, BRK:
		r |= RegS
	}
	return r
}

// Uses returns the registers and flags read by the instruction. As with
// Changes(), accumulator mode and the stack are accounted for, as are the
// index registers used by the addressing mode.
func (defn Definition) Uses() Resources {
	r := defn.Operator.Uses()
	switch defn.AddressingMode {
	case Accumulator:
		r |= RegA
	case ZeroPageIndexedX, AbsoluteIndexedX, IndexedIndirect:
		r |= RegX
	case ZeroPageIndexedY, AbsoluteIndexedY, IndirectIndexed:
		r |= RegY
	}
	switch defn.Operator {
	case PHA, PHP, PLA, PLP, JSR, RTS, RTI, BRK:
		r |= RegS
	}
	return r
}

// Definitions returns the table of instruction definitions, indexed by
// opcode. The returned slice should not be altered.
func Definitions() []*Definition {
	return table
}

// Lookup returns the definition for the opcode.
func Lookup(opcode uint8) *Definition {
	return table[opcode]
}

var table []*Definition

func init() {
	table = make([]*Definition, len(definitions))
	for i := range definitions {
		table[i] = &definitions[i]
	}
}

// definitions for all 256 opcodes. HLT opcodes stop the processor and have
// no cycle cost of their own.
var definitions = [256]Definition{
	{OpCode: 0x00, Operator: BRK, AddressingMode: Implied, Bytes: 1, Cycles: 7},
	{OpCode: 0x01, Operator: ORA, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0x02, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0x03, Operator: SLO, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 8},
	{OpCode: 0x04, Operator: DOP, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x05, Operator: ORA, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x06, Operator: ASL, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0x07, Operator: SLO, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0x08, Operator: PHP, AddressingMode: Implied, Bytes: 1, Cycles: 3},
	{OpCode: 0x09, Operator: ORA, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x0a, Operator: ASL, AddressingMode: Accumulator, Bytes: 1, Cycles: 2},
	{OpCode: 0x0b, Operator: AAC, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x0c, Operator: TOP, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x0d, Operator: ORA, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x0e, Operator: ASL, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0x0f, Operator: SLO, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0x10, Operator: BPL, AddressingMode: Relative, Bytes: 2, Cycles: 2},
	{OpCode: 0x11, Operator: ORA, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5},
	{OpCode: 0x12, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0x13, Operator: SLO, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 8},
	{OpCode: 0x14, Operator: DOP, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x15, Operator: ORA, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x16, Operator: ASL, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0x17, Operator: SLO, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0x18, Operator: CLC, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x19, Operator: ORA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0x1a, Operator: NOP, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x1b, Operator: SLO, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 7},
	{OpCode: 0x1c, Operator: TOP, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0x1d, Operator: ORA, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0x1e, Operator: ASL, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0x1f, Operator: SLO, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0x20, Operator: JSR, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0x21, Operator: AND, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0x22, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0x23, Operator: RLA, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 8},
	{OpCode: 0x24, Operator: BIT, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x25, Operator: AND, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x26, Operator: ROL, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0x27, Operator: RLA, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0x28, Operator: PLP, AddressingMode: Implied, Bytes: 1, Cycles: 4},
	{OpCode: 0x29, Operator: AND, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x2a, Operator: ROL, AddressingMode: Accumulator, Bytes: 1, Cycles: 2},
	{OpCode: 0x2b, Operator: AAC, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x2c, Operator: BIT, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x2d, Operator: AND, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x2e, Operator: ROL, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0x2f, Operator: RLA, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0x30, Operator: BMI, AddressingMode: Relative, Bytes: 2, Cycles: 2},
	{OpCode: 0x31, Operator: AND, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5},
	{OpCode: 0x32, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0x33, Operator: RLA, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 8},
	{OpCode: 0x34, Operator: DOP, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x35, Operator: AND, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x36, Operator: ROL, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0x37, Operator: RLA, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0x38, Operator: SEC, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x39, Operator: AND, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0x3a, Operator: NOP, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x3b, Operator: RLA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 7},
	{OpCode: 0x3c, Operator: TOP, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0x3d, Operator: AND, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0x3e, Operator: ROL, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0x3f, Operator: RLA, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0x40, Operator: RTI, AddressingMode: Implied, Bytes: 1, Cycles: 6},
	{OpCode: 0x41, Operator: EOR, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0x42, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0x43, Operator: SRE, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 8},
	{OpCode: 0x44, Operator: DOP, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x45, Operator: EOR, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x46, Operator: LSR, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0x47, Operator: SRE, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0x48, Operator: PHA, AddressingMode: Implied, Bytes: 1, Cycles: 3},
	{OpCode: 0x49, Operator: EOR, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x4a, Operator: LSR, AddressingMode: Accumulator, Bytes: 1, Cycles: 2},
	{OpCode: 0x4b, Operator: ASR, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x4c, Operator: JMP, AddressingMode: Absolute, Bytes: 3, Cycles: 3},
	{OpCode: 0x4d, Operator: EOR, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x4e, Operator: LSR, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0x4f, Operator: SRE, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0x50, Operator: BVC, AddressingMode: Relative, Bytes: 2, Cycles: 2},
	{OpCode: 0x51, Operator: EOR, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5},
	{OpCode: 0x52, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0x53, Operator: SRE, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 8},
	{OpCode: 0x54, Operator: DOP, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x55, Operator: EOR, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x56, Operator: LSR, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0x57, Operator: SRE, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0x58, Operator: CLI, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x59, Operator: EOR, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0x5a, Operator: NOP, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x5b, Operator: SRE, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 7},
	{OpCode: 0x5c, Operator: TOP, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0x5d, Operator: EOR, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0x5e, Operator: LSR, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0x5f, Operator: SRE, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0x60, Operator: RTS, AddressingMode: Implied, Bytes: 1, Cycles: 6},
	{OpCode: 0x61, Operator: ADC, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0x62, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0x63, Operator: RRA, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 8},
	{OpCode: 0x64, Operator: DOP, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x65, Operator: ADC, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x66, Operator: ROR, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0x67, Operator: RRA, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0x68, Operator: PLA, AddressingMode: Implied, Bytes: 1, Cycles: 4},
	{OpCode: 0x69, Operator: ADC, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x6a, Operator: ROR, AddressingMode: Accumulator, Bytes: 1, Cycles: 2},
	{OpCode: 0x6b, Operator: ARR, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x6c, Operator: JMP, AddressingMode: Indirect, Bytes: 3, Cycles: 5},
	{OpCode: 0x6d, Operator: ADC, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x6e, Operator: ROR, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0x6f, Operator: RRA, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0x70, Operator: BVS, AddressingMode: Relative, Bytes: 2, Cycles: 2},
	{OpCode: 0x71, Operator: ADC, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5},
	{OpCode: 0x72, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0x73, Operator: RRA, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 8},
	{OpCode: 0x74, Operator: DOP, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x75, Operator: ADC, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x76, Operator: ROR, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0x77, Operator: RRA, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0x78, Operator: SEI, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x79, Operator: ADC, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0x7a, Operator: NOP, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x7b, Operator: RRA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 7},
	{OpCode: 0x7c, Operator: TOP, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0x7d, Operator: ADC, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0x7e, Operator: ROR, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0x7f, Operator: RRA, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0x80, Operator: DOP, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x81, Operator: STA, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0x82, Operator: DOP, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x83, Operator: AAX, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0x84, Operator: STY, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x85, Operator: STA, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x86, Operator: STX, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x87, Operator: AAX, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0x88, Operator: DEY, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x89, Operator: DOP, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x8a, Operator: TXA, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x8b, Operator: XAA, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0x8c, Operator: STY, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x8d, Operator: STA, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x8e, Operator: STX, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x8f, Operator: AAX, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0x90, Operator: BCC, AddressingMode: Relative, Bytes: 2, Cycles: 2},
	{OpCode: 0x91, Operator: STA, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 6},
	{OpCode: 0x92, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0x93, Operator: AXA, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 6},
	{OpCode: 0x94, Operator: STY, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x95, Operator: STA, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0x96, Operator: STX, AddressingMode: ZeroPageIndexedY, Bytes: 2, Cycles: 4},
	{OpCode: 0x97, Operator: AAX, AddressingMode: ZeroPageIndexedY, Bytes: 2, Cycles: 4},
	{OpCode: 0x98, Operator: TYA, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x99, Operator: STA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 5},
	{OpCode: 0x9a, Operator: TXS, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0x9b, Operator: XAS, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 5},
	{OpCode: 0x9c, Operator: SYA, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 5},
	{OpCode: 0x9d, Operator: STA, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 5},
	{OpCode: 0x9e, Operator: SXA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 5},
	{OpCode: 0x9f, Operator: AXA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 5},
	{OpCode: 0xa0, Operator: LDY, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xa1, Operator: LDA, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0xa2, Operator: LDX, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xa3, Operator: LAX, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0xa4, Operator: LDY, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0xa5, Operator: LDA, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0xa6, Operator: LDX, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0xa7, Operator: LAX, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0xa8, Operator: TAY, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xa9, Operator: LDA, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xaa, Operator: TAX, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xab, Operator: ATX, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xac, Operator: LDY, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0xad, Operator: LDA, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0xae, Operator: LDX, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0xaf, Operator: LAX, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0xb0, Operator: BCS, AddressingMode: Relative, Bytes: 2, Cycles: 2},
	{OpCode: 0xb1, Operator: LDA, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5},
	{OpCode: 0xb2, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0xb3, Operator: LAX, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5},
	{OpCode: 0xb4, Operator: LDY, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0xb5, Operator: LDA, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0xb6, Operator: LDX, AddressingMode: ZeroPageIndexedY, Bytes: 2, Cycles: 4},
	{OpCode: 0xb7, Operator: LAX, AddressingMode: ZeroPageIndexedY, Bytes: 2, Cycles: 4},
	{OpCode: 0xb8, Operator: CLV, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xb9, Operator: LDA, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0xba, Operator: TSX, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xbb, Operator: LAR, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0xbc, Operator: LDY, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0xbd, Operator: LDA, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0xbe, Operator: LDX, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0xbf, Operator: LAX, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0xc0, Operator: CPY, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xc1, Operator: CMP, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0xc2, Operator: DOP, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xc3, Operator: DCP, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 8},
	{OpCode: 0xc4, Operator: CPY, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0xc5, Operator: CMP, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0xc6, Operator: DEC, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0xc7, Operator: DCP, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0xc8, Operator: INY, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xc9, Operator: CMP, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xca, Operator: DEX, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xcb, Operator: AXS, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xcc, Operator: CPY, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0xcd, Operator: CMP, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0xce, Operator: DEC, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0xcf, Operator: DCP, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0xd0, Operator: BNE, AddressingMode: Relative, Bytes: 2, Cycles: 2},
	{OpCode: 0xd1, Operator: CMP, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5},
	{OpCode: 0xd2, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0xd3, Operator: DCP, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 8},
	{OpCode: 0xd4, Operator: DOP, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0xd5, Operator: CMP, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0xd6, Operator: DEC, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0xd7, Operator: DCP, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0xd8, Operator: CLD, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xd9, Operator: CMP, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0xda, Operator: NOP, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xdb, Operator: DCP, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 7},
	{OpCode: 0xdc, Operator: TOP, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0xdd, Operator: CMP, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0xde, Operator: DEC, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0xdf, Operator: DCP, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0xe0, Operator: CPX, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xe1, Operator: SBC, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 6},
	{OpCode: 0xe2, Operator: DOP, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xe3, Operator: ISC, AddressingMode: IndexedIndirect, Bytes: 2, Cycles: 8},
	{OpCode: 0xe4, Operator: CPX, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0xe5, Operator: SBC, AddressingMode: ZeroPage, Bytes: 2, Cycles: 3},
	{OpCode: 0xe6, Operator: INC, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0xe7, Operator: ISC, AddressingMode: ZeroPage, Bytes: 2, Cycles: 5},
	{OpCode: 0xe8, Operator: INX, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xe9, Operator: SBC, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xea, Operator: NOP, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xeb, Operator: SBC, AddressingMode: Immediate, Bytes: 2, Cycles: 2},
	{OpCode: 0xec, Operator: CPX, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0xed, Operator: SBC, AddressingMode: Absolute, Bytes: 3, Cycles: 4},
	{OpCode: 0xee, Operator: INC, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0xef, Operator: ISC, AddressingMode: Absolute, Bytes: 3, Cycles: 6},
	{OpCode: 0xf0, Operator: BEQ, AddressingMode: Relative, Bytes: 2, Cycles: 2},
	{OpCode: 0xf1, Operator: SBC, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 5},
	{OpCode: 0xf2, Operator: HLT, AddressingMode: Implied, Bytes: 1, Cycles: 0},
	{OpCode: 0xf3, Operator: ISC, AddressingMode: IndirectIndexed, Bytes: 2, Cycles: 8},
	{OpCode: 0xf4, Operator: DOP, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0xf5, Operator: SBC, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 4},
	{OpCode: 0xf6, Operator: INC, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0xf7, Operator: ISC, AddressingMode: ZeroPageIndexedX, Bytes: 2, Cycles: 6},
	{OpCode: 0xf8, Operator: SED, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xf9, Operator: SBC, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 4},
	{OpCode: 0xfa, Operator: NOP, AddressingMode: Implied, Bytes: 1, Cycles: 2},
	{OpCode: 0xfb, Operator: ISC, AddressingMode: AbsoluteIndexedY, Bytes: 3, Cycles: 7},
	{OpCode: 0xfc, Operator: TOP, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0xfd, Operator: SBC, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 4},
	{OpCode: 0xfe, Operator: INC, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
	{OpCode: 0xff, Operator: ISC, AddressingMode: AbsoluteIndexedX, Bytes: 3, Cycles: 7},
}
