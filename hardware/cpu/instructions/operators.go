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

// Operator is the kind of instruction, independent of addressing mode.
type Operator int

// List of operators. Undocumented operators are included and use the
// commonly used names for them.
const (
	AAC Operator = iota
	AAX
	ADC
	AND
	ARR
	ASL
	ASR
	ATX
	AXA
	AXS
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DCP
	DEC
	DEX
	DEY
	DOP
	EOR
	HLT
	INC
	INX
	INY
	ISC
	JMP
	JSR
	LAR
	LAX
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	RLA
	ROL
	ROR
	RRA
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	SLO
	SRE
	STA
	STX
	STY
	SXA
	SYA
	TAX
	TAY
	TOP
	TSX
	TXA
	TXS
	TYA
	XAA
	XAS

	// NumOperators is the number of distinct operators
	NumOperators
)

// operatorInfo is the capability and def/use information for an operator.
type operatorInfo struct {
	mnemonic string
	details  Details
	changes  Resources
	uses     Resources
}

// shorthand for combinations of registers and flags
const (
	rAX  = RegA | RegX
	rAXS = RegA | RegX | RegS

	fZN     = FlagZ | FlagN
	fCZN    = FlagC | FlagZ | FlagN
	fZNV    = FlagZ | FlagN | FlagV
	fCZNV   = FlagC | FlagZ | FlagN | FlagV
	fBI     = FlagB | FlagI
	fCZNVDI = FlagC | FlagZ | FlagN | FlagV | FlagD | FlagI
	fAll    = FlagC | FlagZ | FlagI | FlagD | FlagB | FlagV | FlagN
)

// the table is indexed by Operator. the changes and uses fields are the
// registers and flags, in that order, as given by the chip documentation.
// accumulator shifts and stack usage are refined by the Definition type
var operators = [NumOperators]operatorInfo{
	AAC: {"AAC", Undocumented, fCZN, RegA},
	AAX: {"AAX", UndocumentedWrite, 0, rAX},
	ADC: {"ADC", Read, RegA | fCZNV, RegA | FlagC},
	AND: {"AND", Read, RegA | fZN, RegA},
	ARR: {"ARR", Undocumented, RegA | fCZNV, RegA | FlagC},
	ASL: {"ASL", ReadWrite, fCZN, 0},
	ASR: {"ASR", Undocumented, RegA | fCZN, RegA},
	ATX: {"ATX", Undocumented, rAX | fZN, rAX},
	AXA: {"AXA", UndocumentedWrite, 0, rAX},
	AXS: {"AXS", Undocumented, RegX | fCZN, rAX},
	BCC: {"BCC", Jump, 0, FlagC},
	BCS: {"BCS", Jump, 0, FlagC},
	BEQ: {"BEQ", Jump, 0, FlagZ},
	BIT: {"BIT", Read, fZNV, RegA},
	BMI: {"BMI", Jump, 0, FlagN},
	BNE: {"BNE", Jump, 0, FlagZ},
	BPL: {"BPL", Jump, 0, FlagN},
	BRK: {"BRK", JumpStack, fBI, fCZNVDI},
	BVC: {"BVC", Jump, 0, FlagV},
	BVS: {"BVS", Jump, 0, FlagV},
	CLC: {"CLC", 0, FlagC, 0},
	CLD: {"CLD", 0, FlagD, 0},
	CLI: {"CLI", 0, FlagI, 0},
	CLV: {"CLV", 0, FlagV, 0},
	CMP: {"CMP", Read, fCZN, RegA},
	CPX: {"CPX", Read, fCZN, RegX},
	CPY: {"CPY", Read, fCZN, RegY},
	DCP: {"DCP", UndocumentedModify, fCZN, RegA},
	DEC: {"DEC", ReadWrite, fZN, 0},
	DEX: {"DEX", ReadWrite, RegX | fZN, RegX},
	DEY: {"DEY", ReadWrite, RegY | fZN, RegY},
	DOP: {"DOP", UndocumentedRead, 0, 0},
	EOR: {"EOR", Read, RegA | fZN, RegA},
	HLT: {"HLT", UndocumentedJump, 0, 0},
	INC: {"INC", ReadWrite, fZN, 0},
	INX: {"INX", ReadWrite, RegX | fZN, RegX},
	INY: {"INY", ReadWrite, RegY | fZN, RegY},
	ISC: {"ISC", UndocumentedModify, RegA | fCZNV, RegA | FlagC},
	JMP: {"JMP", Jump, 0, 0},
	JSR: {"JSR", JumpStack, 0, 0},
	LAR: {"LAR", UndocumentedRead, rAXS | fZN, RegS},
	LAX: {"LAX", UndocumentedRead, rAX | fZN, 0},
	LDA: {"LDA", Read, RegA | fZN, 0},
	LDX: {"LDX", Read, RegX | fZN, 0},
	LDY: {"LDY", Read, RegY | fZN, 0},
	LSR: {"LSR", ReadWrite, fCZN, 0},
	NOP: {"NOP", 0, 0, 0},
	ORA: {"ORA", Read, RegA | fZN, RegA},
	PHA: {"PHA", Stack, 0, RegA},
	PHP: {"PHP", Stack, 0, fAll},
	PLA: {"PLA", Stack, RegA | fZN, 0},
	PLP: {"PLP", Stack, fAll, 0},
	RLA: {"RLA", UndocumentedModify, RegA | fCZN, RegA | FlagC},
	ROL: {"ROL", ReadWrite, fCZN, FlagC},
	ROR: {"ROR", ReadWrite, fCZN, FlagC},
	RRA: {"RRA", UndocumentedModify, RegA | fCZNV, RegA | FlagC},
	RTI: {"RTI", JumpStack, fAll, 0},
	RTS: {"RTS", JumpStack, 0, 0},
	SBC: {"SBC", Read, RegA | fCZNV, RegA | FlagC},
	SEC: {"SEC", 0, FlagC, 0},
	SED: {"SED", 0, FlagD, 0},
	SEI: {"SEI", 0, FlagI, 0},
	SLO: {"SLO", UndocumentedModify, RegA | fCZN, RegA},
	SRE: {"SRE", UndocumentedModify, RegA | fCZN, RegA},
	STA: {"STA", Write, 0, RegA},
	STX: {"STX", Write, 0, RegX},
	STY: {"STY", Write, 0, RegY},
	SXA: {"SXA", UndocumentedWrite, 0, RegX},
	SYA: {"SYA", UndocumentedWrite, 0, RegY},
	TAX: {"TAX", 0, RegX | fZN, RegA},
	TAY: {"TAY", 0, RegY | fZN, RegA},
	TOP: {"TOP", UndocumentedRead, 0, 0},
	TSX: {"TSX", 0, RegX | fZN, RegS},
	TXA: {"TXA", 0, RegA | fZN, RegX},
	TXS: {"TXS", 0, RegS, RegX},
	TYA: {"TYA", 0, RegA | fZN, RegY},
	XAA: {"XAA", Undocumented, RegA | fZN, rAX},
	XAS: {"XAS", UndocumentedWrite, RegS, rAX},
}

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "???"
	}
	return operators[op].mnemonic
}

// Details returns the capability bits of the operator.
func (op Operator) Details() Details {
	return operators[op].details
}

// Changes returns the registers and flags written by the operator.
func (op Operator) Changes() Resources {
	return operators[op].changes
}

// Uses returns the registers and flags read by the operator.
func (op Operator) Uses() Resources {
	return operators[op].uses
}

// IsBranch returns true if the operator is one of the eight conditional
// branches.
func (op Operator) IsBranch() bool {
	switch op {
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS:
		return true
	}
	return false
}
