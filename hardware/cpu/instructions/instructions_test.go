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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/test"
)

func TestDefinitionTable(t *testing.T) {
	defs := instructions.Definitions()
	test.DemandEquality(t, len(defs), 256)

	used := make(map[instructions.Operator]bool)
	hlt := 0

	for i, d := range defs {
		test.ExpectEquality(t, d.OpCode, uint8(i))
		test.ExpectEquality(t, d.Bytes, d.AddressingMode.Bytes(), d.String())
		used[d.Operator] = true

		if d.Operator == instructions.HLT {
			hlt++
			test.ExpectEquality(t, d.Cycles, 0)
		} else {
			test.ExpectSuccess(t, d.Cycles >= 2, d.String())
		}
	}

	// every operator is reachable from at least one opcode
	test.ExpectEquality(t, len(used), int(instructions.NumOperators))
	test.ExpectEquality(t, hlt, 12)
}

func TestLookup(t *testing.T) {
	d := instructions.Lookup(0xa9)
	test.ExpectEquality(t, d.Operator, instructions.LDA)
	test.ExpectEquality(t, d.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, d.Operator.String(), "LDA")

	d = instructions.Lookup(0xeb)
	test.ExpectEquality(t, d.Operator, instructions.SBC)
	test.ExpectEquality(t, d.AddressingMode, instructions.Immediate)

	d = instructions.Lookup(0x6c)
	test.ExpectEquality(t, d.Operator, instructions.JMP)
	test.ExpectEquality(t, d.AddressingMode, instructions.Indirect)
	test.ExpectSuccess(t, d.IsJump())
	test.ExpectFailure(t, d.IsBranch())

	d = instructions.Lookup(0xd0)
	test.ExpectSuccess(t, d.IsBranch())
}

func TestPageSensitivity(t *testing.T) {
	// LDA abs,X
	test.ExpectSuccess(t, instructions.Lookup(0xbd).PageSensitive())

	// LDA (ind),Y
	test.ExpectSuccess(t, instructions.Lookup(0xb1).PageSensitive())

	// STA abs,X
	test.ExpectFailure(t, instructions.Lookup(0x9d).PageSensitive())

	// INC abs,X
	test.ExpectFailure(t, instructions.Lookup(0xfe).PageSensitive())

	// LDA zpg,X does not cross pages
	test.ExpectFailure(t, instructions.Lookup(0xb5).PageSensitive())

	// TOP abs,X reads the operand and is affected
	test.ExpectSuccess(t, instructions.Lookup(0x1c).PageSensitive())
}

func TestResources(t *testing.T) {
	// ASL in accumulator mode uses and changes A
	asl := instructions.Lookup(0x0a)
	test.ExpectSuccess(t, asl.Changes().Has(instructions.RegA|instructions.FlagC))
	test.ExpectSuccess(t, asl.Uses().Has(instructions.RegA))

	// ASL in memory mode does not touch A
	asl = instructions.Lookup(0x06)
	test.ExpectFailure(t, asl.Changes().Has(instructions.RegA))

	// ADC reads carry
	adc := instructions.Lookup(0x69)
	test.ExpectSuccess(t, adc.Uses().Has(instructions.FlagC|instructions.RegA))

	// PHA touches the stack pointer
	pha := instructions.Lookup(0x48)
	test.ExpectSuccess(t, pha.Uses().Has(instructions.RegS|instructions.RegA))
	test.ExpectSuccess(t, pha.Changes().Has(instructions.RegS))

	// LDA abs,Y uses Y
	test.ExpectSuccess(t, instructions.Lookup(0xb9).Uses().Has(instructions.RegY))

	test.ExpectEquality(t, instructions.Resources(instructions.RegA|instructions.FlagZ).String(), "Az")
	test.ExpectEquality(t, instructions.Resources(0).String(), "-")
}

func TestDetails(t *testing.T) {
	test.ExpectEquality(t, instructions.BRK.Details().String(), "JS")
	test.ExpectEquality(t, instructions.DCP.Details().String(), "RWU")
	test.ExpectEquality(t, instructions.NOP.Details().String(), "-")
	test.ExpectSuccess(t, instructions.JSR.Details().Is(instructions.Jump))
	test.ExpectSuccess(t, instructions.Lookup(0x02).IsUndocumented())
}
