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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/test"
)

func TestOperands(t *testing.T) {
	var mem [0x10000]uint8

	for _, tc := range []struct {
		bytes    []uint8
		expected string
	}{
		{[]uint8{0xa9, 0x05}, "$8000: [ $A9 $05 ]       LDA #$05"},
		{[]uint8{0xea}, "$8000: [ $EA ]           NOP"},
		{[]uint8{0x0a}, "$8000: [ $0A ]           ASL A"},
		{[]uint8{0xa5, 0x10}, "$8000: [ $A5 $10 ]       LDA $10"},
		{[]uint8{0xb5, 0x10}, "$8000: [ $B5 $10 ]       LDA $10, X"},
		{[]uint8{0xb6, 0x10}, "$8000: [ $B6 $10 ]       LDX $10, Y"},
		{[]uint8{0xad, 0x34, 0x12}, "$8000: [ $AD $34 $12 ]   LDA $1234"},
		{[]uint8{0xbd, 0x34, 0x12}, "$8000: [ $BD $34 $12 ]   LDA $1234, X"},
		{[]uint8{0xb9, 0x34, 0x12}, "$8000: [ $B9 $34 $12 ]   LDA $1234, Y"},
		{[]uint8{0xa1, 0x20}, "$8000: [ $A1 $20 ]       LDA ($20, X)"},
		{[]uint8{0xb1, 0x20}, "$8000: [ $B1 $20 ]       LDA ($20), Y"},
		{[]uint8{0xd0, 0xfe}, "$8000: [ $D0 $FE ]       BNE $8000"},
		{[]uint8{0x10, 0x10}, "$8000: [ $10 $10 ]       BPL $8012"},
		{[]uint8{0xa7, 0x10}, "$8000: [ $A7 $10 ]       LAX $10"},
	} {
		copy(mem[0x8000:], tc.bytes)
		e := disassembly.Disassemble(&mem, 0x8000)
		test.ExpectEquality(t, e.String(), tc.expected)
		test.ExpectEquality(t, e.Next(), 0x8000+uint16(len(tc.bytes)))
	}
}

func TestTargets(t *testing.T) {
	var mem [0x10000]uint8

	// JSR $8010
	copy(mem[0x8000:], []uint8{0x20, 0x10, 0x80})
	e := disassembly.Disassemble(&mem, 0x8000)
	test.ExpectSuccess(t, e.HasTarget)
	test.ExpectEquality(t, e.Target, uint16(0x8010))

	// LDA $8010 does not have a target
	copy(mem[0x8000:], []uint8{0xad, 0x10, 0x80})
	e = disassembly.Disassemble(&mem, 0x8000)
	test.ExpectFailure(t, e.HasTarget)

	// JMP ($10FF). the high byte of the target comes from $1000
	copy(mem[0x8000:], []uint8{0x6c, 0xff, 0x10})
	mem[0x10ff] = 0x34
	mem[0x1000] = 0x12
	mem[0x1100] = 0x56
	e = disassembly.Disassemble(&mem, 0x8000)
	test.ExpectEquality(t, e.Target, uint16(0x1234))
	test.ExpectEquality(t, e.String(), "$8000: [ $6C $FF $10 ]   JMP ($10FF) ; $1234")
	test.ExpectEquality(t, e.Mnemonic(), "JMP")
}

func TestWrite(t *testing.T) {
	var mem [0x10000]uint8

	// LDX #$05; DEX; BNE $8002; RTS
	copy(mem[0x8000:], []uint8{0xa2, 0x05, 0xca, 0xd0, 0xfd, 0x60})

	w := &test.Writer{}
	err := disassembly.Write(w, &mem, 0x8000, 0x8004)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("$8000: [ $A2 $05 ]       LDX #$05\n"+
		"$8002: [ $CA ]           DEX\n"+
		"$8003: [ $D0 $FD ]       BNE $8002\n"))

	// the range wraps around the top of memory
	w.Clear()
	mem[0xffff] = 0xea
	err = disassembly.Write(w, &mem, 0xffff, 0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Compare("$FFFF: [ $EA ]           NOP\n"))

	err = disassembly.Write(w, &mem, 0x8004, 0x8000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, disassembly.InvalidRange))
}
