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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/test"
)

func TestLAX(t *testing.T) {
	mc, _ := newTestCPU()
	mc.Mem[0x10] = 0x85

	// LAX $10
	putInstructions(mc, testOrigin, 0xa7, 0x10)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x85))
	test.ExpectEquality(t, mc.X, uint8(0x85))
	assertStatus(t, mc, "Sv-bdizc")
}

func TestATX(t *testing.T) {
	mc, _ := newTestCPU()

	// the zero and negative flags are taken from the operand and not from
	// the result

	// LDA #$00; ATX #$11
	origin := putInstructions(mc, testOrigin, 0xa9, 0x00, 0xab, 0x11)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x00))
	test.ExpectEquality(t, mc.X, uint8(0x00))
	test.ExpectEquality(t, r.CPUBug, execution.UnpredictableBehaviour)
	assertStatus(t, mc, "sv-bdizc")

	// LDA #$ff; ATX #$80
	origin = putInstructions(mc, origin, 0xa9, 0xff, 0xab, 0x80)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x80))
	test.ExpectEquality(t, mc.X, uint8(0x80))
	assertStatus(t, mc, "Sv-bdizc")

	// LDA #$11; ATX #$00
	putInstructions(mc, origin, 0xa9, 0x11, 0xab, 0x00)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x00))
	assertStatus(t, mc, "sv-bdiZc")
}

func TestAXS(t *testing.T) {
	mc, _ := newTestCPU()

	// LDA #$0f; LDX #$3c; AXS #$02; AXS #$10
	putInstructions(mc, testOrigin, 0xa9, 0x0f, 0xa2, 0x3c, 0xcb, 0x02, 0xcb, 0x10)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X, uint8(0x0a))
	assertStatus(t, mc, "sv-bdizC")
	step(t, mc)
	test.ExpectEquality(t, mc.X, uint8(0xfa))
	assertStatus(t, mc, "Sv-bdizc")
}

func TestReadModifyWrite(t *testing.T) {
	mc, _ := newTestCPU()
	mc.Mem[0x10] = 0x11
	mc.Mem[0x11] = 0x04
	mc.Mem[0x12] = 0x81

	// LDA #$10; DCP $10; SEC; ISC $11; LDA #$01; SLO $12
	putInstructions(mc, testOrigin, 0xa9, 0x10, 0xc7, 0x10, 0x38, 0xe7, 0x11, 0xa9, 0x01, 0x07, 0x12)
	step(t, mc)

	r := step(t, mc) // DCP
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.Mem[0x10], uint8(0x10))
	assertStatus(t, mc, "sv-bdiZC")

	step(t, mc)
	step(t, mc) // ISC
	test.ExpectEquality(t, mc.Mem[0x11], uint8(0x05))
	test.ExpectEquality(t, mc.A, uint8(0x0b))
	assertStatus(t, mc, "sv-bdizC")

	step(t, mc)
	step(t, mc) // SLO
	test.ExpectEquality(t, mc.Mem[0x12], uint8(0x02))
	test.ExpectEquality(t, mc.A, uint8(0x03))
	assertStatus(t, mc, "sv-bdizC")
}

func TestImmediateUndocumented(t *testing.T) {
	mc, _ := newTestCPU()

	// LDA #$f0; AAC #$80
	origin := putInstructions(mc, testOrigin, 0xa9, 0xf0, 0x0b, 0x80)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x80))
	assertStatus(t, mc, "Sv-bdizC")

	// LDA #$ff; ASR #$03
	origin = putInstructions(mc, origin, 0xa9, 0xff, 0x4b, 0x03)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x01))
	assertStatus(t, mc, "sv-bdizC")

	// SEC; LDA #$ff; ARR #$ff
	origin = putInstructions(mc, origin, 0x38, 0xa9, 0xff, 0x6b, 0xff)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0xff))
	assertStatus(t, mc, "Sv-bdizC")

	// LDA #$00; LDX #$0f; XAA #$ff
	putInstructions(mc, origin, 0xa9, 0x00, 0xa2, 0x0f, 0x8b, 0xff)
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x0e))
	test.ExpectEquality(t, r.CPUBug, execution.UnpredictableBehaviour)
}

func TestUnpredictableStores(t *testing.T) {
	mc, _ := newTestCPU()

	// LDA #$ff; LDX #$0f; LDY #$00; XAS $0200,Y; SXA $0210,Y
	putInstructions(mc, testOrigin, 0xa9, 0xff, 0xa2, 0x0f, 0xa0, 0x00, 0x9b, 0x00, 0x02, 0x9e, 0x10, 0x02)
	step(t, mc)
	step(t, mc)
	step(t, mc)

	r := step(t, mc) // XAS
	test.ExpectEquality(t, mc.SP, uint8(0x0f))
	test.ExpectEquality(t, mc.Mem[0x0200], uint8(0x03))
	test.ExpectEquality(t, r.CPUBug, execution.UnpredictableBehaviour)

	step(t, mc) // SXA
	test.ExpectEquality(t, mc.Mem[0x0210], uint8(0x03))
}

func TestLAR(t *testing.T) {
	mc, _ := newTestCPU()
	mc.Mem[0x0200] = 0x0f

	// LDY #$00; LAR $0200,Y
	putInstructions(mc, testOrigin, 0xa0, 0x00, 0xbb, 0x00, 0x02)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x0f))
	test.ExpectEquality(t, mc.X, uint8(0x0f))
	test.ExpectEquality(t, mc.SP, uint8(0x0f))
}
