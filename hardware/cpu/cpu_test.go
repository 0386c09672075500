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

	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/test"
)

func TestReset(t *testing.T) {
	mc, _ := newTestCPU()
	test.ExpectEquality(t, mc.PC, testOrigin)
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x22))
	test.ExpectEquality(t, mc.A, uint8(0))
	test.ExpectEquality(t, mc.X, uint8(0))
	test.ExpectEquality(t, mc.Y, uint8(0))
	test.ExpectEquality(t, mc.S(), uint16(0x01ff))
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.StallCycles, 6)
	test.ExpectEquality(t, mc.String(), "PC=$8000 A=$00 X=$00 Y=$00 SP=$01ff SR=sv-bdiZc")
}

func TestResetListener(t *testing.T) {
	mc, _ := newTestCPU()

	var called int
	mc.AddResetListener(func() {
		called++
	})

	mc.Mem[0x8000] = 0xea
	mc.Reset()
	test.ExpectEquality(t, called, 1)
	test.ExpectEquality(t, mc.Mem[0x8000], uint8(0x00))
}

func TestStack(t *testing.T) {
	mc, _ := newTestCPU()

	mc.Push16(0x1234)
	test.ExpectEquality(t, mc.S(), uint16(0x01fd))
	test.ExpectEquality(t, mc.Mem[0x01ff], uint8(0x12))
	test.ExpectEquality(t, mc.Mem[0x01fe], uint8(0x34))
	test.ExpectEquality(t, mc.Pull16(), uint16(0x1234))
	test.ExpectEquality(t, mc.S(), uint16(0x01ff))

	// the stack wraps around within page one
	mc.SP = 0x00
	mc.Push(0xaa)
	test.ExpectEquality(t, mc.Mem[0x0100], uint8(0xaa))
	test.ExpectEquality(t, mc.S(), uint16(0x01ff))
	test.ExpectEquality(t, mc.Pull(), uint8(0xaa))
	test.ExpectEquality(t, mc.S(), uint16(0x0100))
}

func TestMemoryRouting(t *testing.T) {
	mc, mem := newTestCPU()

	// work RAM is mirrored every 2k
	mc.Write(0x0801, 0x55)
	test.ExpectEquality(t, mc.Mem[0x0001], uint8(0x55))
	test.ExpectEquality(t, mc.Load(0x1801), uint8(0x55))
	test.ExpectEquality(t, len(mem.reads), 0)
	test.ExpectEquality(t, len(mem.writes), 0)

	// peripherals are reached through the mapper
	mc.Write(0x2000, 0x80)
	test.DemandEquality(t, len(mem.writes), 1)
	test.ExpectEquality(t, mem.writes[0], uint16(0x2000))
	mem.data[0x6000] = 0x12
	test.ExpectEquality(t, mc.Load(0x6000), uint8(0x12))
	test.ExpectEquality(t, len(mem.reads), 1)

	// ROM is read from the memory image but writes go to the mapper
	mc.Mem[0x8000] = 0xea
	mc.Write(0x8000, 0xff)
	test.ExpectEquality(t, mc.Mem[0x8000], uint8(0xea))
	test.ExpectEquality(t, len(mem.writes), 2)
	test.ExpectEquality(t, mc.Load(0x8000), uint8(0xea))
	test.ExpectEquality(t, len(mem.reads), 1)
}

func TestStatusInstructions(t *testing.T) {
	mc, _ := newTestCPU()

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin := putInstructions(mc, testOrigin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	assertStatus(t, mc, "sv-bdiZC")
	step(t, mc) // CLC
	assertStatus(t, mc, "sv-bdiZc")
	step(t, mc) // CLI
	assertStatus(t, mc, "sv-bdiZc")
	step(t, mc) // SEI
	assertStatus(t, mc, "sv-bdIZc")
	step(t, mc) // SED
	assertStatus(t, mc, "sv-bDIZc")
	step(t, mc) // CLD
	assertStatus(t, mc, "sv-bdIZc")
	step(t, mc) // CLV
	assertStatus(t, mc, "sv-bdIZc")

	// PHP; PLP
	putInstructions(mc, origin, 0x08, 0x28)
	step(t, mc) // PHP
	assertStatus(t, mc, "sv-bdIZc")
	test.ExpectEquality(t, mc.SP, uint8(0xfe))

	// the pushed value always has the reserved bit set
	test.ExpectEquality(t, mc.Mem[0x01ff], uint8(0x26))

	// mangle status register
	mc.Status.SetNegative(true)
	mc.Status.SetOverflow(true)

	// restore status register
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP, uint8(0xff))
	assertStatus(t, mc, "sv-bdIZc")
}

func TestArithmetic(t *testing.T) {
	mc, _ := newTestCPU()

	// LDA #$7f; ADC #$01
	origin := putInstructions(mc, testOrigin, 0xa9, 0x7f, 0x69, 0x01)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.A, uint8(0x80))
	assertStatus(t, mc, "SV-bdizc")

	// LDA #$ff; CLC; ADC #$01
	origin = putInstructions(mc, origin, 0xa9, 0xff, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x00))
	assertStatus(t, mc, "sv-bdiZC")

	// SEC; LDA #$05; SBC #$06
	origin = putInstructions(mc, origin, 0x38, 0xa9, 0x05, 0xe9, 0x06)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0xff))
	assertStatus(t, mc, "Sv-bdizc")

	// SEC; LDA #$80; SBC #$01
	origin = putInstructions(mc, origin, 0x38, 0xa9, 0x80, 0xe9, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x7f))
	assertStatus(t, mc, "sV-bdizC")

	// LDA #$10; CMP #$10; CPX #$01; CPY #$00
	putInstructions(mc, origin, 0xa9, 0x10, 0xc9, 0x10, 0xe0, 0x01, 0xc0, 0x00)
	step(t, mc)
	step(t, mc)
	assertStatus(t, mc, "sV-bdiZC")
	step(t, mc)
	assertStatus(t, mc, "SV-bdizc")
	step(t, mc)
	assertStatus(t, mc, "sV-bdiZC")
}

func TestShifts(t *testing.T) {
	mc, _ := newTestCPU()

	// LDA #$81; ASL A; ROL A; LSR $10; ROR $10
	mc.Mem[0x10] = 0x03
	putInstructions(mc, testOrigin, 0xa9, 0x81, 0x0a, 0x2a, 0x46, 0x10, 0x66, 0x10)
	step(t, mc)
	step(t, mc) // ASL A
	test.ExpectEquality(t, mc.A, uint8(0x02))
	assertStatus(t, mc, "sv-bdizC")
	step(t, mc) // ROL A
	test.ExpectEquality(t, mc.A, uint8(0x05))
	assertStatus(t, mc, "sv-bdizc")
	r := step(t, mc) // LSR $10
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.Mem[0x10], uint8(0x01))
	assertStatus(t, mc, "sv-bdizC")
	step(t, mc) // ROR $10
	test.ExpectEquality(t, mc.Mem[0x10], uint8(0x80))
	assertStatus(t, mc, "Sv-bdizC")
}

func TestBranchCycles(t *testing.T) {
	mc, _ := newTestCPU()

	// LDX #$01; BNE +2; (two bytes skipped); BEQ +16; JMP $80f0
	putInstructions(mc, testOrigin, 0xa2, 0x01, 0xd0, 0x02, 0xea, 0xea, 0xf0, 0x10, 0x4c, 0xf0, 0x80)
	step(t, mc)

	// taken branch on the same page
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, mc.PC, uint16(0x8006))

	// branch not taken
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectFailure(t, r.BranchSuccess)
	test.ExpectEquality(t, mc.PC, uint16(0x8008))

	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x80f0))

	// taken branch to a different page. the page of the target is compared
	// with the page of the following instruction
	putInstructions(mc, 0x80f0, 0xd0, 0x20)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC, uint16(0x8112))

	// and backwards
	putInstructions(mc, 0x8112, 0xd0, 0xe0)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC, uint16(0x80f4))
}

func TestPageFaults(t *testing.T) {
	mc, _ := newTestCPU()

	mc.Mem[0x8100] = 0x99
	mc.Mem[0x0020] = 0xf8
	mc.Mem[0x0021] = 0x02
	mc.Mem[0x0308] = 0x42

	// LDX #$01; LDA $80ff,X; STA $02ff,X; LDY #$10; LDA ($20),Y
	putInstructions(mc, testOrigin, 0xa2, 0x01, 0xbd, 0xff, 0x80, 0x9d, 0xff, 0x02, 0xa0, 0x10, 0xb1, 0x20)
	step(t, mc)

	r := step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x99))
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 5)

	// instructions that write memory are not sensitive to page faults
	r = step(t, mc)
	test.ExpectEquality(t, mc.Mem[0x0300], uint8(0x99))
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 5)

	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A, uint8(0x42))
	test.ExpectSuccess(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 6)
}

func TestPageFaultsWrites(t *testing.T) {
	mc, _ := newTestCPU()

	mc.Mem[0x0300] = 0x41
	mc.Mem[0x0020] = 0xf8
	mc.Mem[0x0021] = 0x02

	// the cost of write and read-modify-write instructions is fixed whether
	// or not the indexed address crosses a page

	// LDX #$01; INC $02ff,X; INC $0200,X; LDY #$10; STA ($20),Y; STA $03fe,Y
	putInstructions(mc, testOrigin, 0xa2, 0x01, 0xfe, 0xff, 0x02, 0xfe, 0x00, 0x02,
		0xa0, 0x10, 0x91, 0x20, 0x99, 0xfe, 0x03)
	step(t, mc)

	r := step(t, mc)
	test.ExpectEquality(t, mc.Mem[0x0300], uint8(0x42))
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 7)

	r = step(t, mc)
	test.ExpectEquality(t, mc.Mem[0x0201], uint8(0x01))
	test.ExpectEquality(t, r.Cycles, 7)

	step(t, mc)
	r = step(t, mc)
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 6)

	r = step(t, mc)
	test.ExpectFailure(t, r.PageFault)
	test.ExpectEquality(t, r.Cycles, 5)
}

func TestJmpIndirectBug(t *testing.T) {
	mc, _ := newTestCPU()

	mc.Mem[0x10ff] = 0x34
	mc.Mem[0x1000] = 0x12
	mc.Mem[0x1100] = 0x56

	// JMP ($10ff)
	putInstructions(mc, testOrigin, 0x6c, 0xff, 0x10)
	r := step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x1234))
	test.ExpectEquality(t, r.CPUBug, execution.JmpIndirectAddressingBug)
	test.ExpectEquality(t, r.Cycles, 5)

	// JMP ($1100) does not trigger the bug
	mc.Mem[0x1101] = 0x78
	putInstructions(mc, 0x1234, 0x6c, 0x00, 0x11)
	r = step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x7856))
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)
}

func TestSubroutines(t *testing.T) {
	mc, _ := newTestCPU()

	// JSR $9000
	putInstructions(mc, testOrigin, 0x20, 0x00, 0x90)

	// RTS
	putInstructions(mc, 0x9000, 0x60)

	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC, uint16(0x9000))
	test.ExpectEquality(t, mc.SP, uint8(0xfd))

	// the address pushed is the last byte of the JSR instruction
	test.ExpectEquality(t, mc.Mem[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mc.Mem[0x01fe], uint8(0x02))

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC, uint16(0x8003))
	test.ExpectEquality(t, mc.SP, uint8(0xff))
}

func TestBRK(t *testing.T) {
	mc, _ := newTestCPU()

	// BRK; and RTI at the IRQ vector
	putInstructions(mc, testOrigin, 0x00)
	putInstructions(mc, testIRQVector, 0x40)

	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC, testIRQVector)
	test.ExpectEquality(t, mc.SP, uint8(0xfc))

	// the address pushed skips the byte after the BRK
	test.ExpectEquality(t, mc.Mem[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mc.Mem[0x01fe], uint8(0x02))

	// pushed status has the break flag set
	test.ExpectEquality(t, mc.Mem[0x01fd], uint8(0x32))
	assertStatus(t, mc, "sv-BdIZc")

	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8002))
	test.ExpectEquality(t, mc.SP, uint8(0xff))
	assertStatus(t, mc, "sv-BdiZc")
}

func TestHLT(t *testing.T) {
	mc, _ := newTestCPU()

	putInstructions(mc, testOrigin, 0x02)

	test.ExpectEquality(t, mc.Interpret(100), 100)
	test.ExpectSuccess(t, mc.Halted)
	test.ExpectEquality(t, mc.PC, uint16(0x8001))

	// halting is sticky
	test.ExpectEquality(t, mc.Interpret(100), 0)
	test.ExpectEquality(t, mc.Step(), 0)
	test.ExpectEquality(t, mc.PC, uint16(0x8001))

	// interrupts are dropped while halted
	mc.RequestIRQ(cpu.IRQNMI)
	test.ExpectEquality(t, mc.PC, uint16(0x8001))
	test.ExpectEquality(t, mc.SP, uint8(0xff))

	// only a reset clears the halt
	mc.RequestIRQ(cpu.IRQReset)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectEquality(t, mc.PC, testOrigin)
}

func TestInterpretOvershoot(t *testing.T) {
	mc, _ := newTestCPU()

	// NOP; NOP; JMP $8000
	putInstructions(mc, testOrigin, 0xea, 0xea, 0x4c, 0x00, 0x80)

	// the budget is exceeded by the last instruction
	test.ExpectEquality(t, mc.Interpret(5), 7)
	test.ExpectEquality(t, mc.PC, testOrigin)

	test.ExpectEquality(t, mc.Interpret(1), 2)
	test.ExpectEquality(t, mc.PC, uint16(0x8001))
}
