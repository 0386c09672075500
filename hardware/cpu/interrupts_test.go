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
	"github.com/jetsetilly/gopher6502/test"
)

func TestIRQ(t *testing.T) {
	mc, _ := newTestCPU()

	// interrupts are enabled after reset so the request is serviced at once
	mc.RequestIRQ(cpu.IRQNormal)
	test.ExpectEquality(t, mc.PC, testIRQVector)
	test.ExpectEquality(t, mc.SP, uint8(0xfc))
	test.ExpectEquality(t, mc.Mem[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mc.Mem[0x01fe], uint8(0x00))
	test.ExpectEquality(t, mc.Mem[0x01fd], uint8(0x22))
	assertStatus(t, mc, "sv-bdIZc")

	// the cost of the interrupt is added to the stall cycles
	test.ExpectEquality(t, mc.StallCycles, 6+7)
	test.ExpectFailure(t, mc.IntPending)
}

func TestNMI(t *testing.T) {
	mc, _ := newTestCPU()

	// SEI
	putInstructions(mc, testOrigin, 0x78)
	step(t, mc)

	// NMI is not masked by the interrupt disable flag. the break flag is
	// never pushed by an interrupt
	mc.Status.SetBreak(true)
	mc.RequestIRQ(cpu.IRQNMI)
	test.ExpectEquality(t, mc.PC, testNMIVector)
	test.ExpectEquality(t, mc.Mem[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mc.Mem[0x01fe], uint8(0x01))
	test.ExpectEquality(t, mc.Mem[0x01fd], uint8(0x26))
}

func TestDeferredIRQ(t *testing.T) {
	mc, _ := newTestCPU()

	// SEI; CLI; NOP
	putInstructions(mc, testOrigin, 0x78, 0x58, 0xea)
	putInstructions(mc, testIRQVector, 0xea, 0xea)
	step(t, mc)

	// the request is recorded but does not change the PC or the stack
	mc.RequestIRQ(cpu.IRQNormal)
	test.ExpectSuccess(t, mc.IntPending)
	test.ExpectEquality(t, mc.PC, uint16(0x8001))
	test.ExpectEquality(t, mc.SP, uint8(0xff))

	// the interrupt is serviced immediately after the CLI because there is
	// budget remaining
	test.ExpectEquality(t, mc.StepWithBudget(100), 2)
	test.ExpectSuccess(t, mc.LastResult.Interrupted)
	test.ExpectFailure(t, mc.IntPending)
	test.ExpectEquality(t, mc.PC, testIRQVector)
	test.ExpectEquality(t, mc.Mem[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mc.Mem[0x01fe], uint8(0x02))
	test.ExpectEquality(t, mc.Mem[0x01fd], uint8(0x22))
	assertStatus(t, mc, "sv-bdIZc")
	test.ExpectEquality(t, mc.StallCycles, 6+7)
}

func TestDeferredIRQAtBoundary(t *testing.T) {
	mc, _ := newTestCPU()

	// SEI; CLI; NOP
	putInstructions(mc, testOrigin, 0x78, 0x58, 0xea)
	putInstructions(mc, testIRQVector, 0xea, 0xea)
	step(t, mc)
	mc.RequestIRQ(cpu.IRQNormal)

	// Step() has no budget beyond the instruction so the interrupt is not
	// serviced by the CLI
	r := step(t, mc)
	test.ExpectFailure(t, r.Interrupted)
	test.ExpectSuccess(t, mc.IntPending)
	test.ExpectEquality(t, mc.PC, uint16(0x8002))

	// the interrupt is serviced before the next instruction. the NOP at the
	// IRQ vector is then executed
	step(t, mc)
	test.ExpectFailure(t, mc.IntPending)
	test.ExpectEquality(t, mc.PC, testIRQVector+1)
	test.ExpectEquality(t, mc.Mem[0x01fe], uint8(0x02))
}

func TestDeferredIRQWithPLP(t *testing.T) {
	mc, _ := newTestCPU()

	// SEI; LDA #$00; PHA; PLP
	putInstructions(mc, testOrigin, 0x78, 0xa9, 0x00, 0x48, 0x28)
	step(t, mc)
	mc.RequestIRQ(cpu.IRQNormal)

	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.IntPending)
	test.ExpectEquality(t, mc.SP, uint8(0xfe))

	mc.StepWithBudget(100)
	test.ExpectFailure(t, mc.IntPending)
	test.ExpectEquality(t, mc.PC, testIRQVector)
	test.ExpectEquality(t, mc.SP, uint8(0xfc))
	test.ExpectEquality(t, mc.Mem[0x01ff], uint8(0x80))
	test.ExpectEquality(t, mc.Mem[0x01fe], uint8(0x05))
	test.ExpectEquality(t, mc.Mem[0x01fd], uint8(0x20))
}

func TestDeferredIRQWithRTI(t *testing.T) {
	mc, _ := newTestCPU()

	// a return address and a status with interrupts enabled
	mc.Push16(0x8100)
	mc.Push(0x20)

	// SEI; RTI
	putInstructions(mc, testOrigin, 0x78, 0x40)
	step(t, mc)
	mc.RequestIRQ(cpu.IRQNormal)

	mc.StepWithBudget(100)
	test.ExpectFailure(t, mc.IntPending)
	test.ExpectEquality(t, mc.PC, testIRQVector)
	test.ExpectEquality(t, mc.SP, uint8(0xfc))

	// the address pushed is the address returned to by the RTI
	test.ExpectEquality(t, mc.Mem[0x01ff], uint8(0x81))
	test.ExpectEquality(t, mc.Mem[0x01fe], uint8(0x00))
	test.ExpectEquality(t, mc.Mem[0x01fd], uint8(0x20))
}

func TestInterpretServicesPending(t *testing.T) {
	mc, _ := newTestCPU()

	// SEI; CLI; NOP ...
	putInstructions(mc, testOrigin, 0x78, 0x58, 0xea, 0xea)
	putInstructions(mc, testIRQVector, 0xea, 0xea, 0xea)

	// the budget ends with the SEI
	test.ExpectEquality(t, mc.Interpret(1), 2)
	mc.RequestIRQ(cpu.IRQNormal)

	// the budget ends with the CLI so the interrupt is not serviced
	test.ExpectEquality(t, mc.Interpret(1), 2)
	test.ExpectSuccess(t, mc.IntPending)

	// the interrupt is serviced at the start of the next call
	test.ExpectEquality(t, mc.Interpret(1), 2)
	test.ExpectEquality(t, mc.PC, testIRQVector+1)
}
