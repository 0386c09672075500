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
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// Outcome is the result of executing an Operation.
type Outcome struct {
	// cycles in addition to the base cost of the instruction and any page
	// fault. taken branches cost additional cycles
	Cycles int

	// a deferred interrupt was serviced immediately after the instruction
	Interrupted bool

	// the instruction halted the CPU
	Halted bool

	// a known quirk of the CPU was triggered
	Bug execution.Bug
}

// Execute the operation. The registers argument is updated according to the
// semantics of the instruction, including the program counter.
//
// Memory is accessed with Load() and Write(). The stack is accessed directly
// through the memory image. Other than the registers argument, the only CPU
// state changed by Execute() is the memory, the IntPending, Halted and
// StallCycles fields.
func (mc *CPU) Execute(r *Registers, op Operation) Outcome {
	var out Outcome

	r.PC = op.Next
	v := op.Value
	address := op.Operand

	switch op.Defn.Operator {
	case instructions.NOP, instructions.DOP, instructions.TOP:

	case instructions.CLC:
		r.Status.SetCarry(false)
	case instructions.CLD:
		r.Status.SetDecimalMode(false)
	case instructions.CLV:
		r.Status.SetOverflow(false)
	case instructions.SEC:
		r.Status.SetCarry(true)
	case instructions.SED:
		r.Status.SetDecimalMode(true)
	case instructions.SEI:
		r.Status.SetInterruptDisable(true)

	case instructions.CLI:
		r.Status.SetInterruptDisable(false)
		out.Interrupted = mc.deferredInterrupt(r, op)

	case instructions.PHA:
		mc.push(r, r.A)

	case instructions.PHP:
		// the break flag is only pushed if it is set in the live register
		mc.push(r, r.Status.Value())

	case instructions.PLA:
		r.A = mc.pull(r)
		r.Status.SetZN(r.A)

	case instructions.PLP:
		r.Status.FromValue(mc.pull(r))
		out.Interrupted = mc.deferredInterrupt(r, op)

	case instructions.TAX:
		r.X = r.A
		r.Status.SetZN(r.X)
	case instructions.TAY:
		r.Y = r.A
		r.Status.SetZN(r.Y)
	case instructions.TXA:
		r.A = r.X
		r.Status.SetZN(r.A)
	case instructions.TYA:
		r.A = r.Y
		r.Status.SetZN(r.A)
	case instructions.TSX:
		r.X = r.SP
		r.Status.SetZN(r.X)
	case instructions.TXS:
		// TXS does not affect the status register
		r.SP = r.X

	case instructions.LDA:
		r.A = v
		r.Status.SetZN(r.A)
	case instructions.LDX:
		r.X = v
		r.Status.SetZN(r.X)
	case instructions.LDY:
		r.Y = v
		r.Status.SetZN(r.Y)

	case instructions.STA:
		mc.Write(address, r.A)
	case instructions.STX:
		mc.Write(address, r.X)
	case instructions.STY:
		mc.Write(address, r.Y)

	case instructions.AND:
		r.A &= v
		r.Status.SetZN(r.A)
	case instructions.ORA:
		r.A |= v
		r.Status.SetZN(r.A)
	case instructions.EOR:
		r.A ^= v
		r.Status.SetZN(r.A)

	case instructions.ADC:
		mc.adc(r, v, r.Status.Carry())
	case instructions.SBC:
		mc.sbc(r, v)

	case instructions.CMP:
		mc.compare(r, r.A, v)
	case instructions.CPX:
		mc.compare(r, r.X, v)
	case instructions.CPY:
		mc.compare(r, r.Y, v)

	case instructions.BIT:
		r.Status.SetNegative(v&0x80 == 0x80)
		r.Status.SetOverflow(v&0x40 == 0x40)
		r.Status.SetZero(v&r.A == 0)

	case instructions.INX:
		r.X++
		r.Status.SetZN(r.X)
	case instructions.INY:
		r.Y++
		r.Status.SetZN(r.Y)
	case instructions.DEX:
		r.X--
		r.Status.SetZN(r.X)
	case instructions.DEY:
		r.Y--
		r.Status.SetZN(r.Y)

	case instructions.INC:
		v++
		r.Status.SetZN(v)
		mc.Write(address, v)
	case instructions.DEC:
		v--
		r.Status.SetZN(v)
		mc.Write(address, v)

	case instructions.ASL:
		v, c := registers.ASL(v)
		r.Status.SetCarry(c)
		r.Status.SetZN(v)
		mc.store(r, op, v)
	case instructions.LSR:
		v, c := registers.LSR(v)
		r.Status.SetCarry(c)
		r.Status.SetZN(v)
		mc.store(r, op, v)
	case instructions.ROL:
		v, c := registers.ROL(v, r.Status.Carry())
		r.Status.SetCarry(c)
		r.Status.SetZN(v)
		mc.store(r, op, v)
	case instructions.ROR:
		v, c := registers.ROR(v, r.Status.Carry())
		r.Status.SetCarry(c)
		r.Status.SetZN(v)
		mc.store(r, op, v)

	case instructions.BCC:
		out.Cycles = branch(r, op, !r.Status.Carry())
	case instructions.BCS:
		out.Cycles = branch(r, op, r.Status.Carry())
	case instructions.BEQ:
		out.Cycles = branch(r, op, r.Status.Zero())
	case instructions.BNE:
		out.Cycles = branch(r, op, !r.Status.Zero())
	case instructions.BMI:
		out.Cycles = branch(r, op, r.Status.Negative())
	case instructions.BPL:
		out.Cycles = branch(r, op, !r.Status.Negative())
	case instructions.BVC:
		out.Cycles = branch(r, op, !r.Status.Overflow())
	case instructions.BVS:
		out.Cycles = branch(r, op, r.Status.Overflow())

	case instructions.JMP:
		r.PC = address

	case instructions.JSR:
		// the address pushed is the last byte of the JSR instruction
		mc.push16(r, op.Next-1)
		r.PC = address

	case instructions.RTS:
		r.PC = mc.pull16(r) + 1

	case instructions.RTI:
		r.Status.FromValue(mc.pull(r))
		r.PC = mc.pull16(r)
		out.Interrupted = mc.deferredInterrupt(r, op)

	case instructions.BRK:
		// BRK is a one byte instruction but the address pushed skips the
		// byte that follows it
		mc.push16(r, op.Next+1)
		r.Status.SetBreak(true)
		mc.push(r, (r.Status | registers.Break).Value())
		r.Status.SetInterruptDisable(true)
		r.PC = mc.read16(cpubus.IRQ)

	case instructions.HLT:
		mc.Halted = true
		out.Halted = true
		logger.Logf(logger.Allow, "cpu", "halted by opcode %#02x at $%04x", op.Defn.OpCode, op.Address)

	// undocumented instructions

	case instructions.AAC:
		r.A &= v
		r.Status.SetZN(r.A)
		r.Status.SetCarry(r.Status.Negative())

	case instructions.AAX:
		mc.Write(address, r.A&r.X)

	case instructions.ARR:
		r.A &= v
		r.A >>= 1
		if r.Status.Carry() {
			r.A |= 0x80
		}
		r.Status.SetCarry(r.A&0x40 == 0x40)
		r.Status.SetOverflow(((r.A>>1)^r.A)&0x20 == 0x20)
		r.Status.SetZN(r.A)

	case instructions.ASR:
		r.A &= v
		r.Status.SetCarry(r.A&0x01 == 0x01)
		r.A >>= 1
		r.Status.SetZN(r.A)

	case instructions.ATX:
		r.A = (r.A | 0xee) & v
		r.X = r.A
		r.Status.SetZN(v)
		out.Bug = execution.UnpredictableBehaviour

	case instructions.AXA:
		mc.Write(address, r.A&r.X&highPlusOne(address))
		out.Bug = execution.UnpredictableBehaviour

	case instructions.AXS:
		ax := r.A & r.X
		r.X = ax - v
		r.Status.SetCarry(ax >= v)
		r.Status.SetZN(r.X)

	case instructions.DCP:
		v--
		mc.Write(address, v)
		mc.compare(r, r.A, v)

	case instructions.ISC:
		v++
		mc.Write(address, v)
		mc.sbc(r, v)

	case instructions.LAR:
		r.A = r.SP & v
		r.X = r.A
		r.SP = r.A
		r.Status.SetZN(r.A)

	case instructions.LAX:
		r.A = v
		r.X = v
		r.Status.SetZN(r.A)

	case instructions.RLA:
		v, c := registers.ROL(v, r.Status.Carry())
		mc.Write(address, v)
		r.Status.SetCarry(c)
		r.A &= v
		r.Status.SetZN(r.A)

	case instructions.RRA:
		v, c := registers.ROR(v, r.Status.Carry())
		mc.Write(address, v)
		mc.adc(r, v, c)

	case instructions.SLO:
		v, c := registers.ASL(v)
		mc.Write(address, v)
		r.Status.SetCarry(c)
		r.A |= v
		r.Status.SetZN(r.A)

	case instructions.SRE:
		v, c := registers.LSR(v)
		mc.Write(address, v)
		r.Status.SetCarry(c)
		r.A ^= v
		r.Status.SetZN(r.A)

	case instructions.SXA:
		mc.Write(address, r.X&highPlusOne(address))
		out.Bug = execution.UnpredictableBehaviour

	case instructions.SYA:
		mc.Write(address, r.Y&highPlusOne(address))
		out.Bug = execution.UnpredictableBehaviour

	case instructions.XAA:
		r.A = (r.A | 0xee) & r.X & v
		r.Status.SetZN(r.A)
		out.Bug = execution.UnpredictableBehaviour

	case instructions.XAS:
		r.SP = r.X & r.A
		mc.Write(address, r.SP&highPlusOne(address))
		out.Bug = execution.UnpredictableBehaviour
	}

	return out
}

// the high byte of the address plus one, as used by the unpredictable store
// instructions
func highPlusOne(address uint16) uint8 {
	return uint8(address>>8) + 1
}

// store the result of a shift or rotate to the accumulator or to memory
// depending on the addressing mode
func (mc *CPU) store(r *Registers, op Operation, v uint8) {
	if op.Defn.AddressingMode == instructions.Accumulator {
		r.A = v
		return
	}
	mc.Write(op.Operand, v)
}

func (mc *CPU) adc(r *Registers, v uint8, carry bool) {
	var c, o bool
	r.A, c, o = registers.Add(r.A, v, carry)
	r.Status.SetCarry(c)
	r.Status.SetOverflow(o)
	r.Status.SetZN(r.A)
}

func (mc *CPU) sbc(r *Registers, v uint8) {
	var c, o bool
	r.A, c, o = registers.Subtract(r.A, v, r.Status.Carry())
	r.Status.SetCarry(c)
	r.Status.SetOverflow(o)
	r.Status.SetZN(r.A)
}

func (mc *CPU) compare(r *Registers, reg uint8, v uint8) {
	res, c := registers.Compare(reg, v)
	r.Status.SetCarry(c)
	r.Status.SetZN(res)
}

// branch to the operand address if the condition is true. returns the number
// of additional cycles: one for a taken branch and another if the target is
// on a different page to the following instruction
func branch(r *Registers, op Operation, taken bool) int {
	if !taken {
		return 0
	}
	r.PC = op.Operand
	if op.Operand&0xff00 != op.Next&0xff00 {
		return 2
	}
	return 1
}

// a deferred interrupt is serviced immediately after an instruction that
// can clear the interrupt disable flag, but only if there is budget left for
// the interrupt handler to begin executing
func (mc *CPU) deferredInterrupt(r *Registers, op Operation) bool {
	if op.Remaining <= 0 {
		return false
	}
	return mc.servicePending(r)
}
