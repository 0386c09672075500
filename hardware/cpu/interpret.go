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
)

// Interpret executes instructions until at least the requested number of
// cycles have been consumed. Returns the number of cycles actually consumed,
// which may be more than requested by the cost of the last instruction.
//
// If the CPU is halted then no instructions are executed and zero is
// returned. If the CPU halts during the call then the requested number of
// cycles is returned.
func (mc *CPU) Interpret(cycles int) int {
	if mc.Halted {
		return 0
	}

	consumed := 0
	for consumed < cycles {
		consumed += mc.step(cycles - consumed)
		if mc.Halted {
			return cycles
		}
	}

	return consumed
}

// Step executes exactly one instruction and returns the number of cycles
// consumed. It is equivalent to Interpret(1).
func (mc *CPU) Step() int {
	return mc.StepWithBudget(1)
}

// StepWithBudget executes exactly one instruction and returns the number of
// cycles consumed. The budget argument is the number of cycles remaining in
// the caller's budget. If the instruction halts the CPU then the budget is
// returned.
//
// The budget decides whether a deferred interrupt is serviced immediately
// after CLI, PLP or RTI. Drivers that interleave calls to StepWithBudget()
// with other means of execution should pass the budget they have remaining so
// that execution is equivalent to a single call to Interpret().
func (mc *CPU) StepWithBudget(budget int) int {
	if mc.Halted {
		return 0
	}
	return mc.step(budget)
}

func (mc *CPU) step(budget int) int {
	r := &mc.Registers

	// a deferred interrupt is serviced at the instruction boundary. the cost
	// of the interrupt is added to the stall cycles
	mc.servicePending(r)

	pc := r.PC
	defn := instructions.Lookup(mc.Mem[pc])
	lo := mc.Mem[pc+1]
	hi := mc.Mem[pc+2]

	op := Operation{
		Defn:    defn,
		Address: pc,
		Next:    pc + uint16(defn.Bytes),
	}

	cycles := defn.Cycles

	var pageFault bool
	var bug execution.Bug
	op.Operand, pageFault, bug = mc.EffectiveAddress(r, defn.AddressingMode, lo, hi, op.Next)
	pageFault = pageFault && defn.PageSensitive()
	if pageFault {
		cycles++
	}

	op.Value = mc.OperandValue(r, defn, op.Operand, lo)
	op.Remaining = budget - cycles

	out := mc.Execute(r, op)
	cycles += out.Cycles
	if out.Bug != execution.NoBug {
		bug = out.Bug
	}

	mc.LastResult = execution.Result{
		Address:       pc,
		Defn:          defn,
		ByteCount:     defn.Bytes,
		Cycles:        cycles,
		PageFault:     pageFault,
		BranchSuccess: defn.IsBranch() && out.Cycles > 0,
		CPUBug:        bug,
		Interrupted:   out.Interrupted,
		Final:         true,
	}
	switch defn.Bytes {
	case 2:
		mc.LastResult.InstructionData = uint16(lo)
	case 3:
		mc.LastResult.InstructionData = uint16(hi)<<8 | uint16(lo)
	}

	if out.Halted {
		return budget
	}

	return cycles
}
