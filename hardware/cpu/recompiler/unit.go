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

package recompiler

import (
	"slices"

	"github.com/jetsetilly/gopher6502/hardware/cpu"
)

// Exit is the reason a Unit returned control to the caller.
type Exit int

// List of valid Exit values.
const (
	// control has passed to an address that is not in the unit or that
	// can't be reached from the current instruction without returning
	ExitLeave Exit = iota

	// the cycle budget is exhausted
	ExitBudget

	// a deferred interrupt was serviced
	ExitInterrupt

	// the CPU has halted
	ExitHalt

	numExits
)

func (e Exit) String() string {
	switch e {
	case ExitLeave:
		return "leave"
	case ExitBudget:
		return "budget"
	case ExitInterrupt:
		return "interrupt"
	case ExitHalt:
		return "halt"
	}
	return "unknown exit"
}

// Unit is a compiled block.
type Unit struct {
	block   *Block
	records []record

	// record index for each label of the block
	entries []int
}

// Len returns the number of records in the unit.
func (u *Unit) Len() int {
	return len(u.records)
}

// index of the record for the instruction at the address. -1 if the address
// is not the start of an instruction in the unit.
func (u *Unit) index(address uint16) int {
	i, ok := slices.BinarySearchFunc(u.records, address, func(rec record, a uint16) int {
		return int(rec.address) - int(a)
	})
	if !ok {
		return -1
	}
	return i
}

// Run the unit from the label, for no more than the number of cycles
// specified. Returns the number of cycles remaining in the budget and the
// reason the unit returned. If the unit returns because of exhausted budget
// the remaining value will be zero or less.
//
// The registers of the CPU are copied at the start of the call and written
// back when the unit returns. The LastResult field of the CPU is not updated.
//
// If the CPU halts then the remaining budget is zero, in the same way as the
// CPU's Interpret() function consumes the entire budget on a halt.
func (u *Unit) Run(mc *cpu.CPU, cycles int, label int) (int, Exit) {
	if label < 0 || label >= len(u.entries) {
		return cycles, ExitLeave
	}

	r := mc.Registers
	idx := u.entries[label]
	exit := ExitBudget

	for cycles > 0 {
		rec := &u.records[idx]

		address, pageFault := rec.resolve(mc, &r, rec)
		cost := rec.defn.Cycles
		if pageFault && rec.pageSensitive {
			cost++
		}

		out := mc.Execute(&r, cpu.Operation{
			Defn:      rec.defn,
			Address:   rec.address,
			Next:      rec.next,
			Operand:   address,
			Value:     rec.value(mc, &r, address),
			Remaining: cycles - cost,
		})
		cycles -= cost + out.Cycles

		if out.Halted {
			cycles = 0
			exit = ExitHalt
			break // for loop
		}

		if out.Interrupted {
			exit = ExitInterrupt
			break // for loop
		}

		if rec.targetIndex != -1 && r.PC == rec.operand {
			idx = rec.targetIndex
		} else if rec.nextIndex != -1 && r.PC == rec.next {
			idx = rec.nextIndex
		} else {
			exit = ExitLeave
			break // for loop
		}
	}

	mc.Registers = r

	return cycles, exit
}
