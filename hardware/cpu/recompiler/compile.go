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
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// resolver returns the effective address of a record's operand and whether
// an indexed address crossed a page boundary.
type resolver func(mc *cpu.CPU, r *cpu.Registers, rec *record) (uint16, bool)

// record is a single compiled instruction.
type record struct {
	defn    *instructions.Definition
	address uint16
	next    uint16
	lo      uint8
	hi      uint8

	// the effective address of the operand when it is known at compile
	// time. for jumps and branches this is the target address
	operand uint16

	resolve resolver

	// the value of the operand is loaded from memory
	reads bool

	pageSensitive bool

	// index of the record to continue with after a jump to the operand
	// address. -1 if the jump leaves the unit
	targetIndex int

	// index of the record to continue with after falling through to the next
	// instruction. -1 if falling through leaves the unit
	nextIndex int

	// copy of FollowExit in the metadata for the address
	exit bool
}

func constant(_ *cpu.CPU, _ *cpu.Registers, rec *record) (uint16, bool) {
	return rec.operand, false
}

func zeroPageX(_ *cpu.CPU, r *cpu.Registers, rec *record) (uint16, bool) {
	return uint16(rec.lo + r.X), false
}

func zeroPageY(_ *cpu.CPU, r *cpu.Registers, rec *record) (uint16, bool) {
	return uint16(rec.lo + r.Y), false
}

func absoluteX(_ *cpu.CPU, r *cpu.Registers, rec *record) (uint16, bool) {
	return rec.operand + uint16(r.X), uint16(rec.lo)+uint16(r.X) > 0xff
}

func absoluteY(_ *cpu.CPU, r *cpu.Registers, rec *record) (uint16, bool) {
	return rec.operand + uint16(r.Y), uint16(rec.lo)+uint16(r.Y) > 0xff
}

// the indirect modes read a pointer from memory which may have changed since
// compilation
func indirect(mc *cpu.CPU, r *cpu.Registers, rec *record) (uint16, bool) {
	address, pageFault, _ := mc.EffectiveAddress(r, rec.defn.AddressingMode, rec.lo, rec.hi, rec.next)
	return address, pageFault
}

// newRecord compiles the instruction at the address.
func (rc *Recompiler) newRecord(address uint16) record {
	mem := rc.mc.Mem
	defn := instructions.Lookup(mem[address])

	rec := record{
		defn:          defn,
		address:       address,
		next:          address + uint16(defn.Bytes),
		lo:            mem[address+1],
		hi:            mem[address+2],
		resolve:       constant,
		pageSensitive: defn.PageSensitive(),
		targetIndex:   -1,
		nextIndex:     -1,
		exit:          rc.meta[address].Follow&FollowExit == FollowExit,
	}

	switch defn.AddressingMode {
	case instructions.ZeroPage:
		rec.operand = uint16(rec.lo)
	case instructions.Absolute:
		rec.operand = uint16(rec.hi)<<8 | uint16(rec.lo)
	case instructions.Relative:
		rec.operand = rec.next + uint16(int8(rec.lo))
	case instructions.ZeroPageIndexedX:
		rec.resolve = zeroPageX
	case instructions.ZeroPageIndexedY:
		rec.resolve = zeroPageY
	case instructions.AbsoluteIndexedX:
		rec.operand = uint16(rec.hi)<<8 | uint16(rec.lo)
		rec.resolve = absoluteX
	case instructions.AbsoluteIndexedY:
		rec.operand = uint16(rec.hi)<<8 | uint16(rec.lo)
		rec.resolve = absoluteY
	case instructions.Indirect, instructions.IndexedIndirect, instructions.IndirectIndexed:
		rec.resolve = indirect
	}

	switch defn.AddressingMode {
	case instructions.Accumulator, instructions.Immediate, instructions.Implied,
		instructions.Relative, instructions.Indirect:
	default:
		rec.reads = defn.Operator.Details().Is(instructions.Read)
	}

	return rec
}

// value returns the value of the operand in the same way as
// CPU.OperandValue().
func (rec *record) value(mc *cpu.CPU, r *cpu.Registers, address uint16) uint8 {
	switch rec.defn.AddressingMode {
	case instructions.Accumulator:
		return r.A
	case instructions.Immediate:
		return rec.lo
	}
	if rec.reads {
		return mc.Load(address)
	}
	return 0
}

// compile the block into a Unit. the block must have been analysed and the
// metadata for the block must be complete.
func (rc *Recompiler) compile(blk *Block) *Unit {
	u := &Unit{
		block:   blk,
		records: make([]record, len(blk.Addresses)),
		entries: make([]int, len(blk.Labels)),
	}

	for i, a := range blk.Addresses {
		u.records[i] = rc.newRecord(a)
	}

	for i := range u.records {
		rec := &u.records[i]
		defn := rec.defn

		if rc.meta[rec.address].Follow&FollowTarget == FollowTarget {
			rec.targetIndex = u.index(rec.operand)
		}

		// jumps other than conditional branches never fall through
		if rec.exit || (defn.IsJump() && !defn.IsBranch()) {
			continue // for loop
		}
		rec.nextIndex = u.index(rec.next)
	}

	for l, a := range blk.Labels {
		u.entries[l] = u.index(a)
	}

	blk.unit = u

	return u
}
