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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
)

// Result records the execution of a single instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. nil until an instruction has been
	// executed
	Defn *instructions.Definition

	// the operand bytes of the instruction, if any. for a two byte
	// instruction only the low byte is meaningful
	InstructionData uint16

	// the number of bytes read while decoding the instruction
	ByteCount int

	// the actual number of cycles taken by the instruction. this is usually
	// the same as Defn.Cycles but in the case of page faults and branches
	// it may be more
	Cycles int

	// whether an extra cycle was required because an indexed address
	// crossed a page boundary
	PageFault bool

	// whether a branch instruction caused the program counter to change
	BranchSuccess bool

	// whether a known quirk of the CPU was triggered
	CPUBug Bug

	// whether a deferred interrupt was serviced as part of the instruction
	Interrupted bool

	// whether the data in the result is complete
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}

	s := fmt.Sprintf("$%04x %s", r.Address, r.Defn.Operator)
	switch r.ByteCount {
	case 2:
		s = fmt.Sprintf("%s $%02x", s, r.InstructionData&0x00ff)
	case 3:
		s = fmt.Sprintf("%s $%04x", s, r.InstructionData)
	}

	s = fmt.Sprintf("%s (%d cycles)", s, r.Cycles)
	if r.PageFault {
		s = fmt.Sprintf("%s [page fault]", s)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s [%s]", s, r.CPUBug)
	}
	return s
}
