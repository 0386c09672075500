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

package instructions

import "strings"

// Details describes the capabilities of an operator. The value is a bitset.
type Details uint8

// List of capabilities.
const (
	// the instruction reads from memory
	Read Details = 1 << iota

	// the instruction writes to memory
	Write

	// the instruction is a jump, branch or related (can alter the PC)
	Jump

	// the instruction accesses the stack
	Stack

	// the instruction is not documented by the manufacturer
	Undocumented
)

// Common combinations of capabilities.
const (
	ReadWrite          = Read | Write
	JumpStack          = Jump | Stack
	UndocumentedRead   = Undocumented | Read
	UndocumentedWrite  = Undocumented | Write
	UndocumentedModify = Undocumented | Read | Write
	UndocumentedJump   = Undocumented | Jump
)

// Is returns true if all bits in d are set.
func (c Details) Is(d Details) bool {
	return c&d == d
}

func (c Details) String() string {
	s := strings.Builder{}
	if c&Read == Read {
		s.WriteString("R")
	}
	if c&Write == Write {
		s.WriteString("W")
	}
	if c&Jump == Jump {
		s.WriteString("J")
	}
	if c&Stack == Stack {
		s.WriteString("S")
	}
	if c&Undocumented == Undocumented {
		s.WriteString("U")
	}
	if s.Len() == 0 {
		return "-"
	}
	return s.String()
}
