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

// Package disassembly produces a textual form of the instructions in the
// CPU's memory image.
//
// Each line of disassembly shows the address of the instruction, the
// instruction bytes, the mnemonic and the operand. For example:
//
//	$8000: [ $A9 $05 ]       LDA #$05
//	$8002: [ $6C $FF $10 ]   JMP ($10FF) ; $1234
//
// Branch operands are shown as the address of the branch target rather than
// as an offset. An indirect JMP is annotated with the address the jump will
// go to, taking into account the page wrapping bug of the CPU. The annotated
// address depends on the contents of memory at the time of the disassembly.
//
// The Write() function writes the disassembly of a range of memory.
package disassembly
