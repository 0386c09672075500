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

// Package recompiler implements block compilation for the CPU.
//
// A block is discovered by walking the code from an entry address, following
// fallthrough and any branch or absolute jump whose target is in the same
// region of memory as the entry. Addresses visited by the walk are owned by
// the block. Addresses that can be reached from outside the block's straight
// line flow are given a label.
//
// The block is then compiled into a Unit. A Unit is a sequence of records,
// one per owned instruction, with the operand resolution specialised for the
// instruction and with the destination of every jump to a label already
// known. Running a unit from a label executes instructions without returning
// to the Recompiler until control leaves the block, the cycle budget is
// exhausted, an interrupt is serviced or the CPU halts.
//
// The Recompiler type decides when to compile and when to run a unit. An
// address that is owned by a block but which is not a label is executed by the
// CPU's interpreter, one instruction at a time.
//
// Execution through the Recompiler is equivalent to execution with the
// Interpret() function of the CPU, as long as the program does not modify
// code that has already been compiled. Compiled blocks are only discarded
// when the CPU is reset or when the CPU state is restored.
package recompiler
