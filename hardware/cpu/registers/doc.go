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

// Package registers implements the status register of the 6502 and the
// arithmetic and shift primitives used by the CPU's instruction semantics.
//
// The status register is a packed value. Individual flags are read with
// predicate functions and written with setter functions:
//
//	var sr registers.Status
//	sr.SetCarry(true)
//	sr.SetZN(0x80)
//	if sr.Negative() { ... }
//
// The reserved bit is always set in the result of Value(). This is the form
// in which the status register is pushed to the stack.
//
// The arithmetic functions take and return plain uint8 values and report the
// carry and overflow results, leaving the caller to decide how those results
// should be reflected in the status register.
package registers
