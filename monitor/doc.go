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

// Package monitor is an interactive terminal front end for stepping through
// a program one instruction, one block or one frame at a time.
//
// Commands are single key presses. The terminal is put into raw mode so that
// keys are acted upon immediately:
//
//	s or space   step one instruction with the interpreter
//	u            step one instruction with the recompiler
//	f            run one frame with the recompiler
//	b            show the block that owns the PC
//	d            disassemble from the PC
//	i            request an IRQ
//	n            request an NMI
//	r            RESET
//	t            recompiler statistics
//	l            the most recent log entries
//	m            memory map
//	?            help
//	q            quit
package monitor
