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

package registers

import (
	"strings"
)

// Status is the special purpose register that stores the flags of the CPU.
// The bits of the value are in the same positions as when the register is
// pushed to the stack.
type Status uint8

// List of status flags.
const (
	Carry            Status = 0x01
	Zero             Status = 0x02
	InterruptDisable Status = 0x04
	DecimalMode      Status = 0x08
	Break            Status = 0x10
	Reserved         Status = 0x20
	Overflow         Status = 0x40
	Negative         Status = 0x80
)

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "SR"
}

func (sr Status) String() string {
	s := strings.Builder{}

	flag := func(f Status, set rune, unset rune) {
		if sr&f == f {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(Negative, 'S', 's')
	flag(Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(Break, 'B', 'b')
	flag(DecimalMode, 'D', 'd')
	flag(InterruptDisable, 'I', 'i')
	flag(Zero, 'Z', 'z')
	flag(Carry, 'C', 'c')

	return s.String()
}

// Value converts the status register into a value suitable for pushing onto
// the stack. The unused bit in the status register is always 1. This doesn't
// matter when we're in normal form but it does matter in uint8 context.
func (sr Status) Value() uint8 {
	return uint8(sr | Reserved)
}

// FromValue sets the status register from an 8 bit integer (taken from the
// stack, for example).
func (sr *Status) FromValue(v uint8) {
	*sr = Status(v) | Reserved
}

func (sr Status) is(f Status) bool {
	return sr&f == f
}

func (sr *Status) set(f Status, v bool) {
	if v {
		*sr |= f
	} else {
		*sr &^= f
	}
}

// Carry returns the state of the carry flag.
func (sr Status) Carry() bool { return sr.is(Carry) }

// Zero returns the state of the zero flag.
func (sr Status) Zero() bool { return sr.is(Zero) }

// InterruptDisable returns the state of the interrupt disable flag.
func (sr Status) InterruptDisable() bool { return sr.is(InterruptDisable) }

// DecimalMode returns the state of the decimal mode flag. The flag can be set
// and cleared but it has no effect on arithmetic.
func (sr Status) DecimalMode() bool { return sr.is(DecimalMode) }

// Break returns the state of the break flag.
func (sr Status) Break() bool { return sr.is(Break) }

// Overflow returns the state of the overflow flag.
func (sr Status) Overflow() bool { return sr.is(Overflow) }

// Negative returns the state of the negative (sign) flag.
func (sr Status) Negative() bool { return sr.is(Negative) }

// SetCarry sets or clears the carry flag.
func (sr *Status) SetCarry(v bool) { sr.set(Carry, v) }

// SetZero sets or clears the zero flag.
func (sr *Status) SetZero(v bool) { sr.set(Zero, v) }

// SetInterruptDisable sets or clears the interrupt disable flag.
func (sr *Status) SetInterruptDisable(v bool) { sr.set(InterruptDisable, v) }

// SetDecimalMode sets or clears the decimal mode flag.
func (sr *Status) SetDecimalMode(v bool) { sr.set(DecimalMode, v) }

// SetBreak sets or clears the break flag.
func (sr *Status) SetBreak(v bool) { sr.set(Break, v) }

// SetOverflow sets or clears the overflow flag.
func (sr *Status) SetOverflow(v bool) { sr.set(Overflow, v) }

// SetNegative sets or clears the negative flag.
func (sr *Status) SetNegative(v bool) { sr.set(Negative, v) }

// SetZN sets the zero and negative flags according to the value. This is the
// most common flag update in the instruction set.
func (sr *Status) SetZN(v uint8) {
	sr.set(Zero, v == 0)
	sr.set(Negative, v&0x80 == 0x80)
}
