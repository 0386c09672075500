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

// Add returns the result of adding val and the carry to a. The returned carry
// and overflow values should be used to update the status register.
func Add(a uint8, val uint8, carry bool) (result uint8, rcarry bool, overflow bool) {
	t := uint16(a) + uint16(val)
	if carry {
		t++
	}
	result = uint8(t)

	// overflow detection from Ken Shirriff's blog: "The 6502 overflow flag
	// explained mathematically"
	overflow = ((a ^ result) & (val ^ result) & 0x80) != 0

	return result, t&0x100 == 0x100, overflow
}

// Subtract returns the result of subtracting val and the inverse of the carry
// from a. Carry is set in the result if no borrow was required.
func Subtract(a uint8, val uint8, carry bool) (result uint8, rcarry bool, overflow bool) {
	return Add(a, ^val, carry)
}

// Compare returns the result of a - val and whether the carry flag should be
// set. Compare never affects the overflow flag.
func Compare(a uint8, val uint8) (result uint8, carry bool) {
	return a - val, a >= val
}

// ASL (arithmetic shift left) shifts the value one bit to the left. Returns
// the most significant bit as it was before the shift. If we think of the
// ASL operation as a multiply by two then the return value is the carry bit.
func ASL(v uint8) (uint8, bool) {
	return v << 1, v&0x80 == 0x80
}

// LSR (logical shift right) shifts the value one bit to the right. Returns
// the least significant bit as it was before the shift. If we think of the
// LSR operation as a division by two then the return value is the carry bit.
func LSR(v uint8) (uint8, bool) {
	return v >> 1, v&0x01 == 0x01
}

// ROL rotates the value one bit to the left. Returns new carry status.
func ROL(v uint8, carry bool) (uint8, bool) {
	r := v << 1
	if carry {
		r |= 0x01
	}
	return r, v&0x80 == 0x80
}

// ROR rotates the value one bit to the right. Returns new carry status.
func ROR(v uint8, carry bool) (uint8, bool) {
	r := v >> 1
	if carry {
		r |= 0x80
	}
	return r, v&0x01 == 0x01
}
