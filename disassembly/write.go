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

package disassembly

import (
	"io"

	"github.com/jetsetilly/gopher6502/curated"
)

// InvalidRange is returned by Write() when the end of the range comes before
// the start.
const InvalidRange = "disassembly: invalid range ($%04x to $%04x)"

// Write the disassembly of memory between the two addresses to the
// io.Writer, one instruction per line. The last instruction written is the
// one that contains the address at the end of the range.
func Write(output io.Writer, mem *[0x10000]uint8, from uint16, to uint16) error {
	if to < from {
		return curated.Errorf(InvalidRange, from, to)
	}

	address := from
	for {
		e := Disassemble(mem, address)
		if _, err := io.WriteString(output, e.String()); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}

		// stop at the end of the range or if the next address wraps around
		// the address space
		next := e.Next()
		if next > to || next <= address {
			break // for loop
		}
		address = next
	}

	return nil
}
