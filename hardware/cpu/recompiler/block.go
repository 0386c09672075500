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
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Block is a unit of code discovered from an entry address.
type Block struct {
	ID     int
	Entry  uint16
	Region cpubus.Region

	// owned addresses in address order
	Addresses []uint16

	// label addresses in order of discovery. the index of the address in
	// the list is the label number. the entry address is always label zero
	Labels []uint16

	unit *Unit
}

// Unit returns the compiled unit for the block.
func (blk *Block) Unit() *Unit {
	return blk.unit
}

// Owns returns true if the address is the start of an instruction owned by
// the block.
func (blk *Block) Owns(address uint16) bool {
	_, ok := slices.BinarySearch(blk.Addresses, address)
	return ok
}

func (blk *Block) String() string {
	return fmt.Sprintf("block %d: entry $%04x region %d: %d instructions, %d labels",
		blk.ID, blk.Entry, blk.Region, len(blk.Addresses), len(blk.Labels))
}

// Dump writes the block to the io.Writer, one line for each owned
// instruction. Each line shows the label, the liveness information and the
// follow bits of the instruction along with the disassembly given by the
// dasm function.
func (blk *Block) Dump(w io.Writer, md func(uint16) Metadata, dasm func(uint16) string) {
	io.WriteString(w, blk.String())
	io.WriteString(w, "\n")

	for _, a := range blk.Addresses {
		m := md(a)

		label := strings.Repeat(" ", 4)
		if m.Label != NoLabel {
			label = fmt.Sprintf("L%-3d", m.Label)
		}

		io.WriteString(w, fmt.Sprintf("%s %-32s used=%-12s changed=%-12s %s\n",
			label, dasm(a), m.Used, m.Changed, m.Follow))
	}
}
