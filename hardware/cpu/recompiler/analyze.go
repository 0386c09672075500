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
	"slices"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// analyze discovers the block for the entry address, which must not be owned
// by an existing block. ownership, labels and follow bits are recorded in
// the metadata table as the walk proceeds.
//
// the walk from each label continues until:
//
//	o an address already owned by the block is reached
//	o the next address leaves the region or is owned by another block
//	o the instruction does not fall through to the next address
//
// the walk never visits an address twice so it is bounded by the size of the
// address space.
func (rc *Recompiler) analyze(entry uint16) *Block {
	mem := rc.mc.Mem
	md := rc.meta

	blk := &Block{
		ID:     len(rc.blocks),
		Entry:  entry,
		Region: rc.region(entry),
		Labels: []uint16{entry},
	}
	md[entry].Label = 0

	// addresses where nothing can be known about the resources that are
	// needed afterwards
	boundary := make(map[uint16]bool)

	for j := 0; j < len(blk.Labels); j++ {
		pc := blk.Labels[j]

		for md[pc].Owner != blk.ID {
			m := &md[pc]
			m.Owner = blk.ID
			m.Region = blk.Region
			m.Follow = 0
			blk.Addresses = append(blk.Addresses, pc)

			defn := instructions.Lookup(mem[pc])

			if defn.IsJump() {
				boundary[pc] = true

				var target uint16
				var resolved bool

				switch defn.AddressingMode {
				case instructions.Absolute:
					target = uint16(mem[pc+2])<<8 | uint16(mem[pc+1])
					resolved = true
				case instructions.Relative:
					target = pc + uint16(defn.Bytes) + uint16(int8(mem[pc+1]))
					resolved = true
				}

				if resolved && rc.region(target) == blk.Region {
					owner := md[target].Owner
					if owner == NoOwner || owner == blk.ID {
						if md[target].Label == NoLabel {
							md[target].Label = len(blk.Labels)
							blk.Labels = append(blk.Labels, target)
						}
						m.Follow |= FollowTarget
					}
				}

				// conditional branches and JSR are the only jumps that can
				// continue to the next instruction
				if !defn.IsBranch() && defn.Operator != instructions.JSR {
					break // for loop
				}
			}

			next := pc + uint16(defn.Bytes)

			owner := md[next].Owner
			if (owner != NoOwner && owner != blk.ID) || rc.region(next) != blk.Region {
				// the return point of a JSR in another block is not reached
				// by falling through
				if defn.Operator != instructions.JSR {
					m.Follow |= FollowExit
				}
				boundary[pc] = true
				break // for loop
			}

			// the return point of a JSR is reached with an RTS, possibly from
			// another block
			if defn.Operator == instructions.JSR && md[next].Label == NoLabel {
				md[next].Label = len(blk.Labels)
				blk.Labels = append(blk.Labels, next)
			}

			pc = next
		}
	}

	slices.Sort(blk.Addresses)
	rc.liveness(blk, boundary)

	return blk
}

// liveness calculates the resources used and changed by each instruction in
// the block. addresses are processed in reverse order so that the resources
// needed by the following instruction are known. boundary addresses are
// seeded with every resource.
func (rc *Recompiler) liveness(blk *Block, boundary map[uint16]bool) {
	mem := rc.mc.Mem
	md := rc.meta

	for i := len(blk.Addresses) - 1; i >= 0; i-- {
		pc := blk.Addresses[i]
		m := &md[pc]

		if boundary[pc] {
			m.Used = instructions.AllResources
			m.Changed = instructions.AllResources
			continue // for loop
		}

		defn := instructions.Lookup(mem[pc])
		after := md[pc+uint16(defn.Bytes)].Used
		m.Changed = defn.Changes() & after
		m.Used = (after &^ defn.Changes()) | defn.Uses()
	}
}

// region returns the region of the address according to the current bank
// size preference.
func (rc *Recompiler) region(address uint16) cpubus.Region {
	return cpubus.RegionOf(address, rc.Prefs.BankSize.Get().(int))
}
