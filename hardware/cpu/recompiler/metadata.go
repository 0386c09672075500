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
	"strings"

	"github.com/jetsetilly/gopher6502/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Follow describes how control may leave an instruction in a block.
type Follow uint8

// List of Follow bits.
const (
	// falling through to the next instruction leaves the block
	FollowExit Follow = 1 << iota

	// the jump target of the instruction is a label in the same block
	FollowTarget
)

func (f Follow) String() string {
	s := strings.Builder{}
	if f&FollowExit == FollowExit {
		s.WriteString("exit")
	}
	if f&FollowTarget == FollowTarget {
		if s.Len() > 0 {
			s.WriteString("+")
		}
		s.WriteString("target")
	}
	if s.Len() == 0 {
		return "-"
	}
	return s.String()
}

// Values of Metadata.Owner and Metadata.Label that indicate the absence of an
// owning block and of a label.
const (
	NoOwner = -1
	NoLabel = -1
)

// Metadata is the compilation information for a single address.
type Metadata struct {
	// the ID of the block that owns the address
	Owner int

	// the resources live before the instruction and the resources changed
	// by the instruction that are still needed afterwards
	Used    instructions.Resources
	Changed instructions.Resources

	// the index of the label in the owning block's list of labels
	Label int

	Follow Follow
	Region cpubus.Region
}

// Owned returns true if the address is owned by a block.
func (md Metadata) Owned() bool {
	return md.Owner != NoOwner
}

func (md Metadata) String() string {
	if !md.Owned() {
		return "unowned"
	}
	label := "-"
	if md.Label != NoLabel {
		label = fmt.Sprintf("%d", md.Label)
	}
	return fmt.Sprintf("block %d region %d label %s used %s changed %s follow %s",
		md.Owner, md.Region, label, md.Used, md.Changed, md.Follow)
}

// metadata for the entire address space
type metadata [0x10000]Metadata

func (md *metadata) clear() {
	for i := range md {
		md[i] = Metadata{
			Owner: NoOwner,
			Label: NoLabel,
		}
	}
}
