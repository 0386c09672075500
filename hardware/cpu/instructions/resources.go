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

package instructions

import "strings"

// Resources is a set of registers and status flags. It is used to describe
// what an instruction reads and writes so that the liveness of a resource
// through a sequence of instructions can be calculated.
type Resources uint16

// Flags occupy the lower eight bits in the same positions as in the status
// register. Registers occupy the upper bits.
const (
	FlagC Resources = 0x0001
	FlagZ Resources = 0x0002
	FlagI Resources = 0x0004
	FlagD Resources = 0x0008
	FlagB Resources = 0x0010
	FlagR Resources = 0x0020
	FlagV Resources = 0x0040
	FlagN Resources = 0x0080

	RegA Resources = 0x0100
	RegX Resources = 0x0200
	RegY Resources = 0x0400
	RegS Resources = 0x0800

	// AllResources is used at the boundaries of a block, where nothing can
	// be known about what happens next
	AllResources Resources = 0x0fff
)

// Has returns true if every resource in o is present in r.
func (r Resources) Has(o Resources) bool {
	return r&o == o
}

func (r Resources) String() string {
	s := strings.Builder{}
	for _, n := range []struct {
		r Resources
		c string
	}{
		{RegA, "A"}, {RegX, "X"}, {RegY, "Y"}, {RegS, "S"},
		{FlagN, "n"}, {FlagV, "v"}, {FlagB, "b"}, {FlagD, "d"},
		{FlagI, "i"}, {FlagZ, "z"}, {FlagC, "c"},
	} {
		if r&n.r == n.r {
			s.WriteString(n.c)
		}
	}
	if s.Len() == 0 {
		return "-"
	}
	return s.String()
}
