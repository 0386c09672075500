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
)

// Stats records the activity of the Recompiler.
type Stats struct {
	// number of blocks and records currently compiled
	Blocks  int
	Records int

	// number of calls to Unit.Run() and the reasons for returning
	UnitCalls int
	Exits     [numExits]int

	// number of instructions executed by the interpreter because the address
	// was not a label
	Interpreted int
}

func (s Stats) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("blocks: %d, records: %d, unit calls: %d, interpreted: %d",
		s.Blocks, s.Records, s.UnitCalls, s.Interpreted))
	for e := Exit(0); e < numExits; e++ {
		b.WriteString(fmt.Sprintf(", %s: %d", e, s.Exits[e]))
	}
	return b.String()
}
