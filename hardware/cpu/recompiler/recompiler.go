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
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/prefs"
)

// Recompiler executes the CPU by compiling blocks of code as they are
// encountered and running the compiled units.
type Recompiler struct {
	mc    *cpu.CPU
	Prefs *Preferences

	meta   *metadata
	blocks []*Block
	stats  Stats

	// log entries are only made if the Log preference is set
	logging logger.Permission
}

// NewRecompiler is the preferred method of initialisation for the Recompiler
// type. If the prefs argument is nil then default preferences are used.
//
// The Recompiler is registered as a reset listener with the CPU so that
// compiled blocks are discarded when the CPU is reset or when state is
// restored.
func NewRecompiler(mc *cpu.CPU, p *Preferences) *Recompiler {
	if p == nil {
		p = NewPreferences()
	}

	rc := &Recompiler{
		mc:    mc,
		Prefs: p,
		meta:  &metadata{},
	}
	rc.meta.clear()

	rc.logging = logger.PermissionFunc(func() bool {
		return rc.Prefs.Log.Get().(bool)
	})

	mc.AddResetListener(rc.Clear)

	// regions depend on the bank size so existing blocks are no longer valid
	// if it changes
	p.BankSize.SetHookPost(func(_ prefs.Value) error {
		rc.Clear()
		return nil
	})

	return rc
}

// Clear discards all compiled blocks and metadata. Statistics about
// execution are not affected.
func (rc *Recompiler) Clear() {
	if len(rc.blocks) > 0 {
		logger.Logf(rc.logging, "recompiler", "discarding %d blocks", len(rc.blocks))
	}
	rc.meta.clear()
	rc.blocks = rc.blocks[:0]
	rc.stats.Blocks = 0
	rc.stats.Records = 0
}

// Translate analyses and compiles the block with the entry address. If the
// address is already owned by a block then that block is returned.
func (rc *Recompiler) Translate(address uint16) *Block {
	if md := rc.meta[address]; md.Owned() {
		return rc.blocks[md.Owner]
	}

	blk := rc.analyze(address)
	rc.blocks = append(rc.blocks, blk)
	u := rc.compile(blk)

	rc.stats.Blocks++
	rc.stats.Records += u.Len()

	logger.Log(rc.logging, "recompiler", blk)

	return blk
}

// Emulate the CPU for at least the number of cycles specified. Returns the
// number of cycles actually executed, which may be more than requested by the
// cost of the last instruction.
//
// The result of Emulate() is equivalent to calling the CPU's Interpret()
// function with the same number of cycles. A halted CPU executes nothing and
// zero is returned. If the CPU halts during the call then the number of
// cycles requested is returned.
func (rc *Recompiler) Emulate(cycles int) int {
	mc := rc.mc

	if !rc.Prefs.Enabled.Get().(bool) {
		return mc.Interpret(cycles)
	}

	if mc.Halted {
		return 0
	}

	remaining := cycles
	for remaining > 0 {
		// service a deferred interrupt at the instruction boundary, in the
		// same way as the interpreter
		mc.ServicePending()

		md := rc.meta[mc.PC]
		if !md.Owned() {
			rc.Translate(mc.PC)
			md = rc.meta[mc.PC]
		}

		if md.Label != NoLabel {
			var exit Exit
			remaining, exit = rc.blocks[md.Owner].unit.Run(mc, remaining, md.Label)
			rc.stats.UnitCalls++
			rc.stats.Exits[exit]++
		} else {
			remaining -= mc.StepWithBudget(remaining)
			rc.stats.Interpreted++
		}

		if mc.Halted {
			return cycles
		}
	}

	return cycles - remaining
}

// Metadata returns the compilation metadata for the address.
func (rc *Recompiler) Metadata(address uint16) Metadata {
	return rc.meta[address]
}

// Block returns the block with the ID. Returns nil if there is no such block.
func (rc *Recompiler) Block(id int) *Block {
	if id < 0 || id >= len(rc.blocks) {
		return nil
	}
	return rc.blocks[id]
}

// BlockAt returns the block that owns the address. Returns nil if the address
// is not owned by a block.
func (rc *Recompiler) BlockAt(address uint16) *Block {
	return rc.Block(rc.meta[address].Owner)
}

// Blocks returns all compiled blocks in order of compilation. The returned
// slice should not be altered.
func (rc *Recompiler) Blocks() []*Block {
	return rc.blocks
}

// Stats returns a copy of the current statistics.
func (rc *Recompiler) Stats() Stats {
	return rc.stats
}
