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

package cpu

import (
	"github.com/jetsetilly/gopher6502/curated"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// State is a copy of the CPU state suitable for persisting. Compilation
// metadata is derived from the memory image and is not part of the State.
type State struct {
	Memory      []uint8 `cbor:"1,keyasint"`
	A           uint8   `cbor:"2,keyasint"`
	X           uint8   `cbor:"3,keyasint"`
	Y           uint8   `cbor:"4,keyasint"`
	S           uint16  `cbor:"5,keyasint"`
	PC          uint16  `cbor:"6,keyasint"`
	P           uint8   `cbor:"7,keyasint"`
	Halted      bool    `cbor:"8,keyasint"`
	StallCycles int     `cbor:"9,keyasint"`
	IntPending  bool    `cbor:"10,keyasint,omitempty"`
}

// Sentinel error patterns returned by RestoreState().
const (
	StateMemorySize = "cpu: state: memory image is %d bytes"
	StateStack      = "cpu: state: stack pointer $%04x is not in page one"
)

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *State {
	s := &State{
		Memory:      make([]uint8, len(mc.Mem)),
		A:           mc.A,
		X:           mc.X,
		Y:           mc.Y,
		S:           mc.S(),
		PC:          mc.PC,
		P:           mc.Status.Value(),
		Halted:      mc.Halted,
		StallCycles: mc.StallCycles,
		IntPending:  mc.IntPending,
	}
	copy(s.Memory, mc.Mem[:])
	return s
}

// RestoreState applies a previously created State to the CPU. Reset listeners
// are notified because anything derived from the memory image is no longer
// valid.
func (mc *CPU) RestoreState(s *State) error {
	if len(s.Memory) != len(mc.Mem) {
		return curated.Errorf(StateMemorySize, len(s.Memory))
	}
	if s.S&0xff00 != cpubus.StackPage {
		return curated.Errorf(StateStack, s.S)
	}

	copy(mc.Mem[:], s.Memory)
	mc.A = s.A
	mc.X = s.X
	mc.Y = s.Y
	mc.SP = uint8(s.S)
	mc.PC = s.PC
	mc.Status.FromValue(s.P)
	mc.Halted = s.Halted
	mc.StallCycles = s.StallCycles
	mc.IntPending = s.IntPending
	mc.LastResult.Reset()

	mc.notifyReset()

	return nil
}
