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
	"fmt"

	"github.com/jetsetilly/gopher6502/hardware/cpu/execution"
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
)

// Registers of the 6502. The stack pointer is the low byte of the stack
// address; the high byte is always 0x01.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status registers.Status
}

// S returns the stack pointer in its 16 bit form.
func (r Registers) S() uint16 {
	return cpubus.StackPage | uint16(r.SP)
}

func (r Registers) String() string {
	return fmt.Sprintf("PC=$%04x A=$%02x X=$%02x Y=$%02x SP=$%04x %s=%s",
		r.PC, r.A, r.X, r.Y, r.S(), r.Status.Label(), r.Status)
}

// CPU implements the NES variant of the 6502.
type CPU struct {
	Registers

	// the memory image. addresses below cpubus.RAMTop are mirrors of the
	// first 2k and addresses from cpubus.ROMOrigin are program ROM
	Mem *[0x10000]uint8

	mapper cpubus.Mapper

	// a normal interrupt was requested while interrupts were disabled. it
	// will be serviced at the next opportunity
	IntPending bool

	// the CPU has encountered a HLT instruction. requires a reset
	Halted bool

	// cycles the CPU is stalled for. interrupts and external events (DMA
	// for example) add to this value. the CPU does not consume the stall
	// cycles itself, that is the responsibility of the system driving the
	// CPU
	StallCycles int

	// information about the last instruction executed by the interpreter
	LastResult execution.Result

	// functions to call when the memory image is reset or replaced
	resetListeners []func()
}

// NewCPU is the preferred method of initialisation for the CPU structure. A
// nil mapper is replaced by cpubus.NilMapper.
//
// The CPU is not reset by NewCPU(). Call Reset() or RequestIRQ(IRQReset) as
// appropriate.
func NewCPU(mapper cpubus.Mapper) *CPU {
	mc := &CPU{
		Mem: new([0x10000]uint8),
	}
	mc.Plumb(mapper)
	return mc
}

// Plumb a new Mapper into the CPU.
func (mc *CPU) Plumb(mapper cpubus.Mapper) {
	if mapper == nil {
		mapper = cpubus.NilMapper{}
	}
	mc.mapper = mapper
}

func (mc *CPU) String() string {
	return mc.Registers.String()
}

// AddResetListener registers a function to be called whenever the memory
// image is reset or replaced by RestoreState().
func (mc *CPU) AddResetListener(f func()) {
	mc.resetListeners = append(mc.resetListeners, f)
}

func (mc *CPU) notifyReset() {
	for _, f := range mc.resetListeners {
		f()
	}
}

// Load returns the byte at the address. Work RAM is mirrored every 2k below
// cpubus.RAMTop and the peripheral area is reached through the Mapper.
func (mc *CPU) Load(address uint16) uint8 {
	if address < cpubus.RAMTop {
		return mc.Mem[address&cpubus.RAMMask]
	}
	if address < cpubus.ROMOrigin {
		return mc.mapper.Load(address)
	}
	return mc.Mem[address]
}

// Write the byte to the address. Writes above the work RAM all go to the
// Mapper, including writes to ROM space, which is how bank switching is
// triggered on the NES.
func (mc *CPU) Write(address uint16, data uint8) {
	if address < cpubus.RAMTop {
		mc.Mem[address&cpubus.RAMMask] = data
		return
	}
	mc.mapper.Write(address, data)
}

// read a 16 bit value directly from the memory image.
func (mc *CPU) read16(address uint16) uint16 {
	return uint16(mc.Mem[address]) | uint16(mc.Mem[address+1])<<8
}

// the stack is always in page one. the stack pointer wraps around within the
// page
func (mc *CPU) push(r *Registers, data uint8) {
	mc.Mem[r.S()] = data
	r.SP--
}

func (mc *CPU) push16(r *Registers, data uint16) {
	mc.push(r, uint8(data>>8))
	mc.push(r, uint8(data))
}

func (mc *CPU) pull(r *Registers) uint8 {
	r.SP++
	return mc.Mem[r.S()]
}

func (mc *CPU) pull16(r *Registers) uint16 {
	lo := mc.pull(r)
	hi := mc.pull(r)
	return uint16(hi)<<8 | uint16(lo)
}

// Push a byte onto the stack.
func (mc *CPU) Push(data uint8) {
	mc.push(&mc.Registers, data)
}

// Push16 pushes a 16 bit value onto the stack. The high byte is pushed first.
func (mc *CPU) Push16(data uint16) {
	mc.push16(&mc.Registers, data)
}

// Pull a byte from the stack.
func (mc *CPU) Pull() uint8 {
	return mc.pull(&mc.Registers)
}

// Pull16 pulls a 16 bit value from the stack. The low byte is pulled first.
func (mc *CPU) Pull16() uint16 {
	return mc.pull16(&mc.Registers)
}

// Halt clears the halted state of the CPU and any outstanding stall cycles.
func (mc *CPU) Halt() {
	mc.Halted = false
	mc.StallCycles = 0
}

// HaltCycles adds to the number of cycles the CPU is stalled for.
func (mc *CPU) HaltCycles(n int) {
	mc.StallCycles += n
}
