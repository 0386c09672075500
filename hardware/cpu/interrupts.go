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
	"github.com/jetsetilly/gopher6502/hardware/cpu/registers"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/logger"
)

// IRQKind is the kind of interrupt requested with RequestIRQ().
type IRQKind int

// List of interrupt kinds.
const (
	IRQNormal IRQKind = iota
	IRQNMI
	IRQReset
)

func (k IRQKind) String() string {
	switch k {
	case IRQNormal:
		return "IRQ"
	case IRQNMI:
		return "NMI"
	case IRQReset:
		return "RESET"
	}
	return "unknown interrupt"
}

// Cost of interrupts in cycles.
const (
	resetCycles     = 6
	interruptCycles = 7
)

// the value of the status register after a reset
const resetStatus = uint8(registers.Reserved | registers.Zero)

// Reset zeroes the memory image, notifies any reset listeners and then
// performs a RESET interrupt.
//
// Because memory is zeroed the PC will be loaded with zero. If a program is to
// be loaded then it should be loaded after the call to Reset(), followed by
// another call to RequestIRQ(IRQReset).
func (mc *CPU) Reset() {
	*mc.Mem = [0x10000]uint8{}
	mc.LastResult.Reset()
	mc.notifyReset()
	mc.RequestIRQ(IRQReset)
}

// RequestIRQ raises an interrupt. Should only be called between instructions.
//
// A normal interrupt requested while the interrupt disable flag is set is
// deferred until the flag is cleared. Interrupts other than RESET are ignored
// while the CPU is halted.
func (mc *CPU) RequestIRQ(kind IRQKind) {
	if kind == IRQReset {
		mc.PC = mc.read16(cpubus.Reset)
		mc.Status.FromValue(resetStatus)
		mc.A = 0
		mc.X = 0
		mc.Y = 0
		mc.SP = 0xff
		mc.Halted = false
		mc.IntPending = false
		mc.StallCycles = resetCycles
		return
	}

	if mc.Halted {
		logger.Logf(logger.Allow, "cpu", "%s dropped while halted", kind)
		return
	}

	if kind == IRQNormal {
		if mc.Status.InterruptDisable() {
			mc.IntPending = true
			return
		}
		mc.IntPending = false
		mc.interrupt(&mc.Registers, cpubus.IRQ)
		return
	}

	mc.interrupt(&mc.Registers, cpubus.NMI)
}

// interrupt pushes the PC and the status register (with the break flag
// cleared) and jumps through the vector. the cost of the interrupt is added
// to the stall cycles
func (mc *CPU) interrupt(r *Registers, vector uint16) {
	mc.StallCycles += interruptCycles
	mc.push16(r, r.PC)
	mc.push(r, (r.Status &^ registers.Break).Value())
	r.Status.SetInterruptDisable(true)
	r.PC = mc.read16(vector)
}

// servicePending services a deferred interrupt if interrupts are no longer
// disabled. returns true if the interrupt was serviced
func (mc *CPU) servicePending(r *Registers) bool {
	if !mc.IntPending || r.Status.InterruptDisable() {
		return false
	}
	mc.IntPending = false
	mc.interrupt(r, cpubus.IRQ)
	return true
}

// ServicePending services a deferred interrupt if the interrupt disable
// flag is clear. Returns true if the interrupt was serviced.
//
// Interpret() calls this at every instruction boundary so it is only
// required by alternative drivers of the CPU.
func (mc *CPU) ServicePending() bool {
	if mc.Halted {
		return false
	}
	return mc.servicePending(&mc.Registers)
}
