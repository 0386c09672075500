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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher6502/cartridgeloader"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/cpu/recompiler"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/prefs"
)

// machine is a CPU with a program attached, connected to an NES style memory
// bus and a recompiler.
type machine struct {
	bus  *memory.Bus
	mc   *cpu.CPU
	rc   *recompiler.Recompiler
	run  *runPreferences
	dsk  *prefs.Disk
	cart cartridgeloader.Loader
}

// newMachine creates a machine, loads preferences and attaches the program.
// The prefs argument is a command line preferences string, applied on top of
// the preferences file.
func newMachine(prefsString string, filename string, format string) (*machine, error) {
	m := &machine{
		bus: memory.NewBus(),
		run: newRunPreferences(),
	}
	m.mc = cpu.NewCPU(m.bus)
	m.bus.Plumb(m.mc.Mem)

	pth, err := prefsPath()
	if err != nil {
		return nil, err
	}
	m.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	prefs.PushCommandLineStack(prefsString)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
	}()

	// run preferences are added before the recompiler preferences are bound
	// because binding loads the file and consumes the command line values
	err = m.run.add(m.dsk)
	if err != nil {
		return nil, err
	}
	rp := recompiler.NewPreferences()
	err = rp.Bind(m.dsk)
	if err != nil {
		return nil, err
	}
	m.rc = recompiler.NewRecompiler(m.mc, rp)

	m.cart = cartridgeloader.NewLoader(filename, format)
	m.cart.Origin = uint16(m.run.Origin.Get().(int))
	err = m.cart.Load()
	if err != nil {
		return nil, err
	}
	err = m.cart.Attach(m.mc)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *machine) cyclesPerFrame() int {
	return m.run.CyclesPerFrame.Get().(int)
}

// frame emulates one frame with either the interpreter or the recompiler. if
// nmi is true then an NMI is requested at the start of the frame, in the way
// the NES signals the vertical blank.
func (m *machine) frame(interpreter bool, nmi bool) int {
	if nmi {
		m.mc.RequestIRQ(cpu.IRQNMI)
	}
	if interpreter {
		return m.mc.Interpret(m.cyclesPerFrame())
	}
	return m.rc.Emulate(m.cyclesPerFrame())
}

// diverges compares two CPUs. Returns a description of the first difference
// or the empty string if the CPUs are equivalent.
func diverges(ref *cpu.CPU, dut *cpu.CPU) string {
	if ref.Registers != dut.Registers {
		return fmt.Sprintf("registers: %s instead of %s", dut.Registers, ref.Registers)
	}
	if ref.Halted != dut.Halted {
		return fmt.Sprintf("halted: %v instead of %v", dut.Halted, ref.Halted)
	}
	if ref.IntPending != dut.IntPending {
		return fmt.Sprintf("pending interrupt: %v instead of %v", dut.IntPending, ref.IntPending)
	}
	if ref.StallCycles != dut.StallCycles {
		return fmt.Sprintf("stall cycles: %d instead of %d", dut.StallCycles, ref.StallCycles)
	}
	for i := range ref.Mem {
		if ref.Mem[i] != dut.Mem[i] {
			return fmt.Sprintf("memory at $%04x: $%02x instead of $%02x", i, dut.Mem[i], ref.Mem[i])
		}
	}
	return ""
}

// parseAddress parses a 16 bit address. The '$' prefix can be used for
// hexadecimal in addition to the 0x prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	a, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid address", s)
	}
	return uint16(a), nil
}
